package session

import "errors"

var (
	// ErrSessionNotFound indicates the session id is unknown or has expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrRoomNameRequired indicates a room was submitted without a name.
	ErrRoomNameRequired = errors.New("room name is required")
	// ErrInvalidCapacity indicates a capacity outside 1..max.
	ErrInvalidCapacity = errors.New("room capacity out of range")
	// ErrDuplicateRoom indicates a room with the same name already exists in the session.
	ErrDuplicateRoom = errors.New("room already defined")
)
