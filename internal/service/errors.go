package service

import "errors"

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("bundle not found")
	ErrReaderNil       = errors.New("reader is nil")
	ErrNoRooms         = errors.New("no rooms defined")
	ErrArchiveDisabled = errors.New("bundle archive is disabled")
)
