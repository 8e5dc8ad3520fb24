// Package session keeps the room definitions of each user session in memory.
// Sessions are never persisted; idle ones are swept after a TTL.
package session

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"examdocs/internal/model"
)

// Session holds the rooms defined by one user. AddRoom and Clear are its only mutators.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu          sync.Mutex
	rooms       []model.Room
	maxCapacity int
	lastUsed    time.Time
	now         func() time.Time
}

// Snapshot is a read-only copy of a session suitable for JSON responses.
type Snapshot struct {
	ID            string       `json:"id"`
	Rooms         []model.Room `json:"rooms"`
	TotalCapacity int          `json:"total_capacity"`
	CreatedAt     time.Time    `json:"created_at"`
}

// AddRoom appends a room. Names are trimmed and must be unique; capacity must be in 1..max.
func (s *Session) AddRoom(room model.Room) error {
	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		return ErrRoomNameRequired
	}
	if room.Capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, room.Capacity)
	}
	if s.maxCapacity > 0 && room.Capacity > s.maxCapacity {
		return fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidCapacity, room.Capacity, s.maxCapacity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	for _, r := range s.rooms {
		if r.Name == room.Name {
			return fmt.Errorf("%w: %s", ErrDuplicateRoom, room.Name)
		}
	}
	s.rooms = append(s.rooms, room)
	return nil
}

// Clear removes every room.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.rooms = nil
}

// Rooms returns a copy of the rooms in definition order.
func (s *Session) Rooms() []model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return slices.Clone(s.rooms)
}

// TotalCapacity sums the capacity of all rooms.
func (s *Session) TotalCapacity() int {
	return model.TotalCapacity(s.Rooms())
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	rooms := s.Rooms()
	if rooms == nil {
		rooms = []model.Room{}
	}
	return Snapshot{
		ID:            s.ID,
		Rooms:         rooms,
		TotalCapacity: model.TotalCapacity(rooms),
		CreatedAt:     s.CreatedAt,
	}
}

func (s *Session) touch() {
	s.lastUsed = s.now()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}
