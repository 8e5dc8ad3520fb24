package service

import (
	"examdocs/internal/model"
	"examdocs/internal/session"
)

// SessionService exposes the room definitions of user sessions.
type SessionService interface {
	Create() session.Snapshot
	Get(id string) (session.Snapshot, error)
	AddRoom(id string, room model.Room) (session.Snapshot, error)
	ClearRooms(id string) (session.Snapshot, error)
	Delete(id string) error
}

type sessionService struct {
	store *session.Store
}

// NewSessionService wraps a session store.
func NewSessionService(store *session.Store) SessionService {
	return &sessionService{store: store}
}

func (s *sessionService) Create() session.Snapshot {
	return s.store.Create().Snapshot()
}

func (s *sessionService) Get(id string) (session.Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *sessionService) AddRoom(id string, room model.Room) (session.Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := sess.AddRoom(room); err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *sessionService) ClearRooms(id string) (session.Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	sess.Clear()
	return sess.Snapshot(), nil
}

func (s *sessionService) Delete(id string) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	s.store.Delete(id)
	return nil
}
