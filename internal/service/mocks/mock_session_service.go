package mocks

import (
	"examdocs/internal/model"
	"examdocs/internal/session"
	"github.com/stretchr/testify/mock"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create() session.Snapshot {
	args := m.Called()
	return args.Get(0).(session.Snapshot)
}

func (m *MockSessionService) Get(id string) (session.Snapshot, error) {
	args := m.Called(id)
	return args.Get(0).(session.Snapshot), args.Error(1)
}

func (m *MockSessionService) AddRoom(id string, room model.Room) (session.Snapshot, error) {
	args := m.Called(id, room)
	return args.Get(0).(session.Snapshot), args.Error(1)
}

func (m *MockSessionService) ClearRooms(id string) (session.Snapshot, error) {
	args := m.Called(id)
	return args.Get(0).(session.Snapshot), args.Error(1)
}

func (m *MockSessionService) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
