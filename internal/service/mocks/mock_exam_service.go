package mocks

import (
	"context"
	"io"

	"examdocs/internal/model"
	"examdocs/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockExamService struct {
	mock.Mock
}

func (m *MockExamService) Check(ctx context.Context, sessionID string, r io.Reader) (*service.CheckResult, error) {
	args := m.Called(ctx, sessionID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckResult), args.Error(1)
}

func (m *MockExamService) Generate(ctx context.Context, sessionID string, info model.ExamInfo, r io.Reader) (*service.GenerateResult, error) {
	args := m.Called(ctx, sessionID, info, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateResult), args.Error(1)
}
