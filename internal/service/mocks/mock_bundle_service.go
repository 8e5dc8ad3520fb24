package mocks

import (
	"context"
	"io"
	"time"

	"examdocs/internal/model"
	"examdocs/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockBundleService struct {
	mock.Mock
}

func (m *MockBundleService) Archive(ctx context.Context, r io.Reader, size int64, meta model.Bundle) (*model.Bundle, error) {
	args := m.Called(ctx, r, size, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bundle), args.Error(1)
}

func (m *MockBundleService) List(ctx context.Context, limit, offset int) (*service.BundleListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BundleListResult), args.Error(1)
}

func (m *MockBundleService) Get(ctx context.Context, id string) (*model.Bundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bundle), args.Error(1)
}

func (m *MockBundleService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Bundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.Bundle), args.Error(2)
}

func (m *MockBundleService) DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, id, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockBundleService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
