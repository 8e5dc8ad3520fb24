package mocks

import (
	"context"

	"examdocs/internal/model"
	"examdocs/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockBundleRepository struct {
	mock.Mock
}

func (m *MockBundleRepository) Create(ctx context.Context, b *model.Bundle) (*model.Bundle, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bundle), args.Error(1)
}

func (m *MockBundleRepository) FindByID(ctx context.Context, id string) (*model.Bundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bundle), args.Error(1)
}

func (m *MockBundleRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Bundle], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Bundle]), args.Error(1)
}

func (m *MockBundleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
