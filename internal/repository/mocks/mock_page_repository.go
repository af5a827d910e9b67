package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pagebuilder/internal/repository"
)

type MockPageRepository struct {
	mock.Mock
}

func (m *MockPageRepository) Save(ctx context.Context, id string, data []byte) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *MockPageRepository) Load(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPageRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[string], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[string]), args.Error(1)
}

func (m *MockPageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPageRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
