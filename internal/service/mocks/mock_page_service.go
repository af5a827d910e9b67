package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pagebuilder/internal/editor"
	"pagebuilder/internal/model"
	"pagebuilder/internal/service"
	"pagebuilder/internal/storage"
)

type MockPageService struct {
	mock.Mock
}

var _ service.PageService = (*MockPageService)(nil)

func view(args mock.Arguments) (*service.PageView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PageView), args.Error(1)
}

func (m *MockPageService) Create(ctx context.Context) (*service.PageView, error) {
	return view(m.Called(ctx))
}

func (m *MockPageService) Open(ctx context.Context, id string) (*service.PageView, error) {
	return view(m.Called(ctx, id))
}

func (m *MockPageService) Save(ctx context.Context, id string) (*service.PageView, error) {
	return view(m.Called(ctx, id))
}

func (m *MockPageService) Close(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPageService) List(ctx context.Context, limit, offset int) (*service.PageListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PageListResult), args.Error(1)
}

func (m *MockPageService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPageService) Import(ctx context.Context, text []byte) (*service.PageView, error) {
	return view(m.Called(ctx, text))
}

func (m *MockPageService) ImportArchive(ctx context.Context, key string) (*service.PageView, error) {
	return view(m.Called(ctx, key))
}

func (m *MockPageService) Export(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPageService) Archive(ctx context.Context, id string) (*service.ArchiveResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchiveResult), args.Error(1)
}

func (m *MockPageService) ListArchives(ctx context.Context, id string) ([]storage.Archive, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Archive), args.Error(1)
}

func (m *MockPageService) Duplicate(ctx context.Context, id string) (*service.PageView, error) {
	return view(m.Called(ctx, id))
}

func (m *MockPageService) AddBlock(ctx context.Context, id string, kind model.BlockType, afterID string) (*service.PageView, *model.Block, error) {
	args := m.Called(ctx, id, kind, afterID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var b *model.Block
	if args.Get(1) != nil {
		b = args.Get(1).(*model.Block)
	}
	return args.Get(0).(*service.PageView), b, args.Error(2)
}

func (m *MockPageService) UpdateBlock(ctx context.Context, id, blockID string, patch model.BlockPatch) (*service.PageView, error) {
	return view(m.Called(ctx, id, blockID, patch))
}

func (m *MockPageService) DeleteBlock(ctx context.Context, id, blockID string) (*service.PageView, error) {
	return view(m.Called(ctx, id, blockID))
}

func (m *MockPageService) MoveBlock(ctx context.Context, id, blockID string, dir editor.Direction) (*service.PageView, error) {
	return view(m.Called(ctx, id, blockID, dir))
}

func (m *MockPageService) ResizeBlock(ctx context.Context, id, blockID string, span int) (*service.PageView, error) {
	return view(m.Called(ctx, id, blockID, span))
}

func (m *MockPageService) DropBlock(ctx context.Context, id, blockID string, column, row int) (*service.PageView, error) {
	return view(m.Called(ctx, id, blockID, column, row))
}

func (m *MockPageService) DropBlockAt(ctx context.Context, id, blockID string, x, y, width float64) (*service.PageView, error) {
	return view(m.Called(ctx, id, blockID, x, y, width))
}

func (m *MockPageService) UpdateMeta(ctx context.Context, id string, patch model.PageMetaPatch) (*service.PageView, error) {
	return view(m.Called(ctx, id, patch))
}

func (m *MockPageService) ToggleLayoutLock(ctx context.Context, id string) (*service.PageView, error) {
	return view(m.Called(ctx, id))
}

func (m *MockPageService) SetEditMode(ctx context.Context, id string, on bool) (*service.PageView, error) {
	return view(m.Called(ctx, id, on))
}

func (m *MockPageService) Select(ctx context.Context, id, blockID string) (*service.PageView, error) {
	return view(m.Called(ctx, id, blockID))
}

func (m *MockPageService) Layout(ctx context.Context, id string) ([]service.PlacedBlock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PlacedBlock), args.Error(1)
}
