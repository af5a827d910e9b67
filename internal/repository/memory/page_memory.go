// Package memory keeps pages in process memory. It backs tests and the
// "memory" store driver; contents are lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"pagebuilder/internal/repository"
)

type PageMemory struct {
	mu    sync.RWMutex
	pages map[string][]byte
}

func NewPageMemory() *PageMemory {
	return &PageMemory{pages: make(map[string][]byte)}
}

var _ repository.PageRepository = (*PageMemory)(nil)

func (m *PageMemory) Save(_ context.Context, id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[id] = append([]byte(nil), data...)
	return nil
}

func (m *PageMemory) Load(_ context.Context, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.pages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *PageMemory) List(_ context.Context, pq repository.PageQuery) (*repository.PageResult[string], error) {
	m.mu.RLock()
	ids := make([]string, 0, len(m.pages))
	for id := range m.pages {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	sort.Strings(ids)
	return &repository.PageResult[string]{Items: repository.Window(ids, pq), Total: len(ids)}, nil
}

func (m *PageMemory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pages, id)
	return nil
}

func (m *PageMemory) Ping(context.Context) error { return nil }
