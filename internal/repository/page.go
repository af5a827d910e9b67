package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no page is stored under the id.
var ErrNotFound = errors.New("page not found")

// PageRepository is the key-value persistence contract for pages.
// Each page is one JSON blob keyed by its id within a single namespace.
// Writes replace the whole blob; there are no partial or transactional writes.
type PageRepository interface {
	// Save stores data under id, replacing any previous value.
	Save(ctx context.Context, id string, data []byte) error

	// Load returns the blob stored under id, or ErrNotFound.
	Load(ctx context.Context, id string) ([]byte, error)

	// List returns a page of stored ids, ascending, and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[string], error)

	// Delete removes the blob stored under id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}

// Window applies pq to a sorted slice of ids.
func Window(ids []string, pq PageQuery) []string {
	if pq.Offset < 0 {
		pq.Offset = 0
	}
	if pq.Offset >= len(ids) {
		return []string{}
	}
	end := len(ids)
	if pq.Limit > 0 && pq.Offset+pq.Limit < end {
		end = pq.Offset + pq.Limit
	}
	return append([]string{}, ids[pq.Offset:end]...)
}
