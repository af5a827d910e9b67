package editor

import (
	"pagebuilder/internal/layout"
	"pagebuilder/internal/model"
)

// Direction is the way a block moves in the document sequence.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Valid reports whether d is Up or Down.
func (d Direction) Valid() bool {
	return d == Up || d == Down
}

// insertOrder returns the order a new block takes and shifts the blocks after
// afterID to make room. An unknown or empty afterID appends.
func insertOrder(blocks []*model.Block, afterID string) int {
	if afterID != "" {
		for _, ref := range blocks {
			if ref.ID != afterID {
				continue
			}
			pivot := ref.Order
			for _, b := range blocks {
				if b.Order > pivot {
					b.Order++
				}
			}
			return pivot + 1
		}
	}
	return len(blocks)
}

// neighbour returns the sorted sequence, the index of id in it and the index
// of its neighbour in direction dir. ok is false at the boundaries and for an
// unknown id.
func neighbour(blocks []*model.Block, id string, dir Direction) (sorted []*model.Block, idx, swap int, ok bool) {
	sorted = layout.SortByOrder(blocks)
	idx = -1
	for i, b := range sorted {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return sorted, idx, idx, false
	}
	switch dir {
	case Up:
		swap = idx - 1
	case Down:
		swap = idx + 1
	default:
		return sorted, idx, idx, false
	}
	if swap < 0 || swap >= len(sorted) {
		return sorted, idx, idx, false
	}
	return sorted, idx, swap, true
}
