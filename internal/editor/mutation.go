package editor

import (
	"slices"

	"pagebuilder/internal/layout"
	"pagebuilder/internal/model"
)

// AddBlock creates a block of the given kind with its default payload.
// With afterID resolving to a block the new one is placed right after it;
// otherwise it is appended. It returns a copy of the new block.
func (s *Session) AddBlock(kind model.BlockType, afterID string) (*model.Block, bool) {
	if s.doc.LayoutLocked {
		return nil, false
	}
	b := &model.Block{
		ID:      s.newID(),
		Size:    model.SizeFull,
		Order:   insertOrder(s.doc.Blocks, afterID),
		Payload: model.NewPayload(kind),
	}
	s.doc.Blocks = append(s.doc.Blocks, b)
	s.resort()
	s.touch()
	return b.Clone(), true
}

// UpdateBlock merges patch into the block. A locked block only accepts a
// patch that changes its locked flag. An explicit grid position in the patch
// is normalised onto the grid.
func (s *Session) UpdateBlock(id string, patch model.BlockPatch) bool {
	if s.doc.LayoutLocked {
		return false
	}
	b := s.doc.Block(id)
	if b == nil {
		return false
	}
	if b.Locked && !patch.OnlyLocked() {
		return false
	}
	if patch.GridPosition != nil {
		pos := layout.Drop(patch.GridPosition.ColumnSpan, patch.GridPosition.Column, patch.GridPosition.Row)
		patch.GridPosition = &pos
	}
	if !patch.Apply(b) {
		return false
	}
	s.touch()
	return true
}

// DeleteBlock removes the block. Survivors keep their order values.
func (s *Session) DeleteBlock(id string) bool {
	if s.doc.LayoutLocked {
		return false
	}
	for i, b := range s.doc.Blocks {
		if b.ID != id {
			continue
		}
		if b.Locked {
			return false
		}
		s.doc.Blocks = append(s.doc.Blocks[:i], s.doc.Blocks[i+1:]...)
		if s.selectedID == id {
			s.selectedID = ""
		}
		s.touch()
		return true
	}
	return false
}

// MoveBlock exchanges the block's order with its neighbour in direction dir.
// At most two blocks change and the set of order values is preserved.
// Nothing moves when either block is locked. Neighbours sharing an order are
// exchanged in storage position instead, since storage order breaks the tie.
func (s *Session) MoveBlock(id string, dir Direction) bool {
	if s.doc.LayoutLocked {
		return false
	}
	sorted, idx, swap, ok := neighbour(s.doc.Blocks, id, dir)
	if !ok {
		return false
	}
	a, b := sorted[idx], sorted[swap]
	if a.Locked || b.Locked {
		return false
	}
	if a.Order == b.Order {
		if !s.swapStorage(a, b) {
			return false
		}
	} else {
		a.Order, b.Order = b.Order, a.Order
	}
	s.resort()
	s.touch()
	return true
}

// ResizeGrid sets the block's column span, clamped to the right grid edge
// from its current column, and stores the result as an explicit position.
func (s *Session) ResizeGrid(id string, newSpan int) bool {
	if s.doc.LayoutLocked {
		return false
	}
	b := s.doc.Block(id)
	if b == nil || b.Locked {
		return false
	}
	current, ok := layout.Calculate(s.doc.Blocks)[id]
	if !ok {
		current = model.GridPosition{Column: 1, ColumnSpan: layout.DefaultSpan(b.Type()), Row: 0}
	}
	return s.place(b, layout.Resize(current, newSpan))
}

// DropAt moves the block to the given grid cell, keeping its current span.
func (s *Session) DropAt(id string, column, row int) bool {
	if s.doc.LayoutLocked {
		return false
	}
	b := s.doc.Block(id)
	if b == nil || b.Locked {
		return false
	}
	span := layout.DefaultSpan(b.Type())
	if current, ok := layout.Calculate(s.doc.Blocks)[id]; ok && current.ColumnSpan > 0 {
		span = current.ColumnSpan
	}
	return s.place(b, layout.Drop(span, column, row))
}

func (s *Session) place(b *model.Block, pos model.GridPosition) bool {
	if b.GridPosition != nil && *b.GridPosition == pos {
		return false
	}
	b.GridPosition = &pos
	s.touch()
	return true
}

// UpdatePageMeta merges patch into the document header.
func (s *Session) UpdatePageMeta(patch model.PageMetaPatch) bool {
	if !patch.Apply(s.doc) {
		return false
	}
	if s.doc.LayoutLocked {
		s.selectedID = ""
	}
	s.touch()
	return true
}

// ToggleLayoutLock flips the layout lock and returns the new state.
func (s *Session) ToggleLayoutLock() bool {
	s.doc.LayoutLocked = !s.doc.LayoutLocked
	if s.doc.LayoutLocked {
		s.selectedID = ""
	}
	s.touch()
	return s.doc.LayoutLocked
}

// swapStorage exchanges the slice positions of a and b.
func (s *Session) swapStorage(a, b *model.Block) bool {
	i, j := slices.Index(s.doc.Blocks, a), slices.Index(s.doc.Blocks, b)
	if i < 0 || j < 0 || i == j {
		return false
	}
	s.doc.Blocks[i], s.doc.Blocks[j] = s.doc.Blocks[j], s.doc.Blocks[i]
	return true
}
