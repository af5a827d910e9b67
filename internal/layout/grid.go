// Package layout maps ordered blocks onto a 12-column, row-major grid.
// Placement is visual only and never touches a block's Order.
package layout

import (
	"math"
	"sort"

	"pagebuilder/internal/model"
)

const (
	// Columns is the width of the grid.
	Columns = 12
	// RowHeight is the pixel height of one grid row used to translate pointer offsets.
	RowHeight = 60
)

// DefaultSpan is the column span a block of kind t occupies when it has no explicit position.
func DefaultSpan(t model.BlockType) int {
	switch t {
	case model.BlockHeading, model.BlockDivider:
		return 12
	case model.BlockText, model.BlockList:
		return 8
	case model.BlockImage, model.BlockVideo:
		return 6
	case model.BlockCode:
		return 10
	default:
		return 6
	}
}

// SortByOrder returns a copy of blocks ordered by Order. Ties keep their storage order.
func SortByOrder(blocks []*model.Block) []*model.Block {
	out := append([]*model.Block(nil), blocks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Calculate resolves a grid position for every block.
//
// Blocks with an explicit position keep it verbatim and leave the cursor alone.
// The rest are packed greedily left to right, wrapping when the default span
// would cross the right edge. A full-width block always closes its row.
func Calculate(blocks []*model.Block) map[string]model.GridPosition {
	positions := make(map[string]model.GridPosition, len(blocks))

	row, column := 0, 1
	for _, b := range SortByOrder(blocks) {
		if b.GridPosition != nil {
			positions[b.ID] = *b.GridPosition
			continue
		}

		span := DefaultSpan(b.Type())
		if column+span-1 > Columns {
			row++
			column = 1
		}

		positions[b.ID] = model.GridPosition{Column: column, ColumnSpan: span, Row: row}
		column += span

		if span == Columns {
			row++
			column = 1
		}
	}
	return positions
}

// RenderOrder sorts blocks by resolved row, then column. A block missing from
// positions falls back to comparing by Order.
func RenderOrder(blocks []*model.Block, positions map[string]model.GridPosition) []*model.Block {
	out := SortByOrder(blocks)
	sort.SliceStable(out, func(i, j int) bool {
		a, okA := positions[out[i].ID]
		b, okB := positions[out[j].ID]
		if !okA || !okB {
			return out[i].Order < out[j].Order
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Column < b.Column
	})
	return out
}

// Resize returns pos with its span set to newSpan, clamped so the block never
// extends past the right edge from its current column. A column outside the
// grid is pulled back onto it first.
func Resize(pos model.GridPosition, newSpan int) model.GridPosition {
	pos.Column = clamp(pos.Column, 1, Columns)
	maxSpan := Columns - pos.Column + 1
	if newSpan > maxSpan {
		newSpan = maxSpan
	}
	if newSpan < 1 {
		newSpan = 1
	}
	pos.ColumnSpan = newSpan
	return pos
}

// Drop returns the position a block of the given span lands on when dropped at
// (column, row). The span is preserved and the column pulled left to fit.
func Drop(span, column, row int) model.GridPosition {
	if span < 1 {
		span = 1
	}
	if span > Columns {
		span = Columns
	}
	column = clamp(column, 1, Columns)
	if column+span-1 > Columns {
		column = Columns - span + 1
	}
	if row < 0 {
		row = 0
	}
	return model.GridPosition{Column: column, ColumnSpan: span, Row: row}
}

// PointerCell converts a pointer offset inside a grid container of the given
// pixel width into a (column, row) cell.
func PointerCell(x, y, containerWidth float64) (column, row int) {
	column = 1
	if containerWidth > 0 {
		colWidth := containerWidth / Columns
		column = clamp(int(math.Ceil(x/colWidth)), 1, Columns)
	}
	row = int(math.Floor(y / RowHeight))
	if row < 0 {
		row = 0
	}
	return column, row
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
