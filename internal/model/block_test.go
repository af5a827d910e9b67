package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockType_Valid(t *testing.T) {
	for _, bt := range BlockTypes {
		assert.True(t, bt.Valid(), bt)
		assert.Equal(t, bt, NewPayload(bt).Type())
	}
	assert.False(t, BlockType("table").Valid())
	assert.False(t, BlockType("").Valid())
}

func TestBlock_UnmarshalFlattened(t *testing.T) {
	raw := `{"id":"img","type":"image","size":"large","order":3,"alignment":"center","locked":true,
		"style":{"backgroundColor":"muted","shadow":true},"gridPosition":{"column":2,"columnSpan":4,"row":1},
		"src":"/a.png","alt":"A","caption":"Fig. 1"}`

	var b Block
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, Block{
		ID:           "img",
		Size:         SizeLarge,
		Order:        3,
		Alignment:    AlignCenter,
		Locked:       true,
		Style:        &BlockStyle{BackgroundColor: ColorMuted, Shadow: true},
		GridPosition: &GridPosition{Column: 2, ColumnSpan: 4, Row: 1},
		Payload:      &ImagePayload{Src: "/a.png", Alt: "A", Caption: "Fig. 1"},
	}, b)
}

func TestBlock_UnmarshalUnknownType(t *testing.T) {
	var b Block
	err := json.Unmarshal([]byte(`{"id":"x","type":"carousel"}`), &b)
	assert.ErrorContains(t, err, `unknown type "carousel"`)
}

func TestBlock_MarshalWithoutPayload(t *testing.T) {
	_, err := json.Marshal(Block{ID: "empty"})
	assert.Error(t, err)
}

func TestBlock_Clone(t *testing.T) {
	src := &Block{
		ID:           "l",
		Style:        &BlockStyle{Border: true},
		GridPosition: &GridPosition{Column: 1, ColumnSpan: 8},
		Payload:      &ListPayload{Items: []string{"a", "b"}},
	}

	c := src.Clone()
	c.Style.Border = false
	c.GridPosition.Row = 4
	c.Payload.(*ListPayload).Items[0] = "z"

	assert.True(t, src.Style.Border)
	assert.Equal(t, 0, src.GridPosition.Row)
	assert.Equal(t, []string{"a", "b"}, src.Payload.(*ListPayload).Items)
}

func TestDocument_Clone(t *testing.T) {
	doc := DefaultTemplate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	c := doc.Clone()
	c.Blocks[0].Order = 99
	c.Blocks = c.Blocks[:1]

	assert.Len(t, doc.Blocks, 11)
	assert.Equal(t, 0, doc.Blocks[0].Order)
	assert.Nil(t, doc.Block("missing"))
}

func TestDefaultTemplate_Independent(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a, b := DefaultTemplate(now), DefaultTemplate(now)

	a.Block("features-list").Payload.(*ListPayload).Items[0] = "changed"

	assert.NotEqual(t, a, b)
	seen := map[int]bool{}
	for _, blk := range b.Blocks {
		assert.False(t, seen[blk.Order], "duplicate order %d", blk.Order)
		seen[blk.Order] = true
	}
}

func TestBlockPatch_Apply(t *testing.T) {
	b := &Block{ID: "h", Size: SizeFull, Payload: &HeadingPayload{Content: "Hi", Level: 2}}
	same := "Hi"
	level := 2
	full := SizeFull

	assert.False(t, BlockPatch{Content: &same, Level: &level, Size: &full}.Apply(b), "re-sending current values")

	caption := "ignored on headings"
	assert.False(t, BlockPatch{Caption: &caption}.Apply(b))

	next := "Hello"
	right := AlignRight
	assert.True(t, BlockPatch{Content: &next, Alignment: &right}.Apply(b))
	assert.Equal(t, &HeadingPayload{Content: "Hello", Level: 2}, b.Payload)
	assert.Equal(t, AlignRight, b.Alignment)
}

func TestBlockPatch_ListItemsAreCopied(t *testing.T) {
	b := &Block{ID: "l", Payload: &ListPayload{Items: []string{"a"}}}
	items := []string{"x", "y"}

	require.True(t, BlockPatch{Items: &items}.Apply(b))
	items[0] = "mutated"

	assert.Equal(t, []string{"x", "y"}, b.Payload.(*ListPayload).Items)
	assert.False(t, BlockPatch{Items: &[]string{"x", "y"}}.Apply(b))
}

func TestBlockPatch_OnlyLocked(t *testing.T) {
	locked := true
	content := "c"

	assert.True(t, BlockPatch{Locked: &locked}.OnlyLocked())
	assert.False(t, BlockPatch{Locked: &locked, Content: &content}.OnlyLocked())
	assert.False(t, BlockPatch{}.OnlyLocked())
}

func TestPageMetaPatch_Apply(t *testing.T) {
	d := &Document{Title: "A"}
	title := "A"
	locked := false

	assert.False(t, PageMetaPatch{Title: &title, LayoutLocked: &locked}.Apply(d))

	sub := "Sub"
	locked = true
	assert.True(t, PageMetaPatch{Subtitle: &sub, LayoutLocked: &locked}.Apply(d))
	assert.Equal(t, "Sub", d.Subtitle)
	assert.True(t, d.LayoutLocked)
}
