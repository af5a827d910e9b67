package editor

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagebuilder/internal/model"
)

var (
	created = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	edited  = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
)

func newTestSession(t *testing.T, doc *model.Document) *Session {
	t.Helper()
	n := 0
	return NewSession(doc,
		WithClock(func() time.Time { return edited }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("blk-%d", n)
		}),
	)
}

func emptyDoc() *model.Document {
	return &model.Document{ID: "doc-1", Title: "Page", LastModified: created}
}

func orders(s *Session) map[string]int {
	out := map[string]int{}
	for _, b := range s.SortedBlocks() {
		out[b.ID] = b.Order
	}
	return out
}

func ids(blocks []*model.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.ID
	}
	return out
}

func TestAddBlock_InsertAfter(t *testing.T) {
	s := newTestSession(t, emptyDoc())

	heading, ok := s.AddBlock(model.BlockHeading, "")
	require.True(t, ok)
	text, _ := s.AddBlock(model.BlockText, "")
	image, _ := s.AddBlock(model.BlockImage, heading.ID)

	assert.Equal(t, map[string]int{heading.ID: 0, image.ID: 1, text.ID: 2}, orders(s))
	assert.Equal(t, []string{heading.ID, image.ID, text.ID}, ids(s.Document().Blocks))
	assert.Equal(t, edited, s.Document().LastModified)
}

func TestAddBlock_UnknownAfterAppends(t *testing.T) {
	s := newTestSession(t, emptyDoc())
	s.AddBlock(model.BlockText, "")

	b, ok := s.AddBlock(model.BlockCode, "missing")

	require.True(t, ok)
	assert.Equal(t, 1, b.Order)
}

func TestAddBlock_DefaultPayload(t *testing.T) {
	s := newTestSession(t, emptyDoc())

	b, _ := s.AddBlock(model.BlockList, "")

	assert.Equal(t, model.BlockList, b.Type())
	assert.Equal(t, model.SizeFull, b.Size)
	list := b.Payload.(*model.ListPayload)
	assert.Len(t, list.Items, 3)
	assert.False(t, list.Ordered)
}

func TestMoveBlock(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	before := orders(s)

	require.True(t, s.MoveBlock("features-list", Up))

	after := orders(s)
	assert.Equal(t, before["features-heading"], after["features-list"])
	assert.Equal(t, before["features-list"], after["features-heading"])
	assert.Equal(t, edited, s.Document().LastModified)
}

func TestMoveBlock_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		doc  func() *model.Document
		id   string
		dir  Direction
	}{
		{"first up", func() *model.Document { return model.DefaultTemplate(created) }, "intro-heading", Up},
		{"last down", func() *model.Document { return model.DefaultTemplate(created) }, "reference-image", Down},
		{"unknown id", func() *model.Document { return model.DefaultTemplate(created) }, "nope", Down},
		{"bad direction", func() *model.Document { return model.DefaultTemplate(created) }, "intro-text", Direction("left")},
		{"empty document", emptyDoc, "x", Up},
		{"single block", func() *model.Document {
			d := emptyDoc()
			d.Blocks = []*model.Block{{ID: "only", Payload: &model.DividerPayload{}}}
			return d
		}, "only", Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.doc())
			before := s.Document()

			assert.False(t, s.MoveBlock(tt.id, tt.dir))
			assert.Equal(t, before, s.Document())
		})
	}
}

func TestMoveBlock_PreservesOrderMultiset(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	collect := func() []int {
		var out []int
		for _, b := range s.SortedBlocks() {
			out = append(out, b.Order)
		}
		sort.Ints(out)
		return out
	}
	want := collect()

	moves := []struct {
		id  string
		dir Direction
	}{
		{"sample-code", Up}, {"sample-code", Up}, {"intro-heading", Down},
		{"reference-image", Up}, {"intro-heading", Up}, {"divider-1", Down},
	}
	for _, m := range moves {
		s.MoveBlock(m.id, m.dir)
		assert.Equal(t, want, collect())
	}
}

func TestMoveBlock_DuplicateOrdersDegradeGracefully(t *testing.T) {
	d := emptyDoc()
	d.Blocks = []*model.Block{
		{ID: "a", Order: 1, Payload: &model.TextPayload{}},
		{ID: "b", Order: 1, Payload: &model.TextPayload{}},
		{ID: "c", Order: 2, Payload: &model.TextPayload{}},
	}
	s := newTestSession(t, d)

	assert.True(t, s.MoveBlock("c", Up))
	assert.Equal(t, []string{"a", "c", "b"}, ids(s.SortedBlocks()))
}

func TestMoveBlock_PastTwinAfterDeleteAndAppend(t *testing.T) {
	s := newTestSession(t, emptyDoc())
	for range 3 {
		s.AddBlock(model.BlockText, "")
	}
	require.True(t, s.DeleteBlock("blk-1"))
	appended, _ := s.AddBlock(model.BlockText, "")
	require.Equal(t, map[string]int{"blk-2": 1, "blk-3": 2, "blk-4": 2}, orders(s))
	s.doc.LastModified = created

	require.True(t, s.MoveBlock(appended.ID, Up))

	assert.Equal(t, []string{"blk-2", "blk-4", "blk-3"}, ids(s.SortedBlocks()))
	assert.Equal(t, edited, s.Document().LastModified)

	require.True(t, s.MoveBlock(appended.ID, Up))
	assert.Equal(t, []string{"blk-4", "blk-2", "blk-3"}, ids(s.SortedBlocks()))
	assert.Equal(t, map[string]int{"blk-4": 1, "blk-2": 2, "blk-3": 2}, orders(s))
}

func TestMoveBlock_LockedBlocksStay(t *testing.T) {
	d := model.DefaultTemplate(created)
	d.Block("intro-text").Locked = true
	s := newTestSession(t, d)

	assert.False(t, s.MoveBlock("intro-text", Down))
	assert.False(t, s.MoveBlock("divider-1", Up))
	assert.True(t, s.MoveBlock("divider-1", Down))
}

func TestUpdateBlock(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	content := "Introduction"
	level := 1
	url := "https://example.com/a.png"

	require.True(t, s.UpdateBlock("intro-heading", model.BlockPatch{Content: &content, Level: &level, Src: &url}))

	b := s.Document().Block("intro-heading")
	assert.Equal(t, model.BlockHeading, b.Type())
	assert.Equal(t, &model.HeadingPayload{Content: content, Level: 1}, b.Payload)
	assert.Equal(t, edited, s.Document().LastModified)
}

func TestUpdateBlock_IgnoresInvalidLevel(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	level := 7

	assert.False(t, s.UpdateBlock("intro-heading", model.BlockPatch{Level: &level}))
	assert.Equal(t, 2, s.Document().Block("intro-heading").Payload.(*model.HeadingPayload).Level)
}

func TestUpdateBlock_UnknownIsNoop(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	content := "x"

	assert.False(t, s.UpdateBlock("missing", model.BlockPatch{Content: &content}))
	assert.Equal(t, created, s.Document().LastModified)
}

func TestUpdateBlock_Locked(t *testing.T) {
	d := model.DefaultTemplate(created)
	d.Block("intro-text").Locked = true
	s := newTestSession(t, d)
	content := "changed"
	unlock := false

	assert.False(t, s.UpdateBlock("intro-text", model.BlockPatch{Content: &content}))
	assert.True(t, s.UpdateBlock("intro-text", model.BlockPatch{Locked: &unlock}))
	assert.True(t, s.UpdateBlock("intro-text", model.BlockPatch{Content: &content}))
	assert.Equal(t, content, s.Document().Block("intro-text").Payload.(*model.TextPayload).Content)
}

func TestUpdateBlock_NormalisesGridPosition(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))

	require.True(t, s.UpdateBlock("reference-image", model.BlockPatch{
		GridPosition: &model.GridPosition{Column: 11, ColumnSpan: 6, Row: -2},
	}))

	assert.Equal(t, &model.GridPosition{Column: 7, ColumnSpan: 6, Row: 0}, s.Document().Block("reference-image").GridPosition)
}

func TestDeleteBlock(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	require.True(t, s.Select("divider-1"))
	before := orders(s)

	require.True(t, s.DeleteBlock("divider-1"))

	after := orders(s)
	assert.NotContains(t, after, "divider-1")
	delete(before, "divider-1")
	assert.Equal(t, before, after)
	assert.Empty(t, s.Selected())
	assert.Equal(t, edited, s.Document().LastModified)

	assert.False(t, s.DeleteBlock("divider-1"))
}

func TestDeleteBlock_KeepsOtherSelection(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	s.Select("intro-text")

	s.DeleteBlock("divider-1")

	assert.Equal(t, "intro-text", s.Selected())
}

func TestResizeGrid(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))

	require.True(t, s.ResizeGrid("features-list", 4))

	assert.Equal(t, &model.GridPosition{Column: 1, ColumnSpan: 4, Row: 4}, s.Document().Block("features-list").GridPosition)
}

func TestResizeGrid_ClampsToRightEdge(t *testing.T) {
	d := emptyDoc()
	d.Blocks = []*model.Block{
		{ID: "a", Order: 0, Payload: &model.ImagePayload{}},
		{ID: "b", Order: 1, Payload: &model.ImagePayload{}},
	}
	s := newTestSession(t, d)

	require.True(t, s.ResizeGrid("b", 12))

	pos := s.Document().Block("b").GridPosition
	assert.Equal(t, 7, pos.Column)
	assert.Equal(t, 6, pos.ColumnSpan)
	assert.LessOrEqual(t, pos.Column+pos.ColumnSpan-1, 12)
}

func TestResizeGrid_ColumnOutsideGrid(t *testing.T) {
	d := emptyDoc()
	d.Blocks = []*model.Block{{ID: "b", Payload: &model.TextPayload{}, GridPosition: &model.GridPosition{Column: 14, ColumnSpan: 1}}}
	s := newTestSession(t, d)

	require.True(t, s.ResizeGrid("b", 4))

	pos := s.Document().Block("b").GridPosition
	assert.Equal(t, model.GridPosition{Column: 12, ColumnSpan: 1}, *pos)
	assert.LessOrEqual(t, pos.Column+pos.ColumnSpan-1, 12)
}

func TestResizeGrid_SameSpanIsNoop(t *testing.T) {
	d := emptyDoc()
	d.Blocks = []*model.Block{{ID: "a", Payload: &model.ImagePayload{}, GridPosition: &model.GridPosition{Column: 1, ColumnSpan: 6}}}
	s := newTestSession(t, d)

	assert.False(t, s.ResizeGrid("a", 6))
	assert.Equal(t, created, s.Document().LastModified)
}

func TestResizeGrid_Locked(t *testing.T) {
	d := model.DefaultTemplate(created)
	d.Block("sample-code").Locked = true
	s := newTestSession(t, d)

	assert.False(t, s.ResizeGrid("sample-code", 4))
	assert.Nil(t, s.Document().Block("sample-code").GridPosition)
}

func TestDropAt(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))

	require.True(t, s.DropAt("reference-image", 10, 3))

	assert.Equal(t, &model.GridPosition{Column: 7, ColumnSpan: 6, Row: 3}, s.Document().Block("reference-image").GridPosition)
	assert.Equal(t, model.GridPosition{Column: 7, ColumnSpan: 6, Row: 3}, s.Layout()["reference-image"])
}

func TestLayoutLock(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	s.Select("intro-text")

	require.True(t, s.ToggleLayoutLock())
	assert.Empty(t, s.Selected())
	before := s.Document()

	content := "x"
	_, added := s.AddBlock(model.BlockText, "")
	assert.False(t, added)
	assert.False(t, s.UpdateBlock("intro-text", model.BlockPatch{Content: &content}))
	assert.False(t, s.DeleteBlock("intro-text"))
	assert.False(t, s.MoveBlock("intro-text", Down))
	assert.False(t, s.ResizeGrid("intro-text", 4))
	assert.False(t, s.DropAt("intro-text", 3, 3))
	assert.False(t, s.Select("intro-text"))
	assert.Equal(t, before, s.Document())

	assert.False(t, s.ToggleLayoutLock())
	assert.True(t, s.DeleteBlock("intro-text"))
}

func TestUpdatePageMeta(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	title := "Robotics"
	locked := true

	require.True(t, s.UpdatePageMeta(model.PageMetaPatch{Title: &title, LayoutLocked: &locked}))

	doc := s.Document()
	assert.Equal(t, "Robotics", doc.Title)
	assert.True(t, doc.LayoutLocked)
	assert.Equal(t, edited, doc.LastModified)

	assert.False(t, s.UpdatePageMeta(model.PageMetaPatch{}))
}

func TestSetEditMode_ClearsSelection(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))
	s.SetEditMode(true)
	s.Select("intro-text")

	s.SetEditMode(false)

	assert.False(t, s.EditMode())
	assert.Empty(t, s.Selected())
}

func TestDocument_IsACopy(t *testing.T) {
	s := newTestSession(t, model.DefaultTemplate(created))

	doc := s.Document()
	doc.Blocks[0].Order = 99
	doc.Title = "mutated"

	assert.Equal(t, 0, s.Document().Blocks[0].Order)
	assert.NotEqual(t, "mutated", s.Document().Title)
}
