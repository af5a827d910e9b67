// Package editor owns one document being edited and applies the mutation
// operations to it.
//
// A Session is not safe for concurrent use; callers serialise access so that
// each operation runs to completion before the next one starts.
//
// Every operation is a no-op when it cannot apply (unknown id, sequence
// boundary, locked block or layout). No-ops never touch LastModified; every
// effective change stamps it. Operations report whether they changed anything.
package editor

import (
	"time"

	"pagebuilder/internal/layout"
	"pagebuilder/internal/model"
)

// Session is the editing state of a single document.
type Session struct {
	doc        *model.Document
	editMode   bool
	selectedID string

	now   func() time.Time
	newID func() string
}

// Option customises a Session.
type Option func(*Session)

// WithClock sets the time source used for LastModified.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator sets the generator used for new block ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// NewSession starts editing doc. The session takes ownership of doc.
func NewSession(doc *model.Document, opts ...Option) *Session {
	s := &Session{
		doc:   doc,
		now:   func() time.Time { return time.Now().UTC() },
		newID: model.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc.Blocks = layout.SortByOrder(s.doc.Blocks)
	return s
}

// Document returns a deep copy of the current document.
func (s *Session) Document() *model.Document {
	return s.doc.Clone()
}

// ID returns the document id.
func (s *Session) ID() string {
	return s.doc.ID
}

// SortedBlocks returns copies of the blocks ascending by order.
func (s *Session) SortedBlocks() []*model.Block {
	sorted := layout.SortByOrder(s.doc.Blocks)
	out := make([]*model.Block, len(sorted))
	for i, b := range sorted {
		out[i] = b.Clone()
	}
	return out
}

// Layout resolves the grid position of every block.
func (s *Session) Layout() map[string]model.GridPosition {
	return layout.Calculate(s.doc.Blocks)
}

func (s *Session) EditMode() bool { return s.editMode }

func (s *Session) SetEditMode(on bool) {
	s.editMode = on
	if !on {
		s.selectedID = ""
	}
}

// Selected returns the id of the selected block, or "".
func (s *Session) Selected() string { return s.selectedID }

// Select marks a block as selected. Selection is refused while the layout is
// locked or for an unknown id; an empty id clears it.
func (s *Session) Select(id string) bool {
	if id == "" {
		s.selectedID = ""
		return true
	}
	if s.doc.LayoutLocked || s.doc.Block(id) == nil {
		return false
	}
	s.selectedID = id
	return true
}

func (s *Session) touch() {
	s.doc.LastModified = s.now()
}

func (s *Session) resort() {
	s.doc.Blocks = layout.SortByOrder(s.doc.Blocks)
}
