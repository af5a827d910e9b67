package model

import (
	"time"

	"github.com/google/uuid"
)

// Document is a page: header metadata plus its blocks.
// Blocks are sequenced by Order, not by slice position.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Category     string    `json:"category"`
	LastModified time.Time `json:"lastModified"`
	LayoutLocked bool      `json:"layoutLocked,omitempty"`
	Blocks       []*Block  `json:"blocks"`
}

// NewID returns a fresh identifier for documents and blocks.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := *d
	c.Blocks = make([]*Block, len(d.Blocks))
	for i, b := range d.Blocks {
		c.Blocks[i] = b.Clone()
	}
	return &c
}

// Block returns the block with the given id, or nil.
func (d *Document) Block(id string) *Block {
	for _, b := range d.Blocks {
		if b.ID == id {
			return b
		}
	}
	return nil
}
