// Package codec converts documents to and from their JSON form for export,
// import and duplication.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pagebuilder/internal/model"
)

// CopySuffix is appended to the title of a duplicated document.
const CopySuffix = " (copy)"

// ImportError reports that a document could not be imported.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import document: %v", e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// IsImportError reports whether err is, or wraps, an *ImportError.
func IsImportError(err error) bool {
	var ie *ImportError
	return errors.As(err, &ie)
}

// Codec holds the id and time sources used when refreshing documents.
type Codec struct {
	Now   func() time.Time
	NewID func() string
}

// New returns a Codec using UTC wall time and random UUIDs.
func New() *Codec {
	return &Codec{
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: model.NewID,
	}
}

// Export renders doc as indented JSON.
func (c *Codec) Export(doc *model.Document) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export document: %w", err)
	}
	return out, nil
}

// Decode parses a stored document, keeping its id and timestamp.
func (c *Codec) Decode(text []byte) (*model.Document, error) {
	text = bytes.TrimSpace(text)
	if len(text) == 0 || text[0] != '{' {
		return nil, &ImportError{Err: errors.New("document must be a JSON object")}
	}

	var doc model.Document
	if err := json.Unmarshal(text, &doc); err != nil {
		return nil, &ImportError{Err: err}
	}
	for i, b := range doc.Blocks {
		if b == nil {
			return nil, &ImportError{Err: fmt.Errorf("block %d is null", i)}
		}
	}
	if doc.Blocks == nil {
		doc.Blocks = []*model.Block{}
	}
	return &doc, nil
}

// Import parses text into a new document. The imported id and timestamp are
// never trusted: a fresh id and the current time are assigned.
func (c *Codec) Import(text []byte) (*model.Document, error) {
	doc, err := c.Decode(text)
	if err != nil {
		return nil, err
	}
	doc.ID = c.NewID()
	doc.LastModified = c.Now()
	return doc, nil
}

// Duplicate deep-copies doc under a fresh id, with fresh block ids and a
// suffixed title. Every other block field, order and grid position included,
// is preserved.
func (c *Codec) Duplicate(doc *model.Document) *model.Document {
	dup := doc.Clone()
	dup.ID = c.NewID()
	dup.Title = doc.Title + CopySuffix
	dup.LastModified = c.Now()
	for _, b := range dup.Blocks {
		b.ID = c.NewID()
	}
	return dup
}
