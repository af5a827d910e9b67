package model

import "slices"

// BlockPatch is a partial update for a block. Nil fields are left untouched.
// It has no id or type field: neither can be changed through an update.
// Kind-specific fields that do not apply to the target block are ignored.
type BlockPatch struct {
	Size         *BlockSize    `json:"size,omitempty"`
	Alignment    *Alignment    `json:"alignment,omitempty"`
	Style        *BlockStyle   `json:"style,omitempty"`
	Locked       *bool         `json:"locked,omitempty"`
	GridPosition *GridPosition `json:"gridPosition,omitempty"`

	Content  *string   `json:"content,omitempty"`
	Level    *int      `json:"level,omitempty"`
	Src      *string   `json:"src,omitempty"`
	Alt      *string   `json:"alt,omitempty"`
	Caption  *string   `json:"caption,omitempty"`
	Title    *string   `json:"title,omitempty"`
	Language *string   `json:"language,omitempty"`
	Items    *[]string `json:"items,omitempty"`
	Ordered  *bool     `json:"ordered,omitempty"`
}

// OnlyLocked reports whether the patch touches nothing but the locked flag.
func (p BlockPatch) OnlyLocked() bool {
	return p.Locked != nil &&
		p.Size == nil && p.Alignment == nil && p.Style == nil && p.GridPosition == nil &&
		p.Content == nil && p.Level == nil && p.Src == nil && p.Alt == nil && p.Caption == nil &&
		p.Title == nil && p.Language == nil && p.Items == nil && p.Ordered == nil
}

// Apply merges p into b. It reports whether any field actually changed.
func (p BlockPatch) Apply(b *Block) bool {
	changed := false
	if p.Size != nil && *p.Size != b.Size {
		b.Size = *p.Size
		changed = true
	}
	if p.Alignment != nil && *p.Alignment != b.Alignment {
		b.Alignment = *p.Alignment
		changed = true
	}
	if p.Style != nil && (b.Style == nil || *b.Style != *p.Style) {
		s := *p.Style
		b.Style = &s
		changed = true
	}
	if p.Locked != nil && *p.Locked != b.Locked {
		b.Locked = *p.Locked
		changed = true
	}
	if p.GridPosition != nil && (b.GridPosition == nil || *b.GridPosition != *p.GridPosition) {
		g := *p.GridPosition
		b.GridPosition = &g
		changed = true
	}

	switch pl := b.Payload.(type) {
	case *HeadingPayload:
		changed = setString(&pl.Content, p.Content) || changed
		if p.Level != nil && *p.Level >= 1 && *p.Level <= 3 && *p.Level != pl.Level {
			pl.Level = *p.Level
			changed = true
		}
	case *TextPayload:
		changed = setString(&pl.Content, p.Content) || changed
	case *ImagePayload:
		changed = setString(&pl.Src, p.Src) || changed
		changed = setString(&pl.Alt, p.Alt) || changed
		changed = setString(&pl.Caption, p.Caption) || changed
	case *VideoPayload:
		changed = setString(&pl.Src, p.Src) || changed
		changed = setString(&pl.Title, p.Title) || changed
	case *CodePayload:
		changed = setString(&pl.Content, p.Content) || changed
		changed = setString(&pl.Language, p.Language) || changed
	case *ListPayload:
		if p.Items != nil && !slices.Equal(pl.Items, *p.Items) {
			pl.Items = append([]string(nil), (*p.Items)...)
			changed = true
		}
		if p.Ordered != nil && *p.Ordered != pl.Ordered {
			pl.Ordered = *p.Ordered
			changed = true
		}
	}
	return changed
}

func setString(dst *string, v *string) bool {
	if v == nil || *dst == *v {
		return false
	}
	*dst = *v
	return true
}

// PageMetaPatch is a partial update of the document header.
type PageMetaPatch struct {
	Title        *string `json:"title,omitempty"`
	Subtitle     *string `json:"subtitle,omitempty"`
	Category     *string `json:"category,omitempty"`
	LayoutLocked *bool   `json:"layoutLocked,omitempty"`
}

// Apply merges p into d. It reports whether any field was assigned.
func (p PageMetaPatch) Apply(d *Document) bool {
	changed := false
	changed = setString(&d.Title, p.Title) || changed
	changed = setString(&d.Subtitle, p.Subtitle) || changed
	changed = setString(&d.Category, p.Category) || changed
	if p.LayoutLocked != nil && *p.LayoutLocked != d.LayoutLocked {
		d.LayoutLocked = *p.LayoutLocked
		changed = true
	}
	return changed
}
