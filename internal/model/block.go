package model

import (
	"encoding/json"
	"fmt"
)

// BlockType is the discriminant of a block. It is part of the wire contract.
type BlockType string

const (
	BlockHeading BlockType = "heading"
	BlockText    BlockType = "text"
	BlockImage   BlockType = "image"
	BlockVideo   BlockType = "video"
	BlockCode    BlockType = "code"
	BlockDivider BlockType = "divider"
	BlockList    BlockType = "list"
)

// BlockTypes lists every known block kind in menu order.
var BlockTypes = []BlockType{BlockHeading, BlockText, BlockImage, BlockVideo, BlockCode, BlockList, BlockDivider}

// Valid reports whether t is one of the known block kinds.
func (t BlockType) Valid() bool {
	switch t {
	case BlockHeading, BlockText, BlockImage, BlockVideo, BlockCode, BlockDivider, BlockList:
		return true
	}
	return false
}

// BlockSize is a max-width hint used when a block is not grid-placed.
type BlockSize string

const (
	SizeSmall  BlockSize = "small"
	SizeMedium BlockSize = "medium"
	SizeLarge  BlockSize = "large"
	SizeFull   BlockSize = "full"
)

// Alignment is the horizontal alignment of a block's content.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Color is a named entry of the fixed style palette.
type Color string

const (
	ColorDefault   Color = "default"
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorMuted     Color = "muted"
	ColorAccent    Color = "accent"
	ColorSuccess   Color = "success"
	ColorWarning   Color = "warning"
	ColorDanger    Color = "danger"
)

// Padding is the inner spacing applied to a styled block.
type Padding string

const (
	PaddingNone   Padding = "none"
	PaddingSmall  Padding = "small"
	PaddingMedium Padding = "medium"
	PaddingLarge  Padding = "large"
)

// BlockStyle is the optional visual descriptor of a block.
type BlockStyle struct {
	BackgroundColor Color   `json:"backgroundColor,omitempty"`
	TextColor       Color   `json:"textColor,omitempty"`
	BorderColor     Color   `json:"borderColor,omitempty"`
	Border          bool    `json:"border,omitempty"`
	Shadow          bool    `json:"shadow,omitempty"`
	Padding         Padding `json:"padding,omitempty"`
}

// GridPosition places a block on the 12-column grid. Column is 1-based, Row is 0-based.
type GridPosition struct {
	Column     int `json:"column"`
	ColumnSpan int `json:"columnSpan"`
	Row        int `json:"row"`
}

// Payload is the kind-specific part of a block. The set of implementations is closed.
type Payload interface {
	Type() BlockType
	clone() Payload
}

type HeadingPayload struct {
	Content string `json:"content"`
	Level   int    `json:"level"`
}

type TextPayload struct {
	Content string `json:"content"`
}

type ImagePayload struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

type VideoPayload struct {
	Src   string `json:"src"`
	Title string `json:"title,omitempty"`
}

type CodePayload struct {
	Content  string `json:"content"`
	Language string `json:"language"`
}

type ListPayload struct {
	Items   []string `json:"items"`
	Ordered bool     `json:"ordered"`
}

type DividerPayload struct{}

func (*HeadingPayload) Type() BlockType { return BlockHeading }
func (*TextPayload) Type() BlockType    { return BlockText }
func (*ImagePayload) Type() BlockType   { return BlockImage }
func (*VideoPayload) Type() BlockType   { return BlockVideo }
func (*CodePayload) Type() BlockType    { return BlockCode }
func (*ListPayload) Type() BlockType    { return BlockList }
func (*DividerPayload) Type() BlockType { return BlockDivider }

func (p *HeadingPayload) clone() Payload { c := *p; return &c }
func (p *TextPayload) clone() Payload    { c := *p; return &c }
func (p *ImagePayload) clone() Payload   { c := *p; return &c }
func (p *VideoPayload) clone() Payload   { c := *p; return &c }
func (p *CodePayload) clone() Payload    { c := *p; return &c }
func (p *DividerPayload) clone() Payload { return &DividerPayload{} }
func (p *ListPayload) clone() Payload {
	c := *p
	c.Items = append([]string(nil), p.Items...)
	return &c
}

// Block is one content element of a document.
// The kind is carried by Payload and never changes after creation.
type Block struct {
	ID           string
	Size         BlockSize
	Order        int
	Alignment    Alignment
	Style        *BlockStyle
	Locked       bool
	GridPosition *GridPosition
	Payload      Payload
}

// Type returns the block kind, or "" for a block without payload.
func (b *Block) Type() BlockType {
	if b.Payload == nil {
		return ""
	}
	return b.Payload.Type()
}

// Clone returns a deep copy of b.
func (b *Block) Clone() *Block {
	c := *b
	if b.Style != nil {
		s := *b.Style
		c.Style = &s
	}
	if b.GridPosition != nil {
		g := *b.GridPosition
		c.GridPosition = &g
	}
	if b.Payload != nil {
		c.Payload = b.Payload.clone()
	}
	return &c
}

// NewPayload returns the default payload a freshly added block of kind t carries.
func NewPayload(t BlockType) Payload {
	switch t {
	case BlockHeading:
		return &HeadingPayload{Content: "New heading", Level: 2}
	case BlockText:
		return &TextPayload{Content: "Enter text..."}
	case BlockImage:
		return &ImagePayload{Alt: "Image description"}
	case BlockVideo:
		return &VideoPayload{Title: "Video title"}
	case BlockCode:
		return &CodePayload{Content: "// Enter code", Language: "javascript"}
	case BlockDivider:
		return &DividerPayload{}
	case BlockList:
		return &ListPayload{Items: []string{"Item 1", "Item 2", "Item 3"}}
	default:
		return &TextPayload{}
	}
}

// blockBase holds the shared wire attributes of a block.
type blockBase struct {
	ID           string        `json:"id"`
	Type         BlockType     `json:"type"`
	Size         BlockSize     `json:"size"`
	Order        int           `json:"order"`
	Alignment    Alignment     `json:"alignment,omitempty"`
	Style        *BlockStyle   `json:"style,omitempty"`
	Locked       bool          `json:"locked,omitempty"`
	GridPosition *GridPosition `json:"gridPosition,omitempty"`
}

// MarshalJSON flattens the payload fields next to the shared attributes.
func (b Block) MarshalJSON() ([]byte, error) {
	base := blockBase{
		ID:           b.ID,
		Type:         b.Type(),
		Size:         b.Size,
		Order:        b.Order,
		Alignment:    b.Alignment,
		Style:        b.Style,
		Locked:       b.Locked,
		GridPosition: b.GridPosition,
	}
	switch p := b.Payload.(type) {
	case *HeadingPayload:
		return json.Marshal(struct {
			blockBase
			*HeadingPayload
		}{base, p})
	case *TextPayload:
		return json.Marshal(struct {
			blockBase
			*TextPayload
		}{base, p})
	case *ImagePayload:
		return json.Marshal(struct {
			blockBase
			*ImagePayload
		}{base, p})
	case *VideoPayload:
		return json.Marshal(struct {
			blockBase
			*VideoPayload
		}{base, p})
	case *CodePayload:
		return json.Marshal(struct {
			blockBase
			*CodePayload
		}{base, p})
	case *ListPayload:
		items := p.Items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(struct {
			blockBase
			Items   []string `json:"items"`
			Ordered bool     `json:"ordered"`
		}{base, items, p.Ordered})
	case *DividerPayload:
		return json.Marshal(base)
	default:
		return nil, fmt.Errorf("block %q: no payload", b.ID)
	}
}

// UnmarshalJSON decodes a flattened block, choosing the payload by its type discriminant.
func (b *Block) UnmarshalJSON(data []byte) error {
	var base blockBase
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}
	var p Payload
	switch base.Type {
	case BlockHeading:
		p = &HeadingPayload{}
	case BlockText:
		p = &TextPayload{}
	case BlockImage:
		p = &ImagePayload{}
	case BlockVideo:
		p = &VideoPayload{}
	case BlockCode:
		p = &CodePayload{}
	case BlockList:
		p = &ListPayload{}
	case BlockDivider:
		p = &DividerPayload{}
	default:
		return fmt.Errorf("block %q: unknown type %q", base.ID, base.Type)
	}
	if _, ok := p.(*DividerPayload); !ok {
		if err := json.Unmarshal(data, p); err != nil {
			return err
		}
	}
	*b = Block{
		ID:           base.ID,
		Size:         base.Size,
		Order:        base.Order,
		Alignment:    base.Alignment,
		Style:        base.Style,
		Locked:       base.Locked,
		GridPosition: base.GridPosition,
		Payload:      p,
	}
	return nil
}
