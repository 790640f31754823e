// ABOUTME: Overlay domain types: positioned, sized text or image widgets over a stream
// ABOUTME: Defines geometry, drafts, partial patches, and the size/position defaults

//go:generate easyjson -all overlay.go

package overlay

import "fmt"

// Type is the kind of content an overlay displays.
type Type string

const (
	// TypeText overlays display their content as literal text.
	TypeText Type = "text"
	// TypeImage overlays display the image found at their content URL.
	TypeImage Type = "image"
)

// ParseType converts a wire or user-supplied string into a Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeText, TypeImage:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown overlay type %q", s)
	}
}

// Geometry limits and defaults, in pixels.
const (
	MinWidth  = 50
	MinHeight = 30

	DefaultContainerWidth  = 800
	DefaultContainerHeight = 450

	DefaultX = 50
	DefaultY = 50

	DefaultFormWidth  = 150
	DefaultFormHeight = 40
)

// Position is an offset from the viewport's top-left origin.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the box dimensions of an overlay.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultPosition is where newly created overlays are placed.
func DefaultPosition() Position {
	return Position{X: DefaultX, Y: DefaultY}
}

// Overlay is the persisted entity. ID is assigned by the backend on creation.
type Overlay struct {
	ID        string   `json:"id"`
	Type      Type     `json:"type"`
	Content   string   `json:"content"`
	Position  Position `json:"position"`
	Size      Size     `json:"size"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// Draft is an overlay that has not been assigned an id yet.
type Draft struct {
	Type     Type     `json:"type"`
	Content  string   `json:"content"`
	Position Position `json:"position"`
	Size     Size     `json:"size"`
}

// Patch carries only the fields being changed by an update.
type Patch struct {
	Content  *string   `json:"content,omitempty"`
	Position *Position `json:"position,omitempty"`
	Size     *Size     `json:"size,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Content == nil && p.Position == nil && p.Size == nil
}

// Apply returns a copy of o with the patch fields applied.
func (p Patch) Apply(o Overlay) Overlay {
	if p.Content != nil {
		o.Content = *p.Content
	}
	if p.Position != nil {
		o.Position = *p.Position
	}
	if p.Size != nil {
		o.Size = *p.Size
	}
	return o
}

// PositionPatch builds a patch that only moves an overlay.
func PositionPatch(pos Position) Patch {
	return Patch{Position: &pos}
}

// SizePatch builds a patch that only resizes an overlay.
func SizePatch(size Size) Patch {
	return Patch{Size: &size}
}

// List is an ordered collection of overlays as returned by the backend.
type List []Overlay
