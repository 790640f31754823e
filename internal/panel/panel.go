// ABOUTME: Control panel form: content, type, and size fields with local validation
// ABOUTME: Submits a draft at the default position through a Creator; resets only on success

package panel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/overlaycast/pkg/overlay"
)

// Field identifies a form input.
type Field int

const (
	FieldContent Field = iota
	FieldType
	FieldWidth
	FieldHeight
)

// Fields lists form inputs in focus order.
var Fields = []Field{FieldContent, FieldType, FieldWidth, FieldHeight}

// String returns the field label.
func (f Field) String() string {
	switch f {
	case FieldContent:
		return "Content"
	case FieldType:
		return "Type"
	case FieldWidth:
		return "Width"
	case FieldHeight:
		return "Height"
	default:
		return "?"
	}
}

// ErrBusy is returned by Start while a submission is in flight.
var ErrBusy = errors.New("submission in progress")

// Creator persists a draft and returns the stored overlay.
type Creator interface {
	Create(ctx context.Context, d overlay.Draft) (overlay.Overlay, error)
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx context.Context, d overlay.Draft) (overlay.Overlay, error)

// Create calls f.
func (f CreatorFunc) Create(ctx context.Context, d overlay.Draft) (overlay.Overlay, error) {
	return f(ctx, d)
}

// Form is the create-overlay form. Width and height hold raw text and are
// parsed on submit.
type Form struct {
	Content string
	Type    overlay.Type
	Width   string
	Height  string

	err        string
	submitting bool
}

// NewForm returns a form holding the defaults.
func NewForm() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// Reset restores the defaults and clears the error.
func (f *Form) Reset() {
	f.Content = ""
	f.Type = overlay.TypeText
	f.Width = fmt.Sprint(overlay.DefaultFormWidth)
	f.Height = fmt.Sprint(overlay.DefaultFormHeight)
	f.err = ""
}

// Value returns the raw text of a field.
func (f *Form) Value(field Field) string {
	switch field {
	case FieldContent:
		return f.Content
	case FieldType:
		return string(f.Type)
	case FieldWidth:
		return f.Width
	case FieldHeight:
		return f.Height
	}
	return ""
}

// SetField edits a field and clears any error shown for the form.
// An unknown type value is rejected.
func (f *Form) SetField(field Field, value string) error {
	switch field {
	case FieldContent:
		f.Content = value
	case FieldType:
		t, err := overlay.ParseType(value)
		if err != nil {
			return err
		}
		f.Type = t
	case FieldWidth:
		f.Width = value
	case FieldHeight:
		f.Height = value
	default:
		return fmt.Errorf("unknown field %d", field)
	}
	f.err = ""
	return nil
}

// ToggleType flips between text and image.
func (f *Form) ToggleType() {
	if f.Type == overlay.TypeText {
		f.Type = overlay.TypeImage
	} else {
		f.Type = overlay.TypeText
	}
	f.err = ""
}

// Error returns the message shown on the form, or "".
func (f *Form) Error() string { return f.err }

// Submitting reports whether a Submit is in flight.
func (f *Form) Submitting() bool { return f.submitting }

// Draft validates the form and builds the draft it would submit.
func (f *Form) Draft() (overlay.Draft, error) {
	if err := overlay.Validate(f.Type, f.Content); err != nil {
		return overlay.Draft{}, err
	}
	return overlay.NewDraft(f.Type, f.Content, float64(ParseInt(f.Width)), float64(ParseInt(f.Height))), nil
}

// Start validates the form and marks it submitting. Invalid input sets the
// form error and returns it; nothing should be sent in that case.
func (f *Form) Start() (overlay.Draft, error) {
	if f.submitting {
		return overlay.Draft{}, ErrBusy
	}
	d, err := f.Draft()
	if err != nil {
		f.err = err.Error()
		return overlay.Draft{}, err
	}
	f.submitting = true
	return d, nil
}

// Finish ends a submission begun with Start. Success resets the form;
// failure keeps the fields and shows err.
func (f *Form) Finish(err error) {
	f.submitting = false
	if err != nil {
		f.err = err.Error()
		return
	}
	f.Reset()
}

// Submit validates locally and, when valid, hands the draft to c. On success
// the form resets; on failure the fields are kept and the message is shown.
// Invalid input never reaches c.
func (f *Form) Submit(ctx context.Context, c Creator) (overlay.Overlay, error) {
	d, err := f.Start()
	if err != nil {
		return overlay.Overlay{}, err
	}
	o, err := c.Create(ctx, d)
	f.Finish(err)
	if err != nil {
		return overlay.Overlay{}, err
	}
	return o, nil
}

// ParseInt reads a leading base-10 integer after optional whitespace and
// sign, ignoring trailing garbage. Input with no leading digits yields 0.
func ParseInt(s string) int {
	s = strings.TrimLeft(s, " \t\r\n\f\v")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1<<31 {
			n = 1 << 31
		}
	}
	if neg {
		return -n
	}
	return n
}
