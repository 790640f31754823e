// ABOUTME: Control panel view: create form and overlay list, with a click map for mouse input
// ABOUTME: Each rendered line records which cell ranges focus a field, submit, select, or delete

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/overlaycast/internal/panel"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

// focus is the input that receives keystrokes.
type focus int

const (
	focusNone focus = iota
	focusURL
	focusType
	focusContent
	focusWidth
	focusHeight
	focusSubmit
	focusList
	focusFilter
)

// focusCycle is the tab order. The filter is entered with "/" only.
var focusCycle = []focus{focusNone, focusURL, focusType, focusContent, focusWidth, focusHeight, focusSubmit, focusList}

// editable reports whether the focused input takes typed runes.
func (f focus) editable() bool {
	switch f {
	case focusURL, focusContent, focusWidth, focusHeight, focusFilter:
		return true
	}
	return false
}

// field maps a form focus to its panel field.
func (f focus) field() (panel.Field, bool) {
	switch f {
	case focusContent:
		return panel.FieldContent, true
	case focusType:
		return panel.FieldType, true
	case focusWidth:
		return panel.FieldWidth, true
	case focusHeight:
		return panel.FieldHeight, true
	}
	return 0, false
}

const (
	panelHeading    = "Overlay Manager"
	emptyListTitle  = "No overlays yet"
	emptyListHint   = "Create your first overlay above"
	addLabel        = "[ Add Overlay ]"
	addingLabel     = "Adding..."
	textPlaceholder = "Enter overlay text..."
	urlPlaceholder  = "https://example.com/image.png"
	deleteGlyph     = "✕"
)

type actionKind int

const (
	actFocus actionKind = iota
	actToggleType
	actSubmit
	actSelect
	actDelete
)

type action struct {
	kind  actionKind
	focus focus
	id    string
}

// hit is a clickable cell range on one panel line.
type hit struct {
	line, from, to int
	act            action
}

// panelView is a rendered panel and its click map. Lines are width cells
// wide; hit columns are relative to the first cell.
type panelView struct {
	lines []string
	hits  []hit
}

func (v *panelView) add(line string, acts ...hit) {
	row := len(v.lines)
	v.lines = append(v.lines, line)
	for _, h := range acts {
		h.line = row
		v.hits = append(v.hits, h)
	}
}

// actionAt returns the action under a panel cell.
func (v panelView) actionAt(line, col int) (action, bool) {
	for _, h := range v.hits {
		if h.line == line && col >= h.from && col < h.to {
			return h.act, true
		}
	}
	return action{}, false
}

func wholeLine(width int, a action) hit {
	return hit{from: 0, to: width, act: a}
}

// renderPanel draws the form and list into width×height cells.
func (m Model) renderPanel(width, height int) panelView {
	var v panelView
	if width <= 0 {
		return v
	}
	form := m.deps.Form

	v.add(titleStyle.Render(fit(panelHeading, width)))
	v.add("")

	typeLabel := "‹ " + labelOf(form.Type) + " ›"
	typeLine := fit(labelStyle.Render("Type ")+m.styleIf(focusType, typeLabel), width)
	v.add(typeLine, wholeLine(width, action{kind: actToggleType}))

	contentLabel, placeholder := "Text Content", textPlaceholder
	if form.Type == overlay.TypeImage {
		contentLabel, placeholder = "Image URL", urlPlaceholder
	}
	v.add(labelStyle.Render(fit(contentLabel, width)))
	v.add(m.renderInput(form.Content, placeholder, width, focusContent),
		wholeLine(width, action{kind: actFocus, focus: focusContent}))

	half := max(1, (width-1)/2)
	v.add(labelStyle.Render(fit(fit("Width (px)", half)+" "+"Height (px)", width)))
	v.add(m.renderInput(form.Width, "", half, focusWidth)+" "+m.renderInput(form.Height, "", width-half-1, focusHeight),
		hit{from: 0, to: half, act: action{kind: actFocus, focus: focusWidth}},
		hit{from: half + 1, to: width, act: action{kind: actFocus, focus: focusHeight}})

	if msg := form.Error(); msg != "" {
		for _, l := range wrapText(msg, width) {
			v.add(formErrStyle.Render(fit(l, width)))
		}
	}

	button := addLabel
	if form.Submitting() {
		button = addingLabel
	}
	style := buttonStyle
	if m.focus == focusSubmit {
		style = focusStyle.Padding(0, 1)
	}
	bw := min(width, ansi.StringWidth(button)+2)
	v.add(style.Render(ansi.Truncate(button, bw-2, "")), hit{from: 0, to: bw, act: action{kind: actSubmit}})
	v.add("")

	m.renderList(&v, width, height)
	return v
}

func (m Model) renderList(v *panelView, width, height int) {
	overlays := m.deps.Shell.Overlays()
	title := fmt.Sprintf("Active Overlays (%d)", len(overlays))
	if m.filter != "" || m.focus == focusFilter {
		title += "  /" + m.filter
		if m.focus == focusFilter {
			title += "▏"
		}
	}
	v.add(titleStyle.Render(fit(title, width)), wholeLine(width, action{kind: actFocus, focus: focusList}))

	if len(overlays) == 0 {
		v.add("")
		v.add(mutedStyle.Render(fit(centered(emptyListTitle, width), width)))
		v.add(mutedStyle.Faint(true).Render(fit(centered(emptyListHint, width), width)))
		return
	}

	entries := panel.Entries(overlays, m.filter, max(1, width-2))
	for _, e := range entries {
		if len(v.lines) >= height {
			return
		}
		sel := e.ID == m.selected
		marker := "  "
		if sel {
			marker = "▸ "
		}
		head := marker + e.Label + "  " + e.Dimensions
		head = fit(head, width-2) + " " + deleteGlyph
		if sel {
			head = selectedStyle.Render(fit(head, width))
		}
		v.add(head,
			hit{from: 0, to: width - 2, act: action{kind: actSelect, id: e.ID}},
			hit{from: width - 2, to: width, act: action{kind: actDelete, id: e.ID}})

		body := "  " + highlight(e.Short, e.Matched)
		v.add(fit(body, width), wholeLine(width, action{kind: actSelect, id: e.ID}))

		if sel && e.Short != e.Content {
			for _, l := range wrapText(e.Content, width-2) {
				v.add(mutedStyle.Render(fit("  "+l, width)))
			}
		}
	}
}

// renderInput draws a one-line text field. A focused field shows its tail
// and a cursor; an empty unfocused field shows its placeholder.
func (m Model) renderInput(value, placeholder string, width int, f focus) string {
	if width <= 0 {
		return ""
	}
	focused := m.focus == f
	if value == "" && !focused {
		return inputStyle.Render(placeholderStyle.Render(fit(placeholder, width)))
	}
	text := value
	if focused {
		text += "▏"
	}
	if w := ansi.StringWidth(text); w > width {
		text = ansi.TruncateLeft(text, w-width+1, ellipsis)
	}
	if focused {
		return focusStyle.Render(fit(text, width))
	}
	return inputStyle.Render(fit(text, width))
}

func (m Model) styleIf(f focus, s string) string {
	if m.focus == f {
		return focusStyle.Render(s)
	}
	return s
}

func labelOf(t overlay.Type) string {
	if t == overlay.TypeImage {
		return "Image"
	}
	return "Text"
}

func centered(s string, width int) string {
	pad := max(0, (width-ansi.StringWidth(s))/2)
	return strings.Repeat(" ", pad) + s
}

// highlight underlines the runes of s that start at the matched byte offsets.
func highlight(s string, matched []int) string {
	if len(matched) == 0 {
		return s
	}
	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}
	var sb strings.Builder
	for i, r := range s {
		if hits[i] {
			sb.WriteString(matchStyle.Render(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
