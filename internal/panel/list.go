// ABOUTME: Overlay list entries for the control panel: label, ellipsized content, rounded size
// ABOUTME: Optional fuzzy filter over content ranks matches best-first

package panel

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mauromedda/overlaycast/pkg/overlay"
)

// Entry is one row of the overlay list.
type Entry struct {
	ID string
	// Label is the display form of the overlay type.
	Label string
	// Short is Content truncated to the column width with an ellipsis.
	Short string
	// Content is the full value, shown when the entry is selected.
	Content string
	// Dimensions reads "W × H px" with both values rounded.
	Dimensions string
	// Matched holds the positions in Content that matched the filter.
	Matched []int
}

// contentSource adapts a list to fuzzy.Source over overlay content.
type contentSource overlay.List

func (s contentSource) String(i int) string { return s[i].Content }
func (s contentSource) Len() int            { return len(s) }

// Entries builds list rows for overlays, truncating content to width cells.
// A non-empty filter keeps only fuzzy matches of the content, best first;
// an empty filter keeps insertion order.
func Entries(overlays []overlay.Overlay, filter string, width int) []Entry {
	if filter == "" {
		out := make([]Entry, 0, len(overlays))
		for _, o := range overlays {
			out = append(out, entry(o, width, nil))
		}
		return out
	}

	matches := fuzzy.FindFrom(filter, contentSource(overlays))
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, entry(overlays[m.Index], width, m.MatchedIndexes))
	}
	return out
}

func entry(o overlay.Overlay, width int, matched []int) Entry {
	short := o.Content
	if width > 0 {
		short = runewidth.Truncate(o.Content, width, "…")
	}
	return Entry{
		ID:         o.ID,
		Label:      cases.Title(language.English).String(string(o.Type)),
		Short:      short,
		Content:    o.Content,
		Dimensions: Dimensions(o.Size),
		Matched:    matched,
	}
}

// Dimensions formats a size as "W × H px", rounding half away from zero.
func Dimensions(s overlay.Size) string {
	return fmt.Sprintf("%d × %d px", int(math.Round(s.Width)), int(math.Round(s.Height)))
}
