// ABOUTME: Root bubbletea model: routes backend results, keys, and mouse gestures to the shell
// ABOUTME: Finished drags and resizes become optimistic commits batched after pointer release

package tui

import (
	"context"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/overlaycast/internal/layer"
	pilog "github.com/mauromedda/overlaycast/internal/log"
	"github.com/mauromedda/overlaycast/internal/optimistic"
	"github.com/mauromedda/overlaycast/internal/panel"
	"github.com/mauromedda/overlaycast/internal/stream"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

// volumeStep is the change per +/- key press.
const volumeStep = 0.1

// shared holds state that must survive Model value copies. Update runs on
// one goroutine; commands only report back through messages.
type shared struct {
	ctx    context.Context
	cancel context.CancelFunc

	layer *layer.Layer
	// pending collects commits produced by gesture callbacks during Update.
	pending []*optimistic.Txn
	// requested holds image URLs already handed to the loader.
	requested map[string]bool

	// Stream state. gen invalidates results from a replaced stream.
	gen        int
	reader     *stream.MJPEGReader
	frame      image.Image
	frameLines []string
	streamErr  error

	renders *renderCache
	help    *helpRenderer
}

// Model is the root bubbletea model.
type Model struct {
	sh   *shared
	deps Deps
	grid grid

	width, height int

	focus    focus
	selected string
	filter   string
	showHelp bool
}

// NewModel creates the model. The store is empty until Init's load lands.
func NewModel(deps Deps) Model {
	deps = deps.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	sh := &shared{
		ctx:       ctx,
		cancel:    cancel,
		requested: make(map[string]bool),
		renders:   newRenderCache(),
		help:      newHelpRenderer(helpStyle(lipgloss.HasDarkBackground())),
	}
	s := deps.Shell
	sh.layer = layer.New(layer.Callbacks{
		PositionChanged: func(id string, pos overlay.Position) {
			sh.pending = append(sh.pending, s.BeginMove(id, pos))
		},
		SizeChanged: func(id string, size overlay.Size) {
			sh.pending = append(sh.pending, s.BeginResize(id, size))
		},
	})
	return Model{
		sh:   sh,
		deps: deps,
		grid: grid{cellW: deps.CellWidth, cellH: deps.CellHeight},
	}
}

// Init fetches the overlay list.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update routes messages to their handlers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// --- Layout ---
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		l := m.layout()
		m.sh.layer.SetBounds(m.grid.bounds(l.vw, l.vh))
		m.sh.frameLines = nil
		return m, nil

	// --- Backend results ---
	case LoadedMsg:
		return m.sync()

	case CreatedMsg:
		m.deps.Form.Finish(msg.Err)
		if msg.Err == nil {
			m.selected = msg.Overlay.ID
		}
		return m.sync()

	case CommittedMsg:
		if msg.Result.Stale {
			pilog.Warn("tui: %s committed after a refetch; view may be behind", msg.ID)
		}
		return m.sync()

	case StoreChangedMsg:
		return m.sync()

	case ImageLoadedMsg:
		return m, nil

	// --- Stream ---
	case streamOpenedMsg:
		return m.streamOpened(msg)

	case FrameMsg:
		return m.frameReceived(msg)

	// --- Input ---
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// sync rebuilds the layer from the store, drops a selection that no longer
// exists, and starts loads for new image overlays.
func (m Model) sync() (Model, tea.Cmd) {
	overlays := m.deps.Shell.Overlays()
	m.sh.layer.Sync(overlays)
	if m.selected != "" {
		if _, ok := m.sh.layer.Entity(m.selected); !ok {
			m.selected = ""
		}
	}

	var cmds []tea.Cmd
	for _, o := range overlays {
		if o.Type != overlay.TypeImage || m.sh.requested[o.Content] {
			continue
		}
		m.sh.requested[o.Content] = true
		cmds = append(cmds, m.deps.Images.loadCmd(m.sh.ctx, o.Content))
	}
	return m, tea.Batch(cmds...)
}

// flush turns commits queued by gesture callbacks into commands.
func (m Model) flush() (Model, tea.Cmd) {
	pending := m.sh.pending
	m.sh.pending = nil
	cmds := make([]tea.Cmd, 0, len(pending)+1)
	for _, t := range pending {
		cmds = append(cmds, m.commitCmd(t))
	}
	m, syncCmd := m.sync()
	cmds = append(cmds, syncCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) loadCmd() tea.Cmd {
	s, ctx := m.deps.Shell, m.sh.ctx
	return func() tea.Msg {
		return LoadedMsg{Err: s.Load(ctx)}
	}
}

func (m Model) commitCmd(t *optimistic.Txn) tea.Cmd {
	s, ctx := m.deps.Shell, m.sh.ctx
	return func() tea.Msg {
		return CommittedMsg{ID: t.ID(), Result: s.Commit(ctx, t)}
	}
}

// submitForm validates locally and sends a create. Invalid input only
// updates the form error.
func (m Model) submitForm() (Model, tea.Cmd) {
	d, err := m.deps.Form.Start()
	if err != nil {
		return m, nil
	}
	s, ctx := m.deps.Shell, m.sh.ctx
	return m, func() tea.Msg {
		o, err := s.Create(ctx, d)
		return CreatedMsg{Overlay: o, Err: err}
	}
}

// deleteSelected removes the selected overlay immediately and commits.
func (m Model) deleteSelected() (Model, tea.Cmd) {
	if m.selected == "" {
		return m, nil
	}
	return m.deleteOverlay(m.selected)
}

func (m Model) deleteOverlay(id string) (Model, tea.Cmd) {
	t := m.deps.Shell.BeginDelete(id)
	if m.selected == id {
		m.selected = ""
	}
	m, syncCmd := m.sync()
	return m, tea.Batch(m.commitCmd(t), syncCmd)
}

// entryIDs lists overlay ids in panel order under the current filter.
func (m Model) entryIDs() []string {
	entries := panel.Entries(m.deps.Shell.Overlays(), m.filter, 0)
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

// moveSelection steps the list selection by delta, wrapping around.
func (m Model) moveSelection(delta int) Model {
	ids := m.entryIDs()
	if len(ids) == 0 {
		m.selected = ""
		return m
	}
	idx := -1
	for i, id := range ids {
		if id == m.selected {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(ids) - 1
	default:
		idx = (idx + delta + len(ids)) % len(ids)
	}
	m.selected = ids[idx]
	return m
}

func (m Model) quit() (Model, tea.Cmd) {
	m.closeStream()
	m.sh.cancel()
	return m, tea.Quit
}

// --- Keys ---

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if msg.Type == tea.KeySpace {
		key = " "
	}
	if key == "ctrl+c" {
		return m.quit()
	}

	if m.showHelp {
		switch key {
		case "?", "esc", "q", "enter":
			m.showHelp = false
		}
		return m, nil
	}

	switch key {
	case "tab":
		m.focus = m.cycleFocus(1)
		return m, nil
	case "shift+tab":
		m.focus = m.cycleFocus(-1)
		return m, nil
	case "esc":
		return m.escape(), nil
	case "enter":
		return m.enter()
	}

	if m.focus.editable() {
		return m.edit(msg), nil
	}

	switch m.focus {
	case focusType:
		switch key {
		case "left", "right", "h", "l":
			m.deps.Form.ToggleType()
			return m, nil
		}
	case focusList:
		switch key {
		case "up", "k":
			return m.moveSelection(-1), nil
		case "down", "j":
			return m.moveSelection(1), nil
		}
	}

	switch key {
	case " ":
		return m.togglePlay()
	case "+", "=":
		m.deps.Shell.StepVolume(volumeStep)
	case "-", "_":
		m.deps.Shell.StepVolume(-volumeStep)
	case "d", "delete":
		return m.deleteSelected()
	case "/":
		m.focus = focusFilter
	case "?":
		m.showHelp = true
	}
	return m, nil
}

func (m Model) cycleFocus(delta int) focus {
	cur := m.focus
	if cur == focusFilter {
		cur = focusList
	}
	idx := 0
	for i, f := range focusCycle {
		if f == cur {
			idx = i
			break
		}
	}
	n := len(focusCycle)
	return focusCycle[(idx+delta+n)%n]
}

func (m Model) escape() Model {
	switch {
	case m.focus == focusFilter:
		m.filter = ""
		m.focus = focusList
	case m.focus != focusNone:
		m.focus = focusNone
	default:
		m.selected = ""
	}
	return m
}

func (m Model) enter() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusURL:
		return m.submitURL()
	case focusFilter:
		m.focus = focusList
		return m, nil
	case focusType:
		m.deps.Form.ToggleType()
		return m, nil
	case focusContent, focusWidth, focusHeight, focusSubmit:
		return m.submitForm()
	}
	return m, nil
}

// edit applies a keystroke to the focused text input.
func (m Model) edit(msg tea.KeyMsg) Model {
	cur := m.inputValue()
	switch msg.Type {
	case tea.KeyRunes:
		cur += string(msg.Runes)
	case tea.KeySpace:
		cur += " "
	case tea.KeyBackspace:
		if r := []rune(cur); len(r) > 0 {
			cur = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		cur = ""
	default:
		return m
	}
	m.setInputValue(cur)
	return m
}

func (m Model) inputValue() string {
	switch m.focus {
	case focusURL:
		return m.deps.Shell.InputURL()
	case focusFilter:
		return m.filter
	}
	if f, ok := m.focus.field(); ok {
		return m.deps.Form.Value(f)
	}
	return ""
}

func (m *Model) setInputValue(v string) {
	switch m.focus {
	case focusURL:
		m.deps.Shell.SetInputURL(v)
		return
	case focusFilter:
		m.filter = strings.TrimLeft(v, " ")
		return
	}
	if f, ok := m.focus.field(); ok {
		if err := m.deps.Form.SetField(f, v); err != nil {
			pilog.Debug("tui: %s: %v", f, err)
		}
	}
}
