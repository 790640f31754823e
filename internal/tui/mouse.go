// ABOUTME: Mouse routing: viewport presses start gestures, motion and release go to the captured box
// ABOUTME: Presses outside the viewport hit the URL field, playback controls, or panel actions

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.tooSmall() {
		return m, nil
	}
	l := m.layout()
	p := m.grid.point(msg.X-l.vx, msg.Y-l.vy)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.sh.layer.Move(p)
		return m, nil

	case tea.MouseActionRelease:
		if m.sh.layer.Active() == nil {
			return m, nil
		}
		m.sh.layer.Release(p)
		return m.flush()

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
	default:
		return m, nil
	}

	switch {
	case l.inViewport(msg.X, msg.Y):
		m.focus = focusNone
		if e, _ := m.sh.layer.Press(p); e != nil {
			m.selected = e.ID()
		} else {
			m.selected = ""
		}
		return m, nil

	case msg.Y == 1:
		if msg.X >= m.width-len("Load")-2 {
			return m.submitURL()
		}
		m.focus = focusURL
		return m, nil

	case msg.Y == l.controlsRow:
		return m.clickControls(msg.X)

	case msg.X >= l.px && msg.Y >= l.py:
		return m.clickPanel(msg.Y-l.py, msg.X-l.px)
	}
	return m, nil
}

func (m Model) clickControls(col int) (Model, tea.Cmd) {
	switch {
	case col < playCells:
		return m.togglePlay()
	case col >= volumeBarX && col < volumeBarX+volumeCells:
		m.deps.Shell.SetVolume(float64(col-volumeBarX+1) / volumeCells)
	}
	return m, nil
}

func (m Model) clickPanel(line, col int) (Model, tea.Cmd) {
	l := m.layout()
	act, ok := m.renderPanel(l.pw, l.ph).actionAt(line, col)
	if !ok {
		return m, nil
	}
	switch act.kind {
	case actFocus:
		m.focus = act.focus
	case actToggleType:
		m.focus = focusType
		m.deps.Form.ToggleType()
	case actSubmit:
		m.focus = focusSubmit
		return m.submitForm()
	case actSelect:
		m.focus = focusList
		if m.selected == act.id {
			m.selected = ""
		} else {
			m.selected = act.id
		}
	case actDelete:
		return m.deleteOverlay(act.id)
	}
	return m, nil
}
