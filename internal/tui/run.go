// ABOUTME: Entry point for the overlay viewer TUI
// ABOUTME: Creates the tea.Program, bridges store notifications into messages, and blocks until exit

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/overlaycast/internal/store"
)

// Run starts the TUI on the alternate screen with mouse tracking. Blocks
// until the user quits.
func Run(deps Deps) error {
	m := NewModel(deps)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Store handlers run on whichever goroutine mutated the store, including
	// Update itself, so sending must not block.
	unsubscribe := m.deps.Shell.Store().Subscribe(func(c store.Change) {
		go p.Send(StoreChangedMsg{Change: c})
	})
	defer unsubscribe()
	defer m.sh.cancel()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
