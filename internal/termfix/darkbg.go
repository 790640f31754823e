// ABOUTME: Fixes the lipgloss background to dark before bubbletea starts querying the terminal
// ABOUTME: Import for side effects ahead of any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

// An explicit background skips the OSC 11 query whose late reply would be
// read as keystrokes by the viewer. Importing bubbletea here would break
// the init ordering this depends on.
func init() {
	lipgloss.SetHasDarkBackground(true)
}
