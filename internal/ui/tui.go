// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the player UI
package ui

import (
	"github.com/audinux/audinux-go/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI program. Mouse reporting is enabled so clicks in the
// waveform area seek.
func Run(sess *session.Session, zoom float64) *tea.Program {
	return tea.NewProgram(
		NewModel(sess, zoom),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}
