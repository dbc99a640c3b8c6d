// Package bubbletea implements the interactive pager using Bubble Tea.
package bubbletea

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/diffpager"
)

// Compile-time interface verification.
var _ diffpager.Viewer = (*Viewer)(nil)

// Viewer displays documents in a full-screen Bubble Tea program.
type Viewer struct {
	// Input is where key events are read from. When the diff itself arrives
	// on stdin this must be the terminal device, not stdin. Nil uses the
	// program default.
	Input io.Reader

	// Output is the render target. Nil uses stdout.
	Output io.Writer

	// Opts configure the pager model (keybindings, styles).
	Opts []Option
}

// View displays the document and blocks until the user quits or ctx is
// canceled.
func (v *Viewer) View(ctx context.Context, doc *diffpager.Document) error {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}
	if v.Input != nil {
		opts = append(opts, tea.WithInput(v.Input))
	}
	if v.Output != nil {
		opts = append(opts, tea.WithOutput(v.Output))
	}

	if _, err := tea.NewProgram(NewModel(doc, v.Opts...), opts...).Run(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}
