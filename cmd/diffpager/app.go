package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/diffpager"
)

// App wires the parser and viewer behind injectable collaborators so the
// command can be tested without a terminal.
type App struct {
	// Input is the diff stream. Used when FilePath is empty; defaults to
	// stdin.
	Input io.Reader

	// FilePath reads the diff from a file instead of Input.
	FilePath string

	Parser diffpager.Parser
	Viewer diffpager.Viewer
}

// Run reads the whole diff, then hands the document to the viewer for the
// interactive phase. An empty diff is viewed as an empty document, not an
// error; only a failure to read the input at all is fatal.
func (a *App) Run(ctx context.Context) error {
	in := a.Input
	if a.FilePath != "" {
		f, err := os.Open(a.FilePath)
		if err != nil {
			return fmt.Errorf("opening diff: %w", err)
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		in = os.Stdin
	}

	doc, err := a.Parser.Parse(in)
	if err != nil {
		return fmt.Errorf("reading diff: %w", err)
	}

	return a.Viewer.View(ctx, doc)
}
