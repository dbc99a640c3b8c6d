package bubbletea

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/diffpager"
	"github.com/fwojciec/diffpager/config"
)

// Styles control the pager's visual presentation. Line content itself is
// never altered, only colored.
type Styles struct {
	Header  lipgloss.Style
	Commit  lipgloss.Style
	File    lipgloss.Style
	Hunk    lipgloss.Style
	Added   lipgloss.Style
	Deleted lipgloss.Style
	Plain   lipgloss.Style
}

// DefaultStyles returns ANSI-palette styles close to git's own coloring,
// built against the given renderer. If renderer is nil, the default
// renderer is used.
func DefaultStyles(renderer *lipgloss.Renderer) Styles {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return Styles{
		Header:  renderer.NewStyle().Reverse(true).Bold(true),
		Commit:  renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		File:    renderer.NewStyle().Bold(true),
		Hunk:    renderer.NewStyle().Foreground(lipgloss.Color("6")),
		Added:   renderer.NewStyle().Foreground(lipgloss.Color("2")),
		Deleted: renderer.NewStyle().Foreground(lipgloss.Color("1")),
		Plain:   renderer.NewStyle(),
	}
}

// StylesFromConfig applies configured colors on top of the defaults.
// If renderer is nil, the default renderer is used.
func StylesFromConfig(theme config.Theme, renderer *lipgloss.Renderer) Styles {
	s := DefaultStyles(renderer)
	if theme.HeaderForeground != "" {
		s.Header = s.Header.Reverse(false).Foreground(lipgloss.Color(theme.HeaderForeground))
	}
	if theme.HeaderBackground != "" {
		s.Header = s.Header.Reverse(false).Background(lipgloss.Color(theme.HeaderBackground))
	}
	if theme.Commit != "" {
		s.Commit = s.Commit.Foreground(lipgloss.Color(theme.Commit))
	}
	if theme.Hunk != "" {
		s.Hunk = s.Hunk.Foreground(lipgloss.Color(theme.Hunk))
	}
	if theme.Added != "" {
		s.Added = s.Added.Foreground(lipgloss.Color(theme.Added))
	}
	if theme.Deleted != "" {
		s.Deleted = s.Deleted.Foreground(lipgloss.Color(theme.Deleted))
	}
	return s
}

// Line returns the style for a classified line kind.
func (s Styles) Line(kind diffpager.LineKind) lipgloss.Style {
	switch kind {
	case diffpager.LineCommit:
		return s.Commit
	case diffpager.LineFileOld, diffpager.LineFileNew:
		return s.File
	case diffpager.LineHunk:
		return s.Hunk
	case diffpager.LineAdded:
		return s.Added
	case diffpager.LineDeleted:
		return s.Deleted
	default:
		return s.Plain
	}
}
