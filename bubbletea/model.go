package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/fwojciec/diffpager"
)

const (
	// wheelScrollLines is how far one mouse wheel notch scrolls.
	wheelScrollLines = 3

	// abbrevLen is the displayed length of full commit hashes.
	abbrevLen = 12

	headerSeparator = " · "
)

// Model is the interactive pager. It owns the viewport state and resolves
// the context header for the topmost visible line on every event; the
// header always describes the top of the viewport, never an average of
// what is visible.
type Model struct {
	doc    *diffpager.Document
	keys   KeyMap
	styles Styles

	top    int // first visible body line
	width  int
	height int // terminal height, header row included
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap overrides the default keybindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithStyles overrides the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithRenderer builds the default styles against a specific renderer.
// This is useful for pinning a color profile in tests without affecting
// global state.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.styles = DefaultStyles(r) }
}

// NewModel creates a pager over a parsed document.
func NewModel(doc *diffpager.Document, opts ...Option) Model {
	m := Model{
		doc:    doc,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(nil),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Scroll operations never fail; out-of-range
// requests clamp silently.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.top = m.clamp(m.top)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelDown:
				m = m.ScrollBy(wheelScrollLines)
			case tea.MouseButtonWheelUp:
				m = m.ScrollBy(-wheelScrollLines)
			}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m = m.ScrollBy(1)
		case key.Matches(msg, m.keys.Up):
			m = m.ScrollBy(-1)
		case key.Matches(msg, m.keys.PageDown):
			m = m.ScrollBy(m.bodyHeight())
		case key.Matches(msg, m.keys.PageUp):
			m = m.ScrollBy(-m.bodyHeight())
		case key.Matches(msg, m.keys.HalfDown):
			m = m.ScrollBy(m.bodyHeight() / 2)
		case key.Matches(msg, m.keys.HalfUp):
			m = m.ScrollBy(-m.bodyHeight() / 2)
		case key.Matches(msg, m.keys.Top):
			m = m.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m = m.GotoBottom()
		}
	}
	return m, nil
}

// ScrollBy moves the viewport by delta lines, clamping to the valid range.
func (m Model) ScrollBy(delta int) Model {
	m.top = m.clamp(m.top + delta)
	return m
}

// GotoTop scrolls to the first line.
func (m Model) GotoTop() Model {
	m.top = 0
	return m
}

// GotoBottom scrolls so the last body page is visible.
func (m Model) GotoBottom() Model {
	m.top = m.maxTop()
	return m
}

// TopLine returns the raw line number of the topmost visible body line.
func (m Model) TopLine() int {
	return m.top
}

// CurrentContext resolves the context for the topmost visible line.
func (m Model) CurrentContext() diffpager.Context {
	return m.doc.Index.Resolve(m.top)
}

// View implements tea.Model: a sticky one-row context header above the
// verbatim body window.
func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}
	header := m.renderHeader()
	if m.height == 1 {
		return header
	}
	return header + "\n" + m.renderBody()
}

func (m Model) renderHeader() string {
	text := headerText(m.CurrentContext())
	if m.width > 0 {
		text = truncate.StringWithTail(text, uint(m.width), "…")
	}
	return m.styles.Header.Width(m.width).Render(text)
}

func (m Model) renderBody() string {
	end := min(m.top+m.bodyHeight(), len(m.doc.Lines))
	var b strings.Builder
	for i := m.top; i < end; i++ {
		if i > m.top {
			b.WriteByte('\n')
		}
		line := m.doc.Lines[i]
		b.WriteString(m.styles.Line(line.Kind).Render(line.Text))
	}
	return b.String()
}

// headerText flattens a context into a single header row.
func headerText(c diffpager.Context) string {
	if c.IsZero() {
		return ""
	}
	parts := make([]string, 0, 3)
	if c.Commit != (diffpager.CommitInfo{}) {
		id := c.Commit.ID
		if len(id) > abbrevLen {
			id = id[:abbrevLen]
		}
		s := id
		if c.Commit.Subject != "" {
			if s != "" {
				s += " "
			}
			s += c.Commit.Subject
		}
		parts = append(parts, s)
	}
	if c.FilePath != "" {
		parts = append(parts, c.FilePath)
	}
	if c.HunkHeader != "" {
		parts = append(parts, c.HunkHeader)
	}
	return strings.Join(parts, headerSeparator)
}

// bodyHeight is the number of rows available below the header.
func (m Model) bodyHeight() int {
	return max(0, m.height-1)
}

// maxTop is the largest valid top line: the start of the last full page,
// or 0 when everything fits.
func (m Model) maxTop() int {
	if h := m.bodyHeight(); h > 0 {
		return max(0, len(m.doc.Lines)-h)
	}
	return max(0, len(m.doc.Lines)-1)
}

func (m Model) clamp(top int) int {
	return min(max(top, 0), m.maxTop())
}
