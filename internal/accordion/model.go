package accordion

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/idilsaglam/accordion/internal/logging"
	"github.com/idilsaglam/accordion/internal/ui"
)

const defaultWidth = 80

// stackTop is the screen row of the first item: the title and a blank
// line sit above it.
const stackTop = 2

var _ tea.Model = Model{}

// frameMsg advances animated panels by one frame.
type frameMsg struct{}

// Option configures a Model.
type Option func(*Model)

func WithTheme(t ui.Theme) Option         { return func(m *Model) { m.theme = t } }
func WithKeyMap(k KeyMap) Option          { return func(m *Model) { m.keys = k } }
func WithTitle(title string) Option       { return func(m *Model) { m.title = title } }
func WithLogger(l *logging.Logger) Option { return func(m *Model) { m.log = l } }

// WithWidth sets the width used until the first tea.WindowSizeMsg.
func WithWidth(w int) Option {
	return func(m *Model) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithAnimation switches every panel of the group to the animated strategy.
func WithAnimation(fps int) Option {
	return func(m *Model) { m.group.SetStrategy(StrategyAnimated, fps) }
}

// Model renders a Group as a Bubble Tea program: a title, one row per
// header, the visible part of each panel, a status line announcing the
// focused header and a help footer. Once the terminal height is known the
// items scroll inside a viewport that keeps the focused header on screen.
type Model struct {
	group  *Group
	keys   KeyMap
	help   help.Model
	vp     viewport.Model
	theme  ui.Theme
	log    *logging.Logger
	title  string
	width  int
	height int

	ticking  bool
	quitting bool
}

// New creates a Model over g. The group is shared, not copied.
func New(g *Group, opts ...Option) Model {
	m := Model{
		group: g,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		vp:    viewport.New(defaultWidth, 0),
		theme: ui.Current(),
		log:   logging.Nop(),
		title: "Accordion",
		width: defaultWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = m.width
	m.watchFocus()
	m.measure()
	m.refresh()
	return m
}

// watchFocus logs every focus move of the group, whatever caused it.
func (m Model) watchFocus() {
	log, prev := m.log, m.group.OnFocusChange
	m.group.OnFocusChange = func(from, to ID) {
		log.Debug("focus", "from", from, "to", to)
		if prev != nil {
			prev(from, to)
		}
	}
}

// Group returns the group the model renders.
func (m Model) Group() *Group { return m.group }

// Width returns the current render width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height, or 0 before the first resize.
func (m Model) Height() int { return m.height }

// ScrollOffset returns the first item row shown on screen.
func (m Model) ScrollOffset() int { return m.vp.YOffset }

// Animating reports whether animation frames are scheduled.
func (m Model) Animating() bool { return m.ticking }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.help.Width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		m.measure()
		m.resize()
		m, cmd = m.animate()
		m.refresh()
		m.follow()

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
		m.refresh()
		m.follow()

	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)
		m.refresh()

	case frameMsg:
		m, cmd = m.step()
		m.refresh()
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n\n")
	if m.height > 0 {
		b.WriteString(m.vp.View())
	} else {
		content, _ := m.stack()
		b.WriteString(content)
	}
	b.WriteString("\n\n")
	if it, ok := m.group.Focused(); ok {
		b.WriteString(m.theme.Status.Render(ansi.Truncate(it.Header.Announce(), m.width, "…")))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.group.Focused(); ok {
			return m.activate(it)
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.group.FocusNext()
	case key.Matches(msg, m.keys.Prev):
		m.group.FocusPrev()
	case key.Matches(msg, m.keys.First):
		m.group.FocusFirst()
	case key.Matches(msg, m.keys.Last):
		m.group.FocusLast()
	}
	return m, nil
}

// handleMouse activates the header under a left-button press and scrolls
// the items on wheel events.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		if m.height == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	row := msg.Y - stackTop
	if row < 0 {
		return m, nil
	}
	if m.height > 0 {
		if row >= m.vp.Height {
			return m, nil
		}
		row += m.vp.YOffset
	}
	_, rows := m.stack()
	items := m.group.Items()
	for i, r := range rows {
		if r == row {
			m.group.Focus(items[i].ID)
			return m.activate(items[i])
		}
	}
	return m, nil
}

func (m Model) activate(it *Item) (Model, tea.Cmd) {
	it.Header.Activate()
	m.log.Debug("toggle", "id", it.ID, "expanded", it.Header.Expanded())
	m.measure()
	return m.animate()
}

// measure re-renders every body at the current width and retargets its
// panel. It must run after a state change and before the next frame.
func (m Model) measure() {
	for _, it := range m.group.Items() {
		it.Panel.Measure(m.renderBody(it.Panel))
	}
}

// animate schedules frames unless they are already running or every
// panel is settled.
func (m Model) animate() (Model, tea.Cmd) {
	if m.ticking || m.settled() {
		return m, nil
	}
	m.ticking = true
	return m, m.frame()
}

func (m Model) step() (Model, tea.Cmd) {
	done := true
	for _, it := range m.group.Items() {
		if !it.Panel.Step() {
			done = false
		}
	}
	if done {
		m.ticking = false
		return m, nil
	}
	return m, m.frame()
}

func (m Model) settled() bool {
	for _, it := range m.group.Items() {
		if !it.Panel.Settled() {
			return false
		}
	}
	return true
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.group.FPS()), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// resize fits the viewport between the title and the footer.
func (m *Model) resize() {
	if m.height == 0 {
		return
	}
	footer := 1 + lipgloss.Height(m.help.View(m.keys))
	if _, ok := m.group.Focused(); ok {
		footer++
	}
	m.vp.Width = m.width
	m.vp.Height = max(1, m.height-stackTop-footer)
}

// refresh hands the current item stack to the viewport.
func (m *Model) refresh() {
	content, _ := m.stack()
	m.vp.SetContent(content)
}

// follow scrolls the focused header into view.
func (m *Model) follow() {
	if m.height == 0 {
		return
	}
	_, rows := m.stack()
	i := m.group.FocusIndex()
	if i < 0 || i >= len(rows) {
		return
	}
	switch row := rows[i]; {
	case row < m.vp.YOffset:
		m.vp.SetYOffset(row)
	case row >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(row - m.vp.Height + 1)
	}
}

// stack renders the items and returns the rows headers landed on,
// counted from the first item.
func (m Model) stack() (string, []int) {
	var lines []string
	rows := make([]int, 0, m.group.Len())
	for i, it := range m.group.Items() {
		rows = append(rows, len(lines))
		lines = append(lines, m.renderHeader(it, i == m.group.FocusIndex()))
		if body := it.Panel.Clip(m.renderBody(it.Panel)); body != "" {
			lines = append(lines, strings.Split(body, "\n")...)
		}
	}
	if m.group.Len() == 0 {
		lines = append(lines, m.theme.Muted.Render("no items"))
	}
	return strings.Join(lines, "\n"), rows
}

func (m Model) renderHeader(it *Item, focused bool) string {
	cursor := strings.Repeat(" ", lipgloss.Width(m.theme.Cursor))
	style := m.theme.Header
	if focused {
		cursor, style = m.theme.Cursor, m.theme.Focused
	}
	line := cursor + m.theme.Indicator(it.Header.Expanded()) + " " + it.Header.Title()
	return style.Render(ansi.Truncate(line, m.width, "…"))
}

func (m Model) renderBody(p *Panel) string {
	return m.theme.Body.Width(m.width).Render(p.Body())
}
