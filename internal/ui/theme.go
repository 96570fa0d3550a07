package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles + symbols + border for every renderer.
// CLI helpers pull from `current`; the TUI is handed a Theme explicitly.
type Theme struct {
	Name string

	Title, Header, Focused, Body, Muted lipgloss.Style
	Success, Error, Status              lipgloss.Style

	Cursor              string // prefix of the focused header
	Collapsed, Expanded string // state indicators

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
}

// ThemeNames lists the themes SetTheme understands.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	for _, n := range ThemeNames() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Named returns the theme called name, falling back to classic.
func Named(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:      "neon",
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Focused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Body:      lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("252")),
			Muted:     lipgloss.NewStyle().Faint(true),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Faint(true),
			Cursor:    "❯ ",
			Collapsed: "◇",
			Expanded:  "◆",
			Border:    lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Header: plain, Focused: plain.Reverse(true),
			Body:  plain.PaddingLeft(4),
			Muted: plain, Success: plain, Error: plain, Status: plain,
			Cursor:    "> ",
			Collapsed: "+",
			Expanded:  "-",
			Border:    lipgloss.NormalBorder(), BorderColor: lipgloss.NoColor{},
		}
	default:
		return Theme{
			Name:      "classic",
			Title:     lipgloss.NewStyle().Bold(true),
			Header:    lipgloss.NewStyle(),
			Focused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Body:      lipgloss.NewStyle().PaddingLeft(4),
			Muted:     lipgloss.NewStyle().Faint(true),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Status:    lipgloss.NewStyle().Faint(true),
			Cursor:    "> ",
			Collapsed: "▶",
			Expanded:  "▼",
			Border:    lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
		}
	}
}

var current = Named("classic")

func SetTheme(name string) { current = Named(name) }

// Expose what renderers need
func Current() Theme { return current }

// Indicator returns the state glyph for an open or closed item.
func (t Theme) Indicator(open bool) string {
	if open {
		return t.Expanded
	}
	return t.Collapsed
}
