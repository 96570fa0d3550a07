package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel draws a framed box on stdout using the current theme.
func Panel(lines []string) { Fpanel(os.Stdout, lines) }

// Fpanel draws a framed box on w.
func Fpanel(w io.Writer, lines []string) {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	fmt.Fprintln(w, border.Render(strings.Join(lines, "\n")))
}

func OK(msg string)   { Fok(os.Stdout, msg) }
func Fail(msg string) { Ffail(os.Stderr, msg) }

func Fok(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Success.Render("✔ "+msg))
}

func Ffail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}
