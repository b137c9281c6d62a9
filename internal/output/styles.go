package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	accent  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	subtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	success = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#73F59F"}
	danger  = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6B6B"}
)

// Styles are the lipgloss styles shared by the CLI and the terminal UI.
type Styles struct {
	Header   lipgloss.Style
	Muted    lipgloss.Style
	Number   lipgloss.Style
	Check    lipgloss.Style
	Done     lipgloss.Style
	Selected lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Dialog   lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds Styles for a renderer. dark selects the dark palette
// regardless of what the terminal reports.
func NewStyles(r *lipgloss.Renderer, dark bool) Styles {
	r.SetHasDarkBackground(dark)
	return Styles{
		Header:   r.NewStyle().Bold(true).Foreground(accent),
		Muted:    r.NewStyle().Foreground(subtle),
		Number:   r.NewStyle().Foreground(subtle),
		Check:    r.NewStyle().Foreground(success),
		Done:     r.NewStyle().Foreground(subtle).Strikethrough(true),
		Selected: r.NewStyle().Bold(true).Foreground(accent),
		Tab:      r.NewStyle().Padding(0, 2).Foreground(subtle),
		TabOn:    r.NewStyle().Padding(0, 2).Bold(true).Foreground(accent).Underline(true),
		Dialog:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Error:    r.NewStyle().Foreground(danger),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
