// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/config"
	"todo/internal/service"
)

// Calendar placeholder text, shared with the terminal UI.
const (
	CalendarTitle    = "Calendar"
	CalendarSubtitle = "Your schedule and upcoming tasks"
	CalendarNotice   = "Calendar view coming soon! You can still add tasks with \"todo add\"."
	ComingFeatures   = "Coming Features"
)

// CalendarFeatures are listed under ComingFeatures.
var CalendarFeatures = []string{
	"View tasks by date",
	"Set due dates and reminders",
	"Monthly/weekly calendar view",
	"Recurring tasks",
}

// FormatTask formats a task line.
// Format: "{N:>4}  [ ] {TITLE}\n", with [x] for completed tasks.
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, Checkbox(task.Completed), NormalizeTitle(task.Title))
}

// Checkbox returns "[x]" for completed tasks and "[ ]" otherwise.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// OnOff formats a setting value.
func OnOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// Printer writes CLI output, styled when the writer is a terminal.
type Printer struct {
	w      io.Writer
	styled bool
	styles Styles
}

// NewPrinter creates a Printer for w. dark selects the dark palette.
func NewPrinter(w io.Writer, dark bool) *Printer {
	p := &Printer{w: w}
	if IsTerminal(w) {
		p.styled = true
		p.styles = NewStyles(lipgloss.NewRenderer(w), dark)
	}
	return p
}

// Task prints one task line.
func (p *Printer) Task(num int, task service.Task) {
	if !p.styled {
		FormatTask(p.w, num, task)
		return
	}
	title := NormalizeTitle(task.Title)
	check := Checkbox(task.Completed)
	if task.Completed {
		title = p.styles.Done.Render(title)
		check = p.styles.Check.Render(check)
	}
	fmt.Fprintf(p.w, "%s  %s %s\n", p.styles.Number.Render(fmt.Sprintf("%4d", num)), check, title)
}

// Calendar prints the calendar placeholder.
func (p *Printer) Calendar() {
	fmt.Fprintln(p.w, p.header(CalendarTitle))
	fmt.Fprintln(p.w, p.muted(CalendarSubtitle))
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, CalendarNotice)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.header(ComingFeatures))
	for _, f := range CalendarFeatures {
		fmt.Fprintf(p.w, "  • %s\n", f)
	}
}

// Settings prints every setting with its value and description.
func (p *Printer) Settings(s config.Settings) {
	fmt.Fprintln(p.w, p.header("Preferences"))
	for _, name := range config.SettingNames {
		info, _ := config.Info(name)
		on, _ := s.Get(name)
		fmt.Fprintf(p.w, "  %-14s %-4s %s\n", name, OnOff(on), p.muted(info.Description))
	}
}

func (p *Printer) header(s string) string {
	if !p.styled {
		return s
	}
	return p.styles.Header.Render(s)
}

func (p *Printer) muted(s string) string {
	if !p.styled {
		return s
	}
	return p.styles.Muted.Render(s)
}

// NormalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func NormalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
