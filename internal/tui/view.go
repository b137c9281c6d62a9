package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/config"
	"todo/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case tabTasks:
		b.WriteString(m.tasksView())
	case tabCalendar:
		b.WriteString(m.calendarView())
	case tabSettings:
		b.WriteString(m.settingsView())
	}

	switch m.mode {
	case modeAdd, modeEdit:
		b.WriteString("\n")
		b.WriteString(m.dialogView())
	case modeConfirmDelete, modeConfirmClear:
		b.WriteString("\n")
		b.WriteString(m.confirmView())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
	} else if m.status != "" {
		b.WriteString(m.styles.Muted.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.helpView())
	b.WriteString("\n")
	return b.String()
}

func (m Model) tabBar() string {
	var tabs []string
	for t := tabTasks; t < numTabs; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.tab {
			tabs = append(tabs, m.styles.TabOn.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) tasksView() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("My Tasks"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d tasks", len(m.tasks))))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		for _, line := range []string{
			"No tasks yet!",
			"Press a to add your first task",
			"Press K/J to reorder tasks",
			"Press e to edit",
			"Press d to delete",
		} {
			b.WriteString(m.styles.Muted.Render(line))
			b.WriteString("\n")
		}
		return b.String()
	}

	for i, task := range m.tasks {
		pointer := "  "
		title := output.NormalizeTitle(task.Title)
		check := output.Checkbox(task.Completed)
		if task.Completed {
			title = m.styles.Done.Render(title)
			check = m.styles.Check.Render(check)
		}
		if i == m.cursor {
			pointer = m.styles.Selected.Render("> ")
			if !task.Completed {
				title = m.styles.Selected.Render(title)
			}
		}
		fmt.Fprintf(&b, "%s%s %s\n", pointer, check, title)
	}
	return b.String()
}

func (m Model) calendarView() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(output.CalendarTitle))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(output.CalendarSubtitle))
	b.WriteString("\n\n")
	b.WriteString("Calendar view coming soon! You can still add tasks with a.\n\n")
	b.WriteString(m.styles.Header.Render(output.ComingFeatures))
	b.WriteString("\n")
	for _, f := range output.CalendarFeatures {
		fmt.Fprintf(&b, "  • %s\n", f)
	}
	return b.String()
}

func (m Model) settingsView() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Customize your app experience"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Header.Render("Preferences"))
	b.WriteString("\n")

	for i, name := range config.SettingNames {
		info, _ := config.Info(name)
		on, _ := m.cfg.Settings.Get(name)
		pointer := "  "
		label := fmt.Sprintf("%-14s", info.Title)
		if i == m.settingCursor {
			pointer = m.styles.Selected.Render("> ")
			label = m.styles.Selected.Render(label)
		}
		fmt.Fprintf(&b, "%s[%-3s] %s %s\n", pointer, output.OnOff(on), label, m.styles.Muted.Render(info.Description))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Header.Render("About"))
	b.WriteString("\n")
	for _, item := range [][2]string{
		{"Version", config.Version},
		{"Help & Support", "todo help"},
		{"Privacy Policy", "tasks never leave this machine"},
	} {
		fmt.Fprintf(&b, "        %-14s %s\n", item[0], m.styles.Muted.Render(item[1]))
	}
	return b.String()
}

func (m Model) dialogView() string {
	title := "New Task"
	if m.mode == modeEdit {
		title = "Edit Task"
	}
	body := m.styles.Header.Render(title) + "\n" + m.input.View()
	return m.styles.Dialog.Render(body)
}

func (m Model) confirmView() string {
	var body string
	if m.mode == modeConfirmClear {
		body = m.styles.Header.Render("Delete All Tasks") + "\n" +
			fmt.Sprintf("Delete all %d tasks? This cannot be undone.", len(m.tasks))
	} else {
		body = m.styles.Header.Render("Delete Task") + "\n" +
			fmt.Sprintf("Delete task %q?", output.NormalizeTitle(m.pending.Title))
	}
	return m.styles.Dialog.Render(body)
}

func (m Model) helpView() string {
	var km help.KeyMap = m.keys
	switch m.mode {
	case modeAdd, modeEdit:
		km = dialogKeys{submit: m.keys.Submit, dismiss: m.keys.Dismiss}
	case modeConfirmDelete, modeConfirmClear:
		km = confirmKeys{yes: m.keys.Yes, no: m.keys.No}
	}
	return m.help.View(km)
}
