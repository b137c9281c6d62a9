package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/taskstore"
)

type tab int

const (
	tabTasks tab = iota
	tabCalendar
	tabSettings
	numTabs
)

func (t tab) String() string {
	switch t {
	case tabTasks:
		return "Tasks"
	case tabCalendar:
		return "Calendar"
	default:
		return "Settings"
	}
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
	modeConfirmClear
)

// Status lines shown after a gesture.
const (
	statusAdded          = "added"
	statusAddedElsewhere = "Task added! Go to Tasks tab to see it."
	statusDeleted        = "deleted"
	statusCleared        = "deleted all tasks"
	statusCancelled      = "cancelled"
	statusTitleRequired  = "title required"
	statusSaved          = "settings saved"
)

// tasksLoadedMsg carries the list after a load or a successful mutation.
// When selectID is set the cursor follows that task.
type tasksLoadedMsg struct {
	tasks    []service.Task
	status   string
	selectID string
}

type errMsg struct{ err error }

type settingsSavedMsg struct{}

// Model is the terminal UI state.
type Model struct {
	ctx      context.Context
	svc      service.Service
	cfg      *config.Config
	renderer *lipgloss.Renderer
	styles   output.Styles
	keys     KeyMap
	help     help.Model
	input    textinput.Model

	tab           tab
	mode          mode
	tasks         []service.Task
	cursor        int
	settingCursor int
	editID        string
	pending       service.Task

	status   string
	err      error
	width    int
	quitting bool
}

// New creates the UI model. r renders styles; nil uses lipgloss's default renderer.
func New(ctx context.Context, svc service.Service, cfg *config.Config, r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 500

	return Model{
		ctx:      ctx,
		svc:      svc,
		cfg:      cfg,
		renderer: r,
		styles:   output.NewStyles(r, cfg.Settings.DarkMode),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    ti,
		tasks:    []service.Task{},
	}
}

// Init loads the task list.
func (m Model) Init() tea.Cmd {
	return m.load("")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-10)
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.err = nil
		m.status = msg.status
		if msg.selectID != "" {
			for i, t := range m.tasks {
				if t.ID == msg.selectID {
					m.cursor = i
				}
			}
		}
		m.clampCursor()
		return m, nil

	case errMsg:
		m.err = msg.err
		m.status = ""
		return m, nil

	case settingsSavedMsg:
		m.err = nil
		m.status = statusSaved
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.dialogOpen() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd, modeEdit:
		return m.updateDialog(msg)
	case modeConfirmDelete, modeConfirmClear:
		return m.updateConfirm(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.tab + 1) % numTabs)
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.tab + numTabs - 1) % numTabs)
	case key.Matches(msg, m.keys.Tasks):
		return m.switchTab(tabTasks)
	case key.Matches(msg, m.keys.Calendar):
		return m.switchTab(tabCalendar)
	case key.Matches(msg, m.keys.Settings):
		return m.switchTab(tabSettings)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.tab {
	case tabTasks:
		return m.updateTasks(msg)
	case tabCalendar:
		if key.Matches(msg, m.keys.Add) {
			return m.openDialog(modeAdd, "", "")
		}
	case tabSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

// switchTab changes tab. Focusing the Tasks tab reloads the list.
func (m Model) switchTab(t tab) (tea.Model, tea.Cmd) {
	m.tab = t
	if t == tabTasks {
		return m, m.load(m.status)
	}
	return m, nil
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Add):
		return m.openDialog(modeAdd, "", "")
	case key.Matches(msg, m.keys.Reload):
		return m, m.load("")
	}

	task, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m, m.mutate("", task.ID, func(ctx context.Context) error {
			_, _, err := m.svc.Toggle(ctx, task.ID)
			return err
		})
	case key.Matches(msg, m.keys.Complete):
		return m, m.mutate("", task.ID, func(ctx context.Context) error {
			_, _, err := m.svc.Complete(ctx, task.ID)
			return err
		})
	case key.Matches(msg, m.keys.Edit):
		return m.openDialog(modeEdit, task.ID, task.Title)
	case key.Matches(msg, m.keys.Delete):
		m.pending = task
		m.mode = modeConfirmDelete
	case key.Matches(msg, m.keys.DeleteAll):
		m.mode = modeConfirmClear
	case key.Matches(msg, m.keys.MoveUp):
		return m, m.move(-1)
	case key.Matches(msg, m.keys.MoveDown):
		return m, m.move(1)
	}
	return m, nil
}

// move swaps the selected task with its neighbour and persists the new order.
func (m Model) move(delta int) tea.Cmd {
	to := m.cursor + delta
	if to < 0 || to >= len(m.tasks) {
		return nil
	}
	next := taskstore.Move(m.tasks, m.cursor, to)
	id := m.tasks[m.cursor].ID
	return m.mutate("", id, func(ctx context.Context) error {
		return m.svc.Reorder(ctx, next)
	})
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.settingCursor = max(0, m.settingCursor-1)
	case key.Matches(msg, m.keys.Down):
		m.settingCursor = min(len(config.SettingNames)-1, m.settingCursor+1)
	case key.Matches(msg, m.keys.Toggle):
		name := config.SettingNames[m.settingCursor]
		on, err := m.cfg.Settings.Get(name)
		if err == nil {
			err = m.cfg.Settings.Set(name, !on)
		}
		if err != nil {
			m.err = err
			m.status = ""
			return m, nil
		}
		if name == "dark_mode" {
			m.styles = output.NewStyles(m.renderer, m.cfg.Settings.DarkMode)
		}
		return m, m.saveSettings()
	}
	return m, nil
}

func (m Model) openDialog(md mode, id, value string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.editID = id
	m.status = ""
	m.err = nil
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) closeDialog() Model {
	m.mode = modeBrowse
	m.editID = ""
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = statusTitleRequired
			return m, nil
		}
		if m.mode == modeEdit {
			id := m.editID
			m = m.closeDialog()
			return m, m.mutate("", id, func(ctx context.Context) error {
				_, _, err := m.svc.Edit(ctx, id, title)
				return err
			})
		}
		status := statusAdded
		if m.tab != tabTasks {
			status = statusAddedElsewhere
		}
		m = m.closeDialog()
		return m, m.mutate(status, "", func(ctx context.Context) error {
			_, err := m.svc.Add(ctx, title)
			return err
		})
	case key.Matches(msg, m.keys.Dismiss):
		return m.closeDialog(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		md, pending := m.mode, m.pending
		m.mode = modeBrowse
		m.pending = service.Task{}
		if md == modeConfirmClear {
			return m, m.mutate(statusCleared, "", m.svc.DeleteAll)
		}
		return m, m.mutate(statusDeleted, "", func(ctx context.Context) error {
			_, err := m.svc.Delete(ctx, pending.ID)
			return err
		})
	case key.Matches(msg, m.keys.No):
		m.mode = modeBrowse
		m.pending = service.Task{}
		m.status = statusCancelled
	}
	return m, nil
}

// load reads the list off the update loop.
func (m Model) load(status string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return tasksLoadedMsg{tasks: svc.Load(ctx), status: status}
	}
}

// mutate runs fn off the update loop, then reloads the list.
// On failure the current list stays on screen.
func (m Model) mutate(status, selectID string, fn func(ctx context.Context) error) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		if err := fn(ctx); err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks: svc.Load(ctx), status: status, selectID: selectID}
	}
}

func (m Model) saveSettings() tea.Cmd {
	cfg := *m.cfg
	return func() tea.Msg {
		if err := cfg.SaveSettings(); err != nil {
			return errMsg{err}
		}
		return settingsSavedMsg{}
	}
}

func (m Model) selected() (service.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return service.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) clampCursor() {
	m.cursor = max(0, min(m.cursor, len(m.tasks)-1))
}

func (m Model) dialogOpen() bool {
	return m.mode == modeAdd || m.mode == modeEdit
}
