// Package tui is the terminal front end of the launcher: a selectable list of
// programs, start/stop actions and a live outcome log.
package tui

import (
	"fmt"
	"strings"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/config"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/outcome_log"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/registry"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Executor runs one batch and returns its records.
type Executor interface {
	Execute(request lib.ActionRequest) []lib.OutcomeRecord
}

// Options wires the model to its collaborators.
type Options struct {
	Config     *config.Config
	ConfigPath string
	// Runner must append its lines to Log.
	Runner Executor
	Log    *outcome_log.Log
	// Save persists registry changes; defaults to config.Save.
	Save func(path string, cfg *config.Config) error
}

// Model is the bubbletea model for the launcher.
type Model struct {
	cfg      *config.Config
	cfgPath  string
	save     func(path string, cfg *config.Config) error
	registry *registry.Registry
	runner   Executor
	log      *outcome_log.Log
	lines    <-chan string

	cursor   int
	selected map[string]bool
	busy     bool
	adding   bool
	status   string
	failed   bool

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	styles   styles

	width  int
	height int
}

// logLineMsg wakes the model when the outcome log grew.
type logLineMsg struct{}

// logClosedMsg is sent when the outcome log subscription ended.
type logClosedMsg struct{}

// batchDoneMsg is sent when a start/stop batch finished.
type batchDoneMsg struct {
	action  lib.Action
	records []lib.OutcomeRecord
}

// New creates the launcher model.
func New(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/executable"
	ti.CharLimit = 4096
	ti.Width = 60

	save := opts.Save
	if save == nil {
		save = config.Save
	}

	vp := viewport.New(80, 10)

	return &Model{
		cfg:      opts.Config,
		cfgPath:  opts.ConfigPath,
		save:     save,
		registry: opts.Config.Registry(),
		runner:   opts.Runner,
		log:      opts.Log,
		lines:    opts.Log.Subscribe(64),
		selected: make(map[string]bool),
		input:    ti,
		viewport: vp,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   newStyles(opts.Config.Theme),
	}
}

// Init starts following the outcome log.
func (m *Model) Init() tea.Cmd {
	return waitForLine(m.lines)
}

func waitForLine(lines <-chan string) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-lines; !ok {
			return logClosedMsg{}
		}
		return logLineMsg{}
	}
}

func runBatch(runner Executor, request lib.ActionRequest) tea.Cmd {
	return func() tea.Msg {
		return batchDoneMsg{action: request.Action, records: runner.Execute(request)}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case logLineMsg:
		m.refreshLog()
		return m, waitForLine(m.lines)

	case logClosedMsg:
		return m, nil

	case batchDoneMsg:
		m.busy = false
		m.selected = make(map[string]bool)
		m.setStatus(false, "%s finished: %d outcome(s)", msg.action, len(msg.records))
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.adding = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		path := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Blur()
		m.input.SetValue("")
		name, err := m.registry.AddPath(path)
		if err != nil {
			m.setStatus(true, "%v", err)
			return m, nil
		}
		if err := m.persist(); err != nil {
			return m, nil
		}
		m.setStatus(false, "added %s", name)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := m.registry.Names()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(names)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(names) > 0 {
			name := names[m.cursor]
			m.selected[name] = !m.selected[name]
		}

	case key.Matches(msg, m.keys.Start):
		if m.busy {
			return m, nil
		}
		selected := m.selectedNames()
		if len(selected) == 0 {
			m.setStatus(true, "select at least one program to start")
			return m, nil
		}
		return m, m.submit(lib.ActionStart, selected)

	case key.Matches(msg, m.keys.Stop):
		if m.busy {
			return m, nil
		}
		return m, m.submit(lib.ActionStop, nil)

	case key.Matches(msg, m.keys.Add):
		if m.busy {
			return m, nil
		}
		m.adding = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Remove):
		if m.busy {
			return m, nil
		}
		m.removeSelected()

	case key.Matches(msg, m.keys.ClearLog):
		m.log.Clear()
		m.refreshLog()
	}
	return m, nil
}

func (m *Model) submit(action lib.Action, selected []string) tea.Cmd {
	request, err := m.registry.Request(action, selected)
	if err != nil {
		m.setStatus(true, "%v", err)
		return nil
	}
	m.busy = true
	m.setStatus(false, "running %s...", action)
	return runBatch(m.runner, request)
}

func (m *Model) selectedNames() []string {
	var out []string
	for _, name := range m.registry.Names() {
		if m.selected[name] {
			out = append(out, name)
		}
	}
	return out
}

func (m *Model) removeSelected() {
	selected := m.selectedNames()
	if len(selected) == 0 {
		m.setStatus(true, "select programs to remove")
		return
	}
	for _, name := range selected {
		_ = m.registry.Remove(name)
	}
	m.selected = make(map[string]bool)
	if m.cursor >= m.registry.Len() && m.cursor > 0 {
		m.cursor = m.registry.Len() - 1
	}
	if err := m.persist(); err != nil {
		return
	}
	m.setStatus(false, "removed %s", strings.Join(selected, ", "))
}

func (m *Model) persist() error {
	m.cfg.SetPrograms(m.registry)
	if err := m.save(m.cfgPath, m.cfg); err != nil {
		m.setStatus(true, "saving config: %v", err)
		return err
	}
	return nil
}

func (m *Model) refreshLog() {
	m.viewport.SetContent(strings.Join(m.log.Lines(), "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) setStatus(failed bool, format string, args ...any) {
	m.failed = failed
	m.status = fmt.Sprintf(format, args...)
}

// SetSize sets the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.input.Width = min(60, max(10, width-10))
	m.viewport.Width = max(20, width-4)
	// Leave room for the title, program list, status and help lines.
	m.viewport.Height = max(3, height-m.registry.Len()-10)
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
