package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mConsole/console"
	"github.com/msto63/mConsole/core/log"
	"github.com/msto63/mConsole/utils/stringx"
)

const defaultHistoryLimit = 100

// Options configures the REPL.
type Options struct {
	Console *console.Console
	Logger  *log.Logger
	Version string

	Prompt       string // initial prompt text, default "> "
	HistoryLimit int    // input lines kept for up/down recall
	Echo         bool   // echo executed lines into the transcript
}

// settings holds the REPL state the console itself can reconfigure.
// The REPL registers console.* variables over these fields, so commands
// like "console.prompt $" take effect on the next frame. All access
// happens on the update loop.
type settings struct {
	prompt       string
	echo         bool
	historyLimit int
	version      string

	clearRequested bool
}

// Model is the REPL model.
type Model struct {
	console  *console.Console
	logger   *log.Logger
	settings *settings

	input    textinput.Model
	viewport viewport.Model

	transcript []string
	history    []string
	historyPos int // len(history) means "past the newest entry"
	pending    string

	width  int
	height int
	ready  bool
}

// NewModel creates the REPL model and registers the console.* variables
// and the clear method on the given console.
func NewModel(opts Options) Model {
	c := opts.Console
	if c == nil {
		c = console.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	s := &settings{
		prompt:       opts.Prompt,
		echo:         opts.Echo,
		historyLimit: opts.HistoryLimit,
		version:      opts.Version,
	}
	if s.prompt == "" {
		s.prompt = "> "
	}
	if s.historyLimit <= 0 {
		s.historyLimit = defaultHistoryLimit
	}
	registerReplTargets(c, s)

	ti := textinput.New()
	ti.Placeholder = "enter a command, try help"
	ti.Prompt = s.prompt
	ti.Focus()
	ti.CharLimit = 255

	return Model{
		console:    c,
		logger:     logger.WithField("component", "tui"),
		settings:   s,
		input:      ti,
		transcript: []string{},
		history:    []string{},
	}
}

// registerReplTargets self-hosts the REPL configuration as console
// variables. Registration conflicts with host targets resolve in the
// host's favor through the registry's first-wins rule.
func registerReplTargets(c *console.Console, s *settings) {
	_ = console.RegisterVar(c, "console.prompt", &s.prompt,
		"Prompt text shown before the input line", console.FlagDefault, nil)
	_ = console.RegisterVar(c, "console.echo", &s.echo,
		"Echo executed commands into the transcript", console.FlagDefault, nil)
	_ = console.RegisterVar(c, "console.history", &s.historyLimit,
		"Number of input lines kept for recall", console.FlagDefault, nil)
	_ = console.RegisterVar(c, "console.version", &s.version,
		"Console version", console.FlagReadOnly, nil)
	_ = c.RegisterMethod("clear", func(ctx context.Context, cmd *console.Command) error {
		s.clearRequested = true
		return nil
	}, "Clears the transcript")
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line != "" {
				m.runLine(line)
			}
			return m, nil

		case "up":
			m.recallPrevious()
			return m, nil

		case "down":
			m.recallNext()
			return m, nil

		case "tab":
			m.completeTarget()
			return m, nil

		case "ctrl+l":
			m.transcript = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := msg.Height - 4
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - lipgloss.Width(m.settings.prompt) - 2
		m.updateContent()
	}

	m.input.Prompt = m.settings.prompt

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// runLine executes one input line against the console and appends the
// outcome to the transcript.
func (m *Model) runLine(line string) {
	m.remember(line)

	if m.settings.echo {
		m.transcript = append(m.transcript, EchoStyle.Render(m.settings.prompt)+line)
	}

	output, err := m.console.Execute(context.Background(), line)
	if err != nil {
		m.transcript = append(m.transcript, RenderError(err.Error()))
	} else if output != "" {
		m.transcript = append(m.transcript, OutputStyle.Render(strings.TrimRight(output, "\n")))
	}

	if m.settings.clearRequested {
		m.settings.clearRequested = false
		m.transcript = nil
	}

	m.updateContent()
}

// remember appends the line to the recall history, dropping the oldest
// entries past the configured limit.
func (m *Model) remember(line string) {
	if n := len(m.history); n > 0 && m.history[n-1] == line {
		m.historyPos = len(m.history)
		return
	}
	m.history = append(m.history, line)
	if limit := m.settings.historyLimit; limit > 0 && len(m.history) > limit {
		m.history = m.history[len(m.history)-limit:]
	}
	m.historyPos = len(m.history)
}

func (m *Model) recallPrevious() {
	if len(m.history) == 0 || m.historyPos == 0 {
		return
	}
	if m.historyPos == len(m.history) {
		m.pending = m.input.Value()
	}
	m.historyPos--
	m.input.SetValue(m.history[m.historyPos])
	m.input.CursorEnd()
}

func (m *Model) recallNext() {
	if m.historyPos >= len(m.history) {
		return
	}
	m.historyPos++
	if m.historyPos == len(m.history) {
		m.input.SetValue(m.pending)
	} else {
		m.input.SetValue(m.history[m.historyPos])
	}
	m.input.CursorEnd()
}

// completeTarget completes the first word of the input against the
// registered names. A single match completes in place; several matches
// list the candidates in the transcript.
func (m *Model) completeTarget() {
	value := m.input.Value()
	if value == "" || strings.Contains(strings.TrimSpace(value), " ") {
		return
	}

	var matches []string
	for _, entry := range m.console.ListHelp() {
		if stringx.HasPrefixFold(entry.Name, value) {
			matches = append(matches, entry.Name)
		}
	}

	switch len(matches) {
	case 0:
	case 1:
		m.input.SetValue(matches[0] + " ")
		m.input.CursorEnd()
	default:
		m.transcript = append(m.transcript, CandidateStyle.Render(strings.Join(matches, "  ")))
		m.updateContent()
	}
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	title := TitleStyle.Render("mConsole")
	if m.settings.version != "" {
		title += " " + VersionStyle.Render(m.settings.version)
	}
	s.WriteString(title)
	s.WriteString("\n")

	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	s.WriteString(m.input.View())
	s.WriteString("\n")

	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderFooter() string {
	help := "Tab: Complete • ↑/↓: History • Ctrl+L: Clear • Ctrl+C: Quit"
	reg := m.console.Registry()
	counts := fmt.Sprintf("%d vars • %d methods", reg.VariableCount(), reg.MethodCount())

	pad := m.width - lipgloss.Width(help) - lipgloss.Width(counts) - 4
	if pad < 1 {
		pad = 1
	}
	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HelpStyle.Render(help),
			strings.Repeat(" ", pad),
			counts,
		),
	)
}

// Run starts the REPL and blocks until the user quits.
func Run(opts Options) error {
	model := NewModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
