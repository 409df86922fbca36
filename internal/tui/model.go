package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andy/rolodex/internal/app"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const prompt = "Enter a command: "

// Model is the interactive shell: a scrollback of past output and a
// single text input at the bottom.
type Model struct {
	app    *app.App
	input  textinput.Model
	lines  []string
	width  int
	height int
}

// New creates a new shell model
func New(a *app.App) Model {
	input := textinput.New()
	input.Prompt = promptStyle.Render(prompt)
	input.Placeholder = "help"
	input.CharLimit = 200
	input.Focus()

	return Model{
		app:   a,
		input: input,
		lines: []string{titleStyle.Render(msgWelcome)},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			// Ctrl+C behaves like "exit": state is saved first.
			_ = m.app.SaveBook(context.Background())
			return m, tea.Quit

		case key.Matches(msg, DefaultKeyMap.Submit):
			line := m.input.Value()
			m.input.Reset()
			return m.runCommand(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runCommand executes one line, appends its output to the scrollback,
// and persists the book after mutations.
func (m Model) runCommand(line string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(line) != "" {
		m.lines = append(m.lines, echoStyle.Render(prompt+line))
	}

	output, quit, mutated := dispatch(
		m.app.Book,
		m.app.Config.Birthdays.WindowDays,
		time.Now(),
		line,
	)
	if output != "" {
		m.lines = append(m.lines, output)
	}

	// Persist only after commands that changed the book (or on exit);
	// a failure is reported once, for the save that actually ran.
	if mutated || quit {
		if err := m.app.SaveBook(context.Background()); err != nil {
			m.lines = append(m.lines, errStyle.Render(fmt.Sprintf("Failed to save: %v", err)))
		}
	}

	if quit {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render("rolodex - assistant bot")
	footer := footerStyle.Render("type 'help' for commands, 'exit' to quit")

	// Keep only as much scrollback as fits above the input line.
	innerHeight := m.height - 10
	if innerHeight < 3 {
		innerHeight = 3
	}
	visible := m.lines
	if count := countRows(visible); count > innerHeight {
		for len(visible) > 0 && countRows(visible) > innerHeight {
			visible = visible[1:]
		}
	}

	body := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s",
		header,
		strings.Join(visible, "\n"),
		m.input.View(),
		footer,
	)

	innerWidth := m.width - 6
	if innerWidth < 20 {
		innerWidth = 20
	}
	frame := appBorderStyle.Width(innerWidth)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// countRows counts display rows, since one entry may span several lines
func countRows(entries []string) int {
	rows := 0
	for _, e := range entries {
		rows += strings.Count(e, "\n") + 1
	}
	return rows
}

// Run starts the interactive shell
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
