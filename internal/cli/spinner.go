package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrInterrupted = errors.New("interrupted")

// shows a spinner until run returns
type waitModel[T any] struct {
	spinner spinner.Model
	label   string
	run     func() (T, error)
	value   T
	err     error
	done    bool
}

func newWaitModel[T any](label string, run func() (T, error)) *waitModel[T] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &waitModel[T]{spinner: s, label: label, run: run}
}

func (m *waitModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		value, err := m.run()
		return doneMsg[T]{value: value, err: err}
	})
}

func (m *waitModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg[T]:
		m.value, m.err, m.done = msg.value, msg.err, true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err, m.done = ErrInterrupted, true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *waitModel[T]) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s\n", m.spinner.View(), infoStyle.Render(m.label))
}

// runs fn behind a spinner on stderr, or directly when stderr is not a terminal
func Wait[T any](label string, fn func() (T, error)) (T, error) {
	if !IsTerminal(os.Stderr) {
		return fn()
	}

	model := newWaitModel(label, fn)

	if _, err := tea.NewProgram(model, tea.WithOutput(os.Stderr)).Run(); err != nil {
		var zero T
		return zero, fmt.Errorf("spinner failed: %w", err)
	}

	return model.value, model.err
}
