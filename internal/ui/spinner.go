// Package ui holds the interactive terminal pieces shown while long steps run.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user interrupts a running step
var ErrCanceled = errors.New("operation canceled")

var (
	titleStyle = lipgloss.NewStyle().Padding(0, 1)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RunSpinner shows a spinner next to title until action returns.
// The action's error is returned unchanged.
func RunSpinner(ctx context.Context, title string, action func(ctx context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newStepModel(ctx, title, action)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	return final.(*stepModel).err
}

type stepDoneMsg struct{ err error }

type stepModel struct {
	ctx   context.Context
	title string
	spin  spinner.Model
	done  chan error
	err   error
	ended bool
}

func newStepModel(ctx context.Context, title string, action func(ctx context.Context) error) *stepModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &stepModel{ctx: ctx, title: title, spin: s, done: make(chan error, 1)}
	go func() {
		// let the first frame paint before the step takes the CPU
		time.Sleep(50 * time.Millisecond)
		m.done <- action(ctx)
	}()
	return m
}

func (m *stepModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.wait)
}

func (m *stepModel) wait() tea.Msg {
	select {
	case err := <-m.done:
		return stepDoneMsg{err: err}
	case <-m.ctx.Done():
		return stepDoneMsg{err: m.ctx.Err()}
	}
}

func (m *stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.err = ErrCanceled
			m.ended = true
			return m, tea.Quit
		}
	case stepDoneMsg:
		m.err = msg.err
		m.ended = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *stepModel) View() string {
	if !m.ended {
		return titleStyle.Render(m.spin.View() + " " + m.title)
	}
	if m.err != nil {
		return titleStyle.Render(failStyle.Render("✗") + " " + m.title + " (" + m.err.Error() + ")\n")
	}
	return titleStyle.Render(okStyle.Render("✓") + " " + m.title + "\n")
}
