package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sabdam/internal/mastery"
	"github.com/abhisek/sabdam/internal/router"
	"github.com/abhisek/sabdam/internal/screen"
	"github.com/abhisek/sabdam/internal/screens/home"
	"github.com/abhisek/sabdam/internal/screens/practice"
	"github.com/abhisek/sabdam/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Deps screen.Deps

	// StartPractice opens a practice session on top of the home screen.
	StartPractice bool
	Difficult     bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	stats  layout.HeaderStats
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(home.New(opts.Deps)),
		opts:   opts,
	}
	m.refreshStats()
	return m
}

func (m *AppModel) refreshStats() {
	deps := m.opts.Deps
	if deps.Lexicon == nil || deps.Progress == nil {
		return
	}
	ctx := context.Background()
	sum := mastery.Summarize(ctx, deps.Lexicon, deps.Progress)
	m.stats = layout.HeaderStats{
		Mastered:  sum.Mastered,
		Total:     sum.Total,
		Difficult: len(deps.Progress.GetDifficultWords(ctx)),
	}
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if !m.opts.StartPractice {
		return cmd
	}
	mode := practice.ModeAll
	if m.opts.Difficult {
		mode = practice.ModeDifficult
	}
	s := practice.New(m.opts.Deps, mode)
	return tea.Batch(cmd, func() tea.Msg { return router.PushScreenMsg{Screen: s} })
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if eh, ok := m.router.Active().(screen.EscapeHandler); ok && eh.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case screen.ProgressChangedMsg:
		m.refreshStats()

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		cmd := m.router.Update(msg)
		m.refreshStats()
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.Deps.Logger().WithError(err).Error("tui exited")
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
