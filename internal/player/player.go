// Package player is the interactive terminal front end for a
// playback.Controller, built on bubbletea.
package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algoreplay/internal/render"
	"github.com/katalvlaran/algoreplay/playback"
	"github.com/katalvlaran/algoreplay/trace"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const helpLine = "space play/pause · n step · r reset · +/- speed · q quit"

// tickMsg is one scheduled clock tick. gen ties it to the play session
// that scheduled it; ticks from an earlier session are dropped.
type tickMsg struct {
	gen int
}

// Model adapts a Controller to tea.Model. The Controller must already be
// bound.
type Model[S trace.Snapshot] struct {
	title string
	ctrl  *playback.Controller[S]
	r     render.Renderer
	frame render.Func[S]

	base  playback.Pacing
	speed float64
	gen   int
	width int
}

// New returns a Model playing c. speed scales the controller's current
// pacing and is clamped to [playback.MinSpeed, playback.MaxSpeed].
func New[S trace.Snapshot](title string, c *playback.Controller[S], r render.Renderer, frame render.Func[S], speed float64) *Model[S] {
	m := &Model[S]{title: title, ctrl: c, r: r, frame: frame, base: c.Pacing(), speed: 1}
	m.setSpeed(speed)
	return m
}

// Speed returns the current speed factor.
func (m *Model[S]) Speed() float64 { return m.speed }

// Init schedules the first tick when the controller is already playing.
func (m *Model[S]) Init() tea.Cmd {
	if m.ctrl.IsPlaying() {
		return m.schedule()
	}
	return nil
}

// Update handles keys, window resizes and clock ticks.
func (m *Model[S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.ctrl.Tick()
		if m.ctrl.IsPlaying() {
			return m, m.schedule()
		}
	}
	return m, nil
}

func (m *Model[S]) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case " ", "p":
		m.ctrl.Toggle()
		m.gen++
		if m.ctrl.IsPlaying() {
			return m.schedule()
		}
	case "n", "right", "l":
		m.ctrl.Step()
	case "r", "home":
		m.ctrl.Reset()
		m.gen++
	case "+", "=":
		m.setSpeed(m.speed * 2)
	case "-", "_":
		m.setSpeed(m.speed / 2)
	}
	return nil
}

func (m *Model[S]) setSpeed(v float64) {
	v = max(playback.MinSpeed, min(playback.MaxSpeed, v))
	if err := m.ctrl.SetPacing(m.base.Scaled(v)); err == nil {
		m.speed = v
	}
}

func (m *Model[S]) schedule() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.ctrl.Interval(), func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// View renders the title, the current Step and the status bar.
func (m *Model[S]) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	s, ok := m.ctrl.Current()
	if !ok {
		b.WriteString("nothing to play\n")
		return b.String()
	}
	b.WriteString(m.r.Header(s, m.ctrl.Len()))
	b.WriteByte('\n')
	if m.frame != nil {
		b.WriteString(frameStyle.Render(m.frame(s)))
		b.WriteByte('\n')
	}

	status := fmt.Sprintf("%s · speed x%g · %s", m.ctrl.State(), m.speed, helpLine)
	if m.width > 0 && lipgloss.Width(status) > m.width {
		status = fmt.Sprintf("%s · speed x%g", m.ctrl.State(), m.speed)
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteByte('\n')
	return b.String()
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run[S trace.Snapshot](ctx context.Context, m *Model[S], opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	return nil
}
