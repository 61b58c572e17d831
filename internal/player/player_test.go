package player

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoreplay/gridbfs"
	"github.com/katalvlaran/algoreplay/internal/render"
	"github.com/katalvlaran/algoreplay/playback"
)

func newModel(t *testing.T) (*Model[gridbfs.SpreadStep], *playback.Controller[gridbfs.SpreadStep]) {
	t.Helper()
	tr, err := gridbfs.Spread("21\n01")
	require.NoError(t, err)
	c, err := playback.New[gridbfs.SpreadStep]()
	require.NoError(t, err)
	require.NoError(t, c.Bind(tr))
	r := render.New(render.Plain())
	return New("spread", c, r, r.Spread, 1), c
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_StepAndReset(t *testing.T) {
	m, c := newModel(t)
	assert.Nil(t, m.Init())

	m.Update(key("n"))
	m.Update(key("right"))
	assert.Equal(t, 2, c.Index())
	assert.False(t, c.IsPlaying())

	m.Update(key("r"))
	assert.Equal(t, 0, c.Index())
}

func TestModel_PlaySchedulesTicks(t *testing.T) {
	m, c := newModel(t)

	_, cmd := m.Update(key(" "))
	require.NotNil(t, cmd)
	assert.True(t, c.IsPlaying())

	_, cmd = m.Update(tickMsg{gen: m.gen})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, c.Index())

	// A tick from before the last toggle is stale.
	stale := m.gen
	m.Update(key(" "))
	m.Update(key(" "))
	_, cmd = m.Update(tickMsg{gen: stale})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, c.Index())

	for i := 0; i < 20 && c.IsPlaying(); i++ {
		m.Update(tickMsg{gen: m.gen})
	}
	assert.True(t, c.IsAtEnd())
	assert.Equal(t, playback.Finished, c.State())

	_, cmd = m.Update(key(" "))
	assert.Nil(t, cmd, "play at the end schedules nothing")
}

func TestModel_Speed(t *testing.T) {
	m, c := newModel(t)
	base := c.Pacing()

	m.Update(key("+"))
	assert.Equal(t, 2.0, m.Speed())
	assert.Equal(t, base.Scaled(2), c.Pacing())

	for i := 0; i < 10; i++ {
		m.Update(key("+"))
	}
	assert.Equal(t, playback.MaxSpeed, m.Speed())

	for i := 0; i < 20; i++ {
		m.Update(key("-"))
	}
	assert.Equal(t, playback.MinSpeed, m.Speed())
	assert.Equal(t, 4*base.Short, c.Pacing().Short)
	assert.Equal(t, 4*base.Long, c.Pacing().Long)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_View(t *testing.T) {
	m, _ := newModel(t)
	view := m.View()
	assert.Contains(t, view, "spread")
	assert.Contains(t, view, "[1/7] scan")
	assert.Contains(t, view, "elapsed: 0")
	assert.Contains(t, view, "ready · speed x1")
	assert.Contains(t, view, "q quit")

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.NotContains(t, m.View(), "q quit")
}
