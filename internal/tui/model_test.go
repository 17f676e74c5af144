package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/fixtures"
	"github.com/blackmichael/explore-feed/internal/theme"
)

type presses struct {
	notified int
	menus    []int
}

func (p *presses) NotificationPressed() { p.notified++ }
func (p *presses) MenuPressed(id int)   { p.menus = append(p.menus, id) }

func newModel(t *testing.T) (Model, *presses) {
	t.Helper()
	rec := &presses{}
	svc, err := feed.NewService(context.Background(), feed.DefaultConfig(), fixtures.NewStatic(), zap.NewNop(),
		feed.WithPressHandler(rec))
	require.NoError(t, err)
	return New(svc.NewSession(theme.Default()), svc.Posts(), zap.NewNop()), rec
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_StoriesAdvanceNearTheEnd(t *testing.T) {
	m, _ := newModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 40})
	// six stories fit across; the first page does not fill twice that
	require.Len(t, m.session.Stories(), 12)

	right := tea.KeyMsg{Type: tea.KeyRight}
	m = send(m, right, right, right)
	assert.Len(t, m.session.Stories(), 12)

	m = send(m, runes("l"))
	assert.Len(t, m.session.Stories(), 18)

	m = send(m, right, right, right, right, right, right)
	assert.Len(t, m.session.Stories(), 20)
	assert.True(t, m.session.Exhausted())

	// scrolling back never unloads
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft}, runes("h"))
	assert.Len(t, m.session.Stories(), 20)
	assert.Equal(t, 8, m.storyOffset)
}

func TestModel_FocusAndPress(t *testing.T) {
	m, rec := newModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 40})

	p, ok := m.Focused()
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)

	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"), runes("k"))
	p, _ = m.Focused()
	assert.Equal(t, 2, p.ID)

	m = send(m, runes("m"), tea.KeyMsg{Type: tea.KeyEnter}, runes("n"))
	assert.Equal(t, []int{2, 2}, rec.menus)
	assert.Equal(t, 1, rec.notified)
	assert.Contains(t, m.View(), "pressed notification")

	// focus stays within the posts
	m = send(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	p, _ = m.Focused()
	assert.Equal(t, 1, p.ID)
}

func TestModel_View(t *testing.T) {
	m, _ := newModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 50})

	out := m.View()
	assert.Contains(t, out, "Let's Explore")
	assert.Contains(t, out, "Allison Becker")
	assert.Contains(t, out, "1,201 likes")
	assert.Contains(t, out, "q quit")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
