// Package tui hosts the feed in a terminal with bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/blackmichael/explore-feed/internal/components"
	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/pager"
	"github.com/blackmichael/explore-feed/internal/view"
)

// cellsPerStory is the approximate terminal width of one story item
// including its separator.
const cellsPerStory = 9

type keyMap struct {
	Left         key.Binding
	Right        key.Binding
	Up           key.Binding
	Down         key.Binding
	Notification key.Binding
	Menu         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "stories back")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "stories forward")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous post")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next post")),
		Notification: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		Menu:         key.NewBinding(key.WithKeys("m", "enter"), key.WithHelp("m", "post menu")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Notification, k.Menu, k.Quit}
}

// Model is the bubbletea model of one feed session.
type Model struct {
	session *feed.Session
	posts   []domain.PostRecord
	styles  Styles
	keys    keyMap
	logger  *zap.Logger

	viewport viewport.Model
	width    int
	height   int

	focus       int
	storyOffset int
	postStarts  []int
	header      string

	status string
	err    error
}

// New creates a model for session. posts must be the posts the session
// renders, in order.
func New(session *feed.Session, posts []domain.PostRecord, logger *zap.Logger) Model {
	m := Model{
		session:  session,
		posts:    posts,
		styles:   NewStyles(session.Tokens()),
		keys:     defaultKeyMap(),
		logger:   logger,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
	m.loadVisibleStories()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.loadVisibleStories()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Right):
			if m.storyOffset < len(m.session.Stories())-1 {
				m.storyOffset++
			}
			m.loadVisibleStories()
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Left):
			if m.storyOffset > 0 {
				m.storyOffset--
			}
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.focus < len(m.posts)-1 {
				m.focus++
			}
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.focus > 0 {
				m.focus--
			}
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Notification):
			m.press(components.ActionNotification)
			return m, nil

		case key.Matches(msg, m.keys.Menu):
			if len(m.posts) > 0 {
				m.press(components.MenuAction(m.posts[m.focus].ID))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var footer string
	if m.err != nil {
		footer = m.styles.Error.Render("error: " + m.err.Error())
	} else {
		footer = m.styles.StatusBar.Render(m.statusLine())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header,
		m.viewport.View(),
		footer,
		m.styles.Help.Render(m.helpLine()),
	)
}

// Focused returns the post with keyboard focus.
func (m Model) Focused() (domain.PostRecord, bool) {
	if len(m.posts) == 0 {
		return domain.PostRecord{}, false
	}
	return m.posts[m.focus], true
}

// visibleStories is how many story items fit across the terminal.
func (m Model) visibleStories() int {
	return max(1, m.width/cellsPerStory)
}

// scrollMetrics describes the stories strip in design units, the way a
// native horizontal list reports it.
func (m Model) scrollMetrics() pager.ScrollMetrics {
	item := components.StoryItemWidth(m.session.Tokens())
	return pager.ScrollMetrics{
		Offset:        float64(m.storyOffset) * item,
		ContentLength: float64(len(m.session.Stories())) * item,
		VisibleLength: float64(m.visibleStories()) * item,
	}
}

// loadVisibleStories advances the loader while the strip is near its end.
// Content growth re-evaluates the threshold, so one event may load several
// pages on a wide terminal.
func (m *Model) loadVisibleStories() {
	for {
		page, ok := m.session.Scroll(m.scrollMetrics())
		if !ok {
			return
		}
		m.status = fmt.Sprintf("loaded %d more stories", len(page.Items))
		m.logger.Debug("stories advanced from terminal",
			zap.Int("visible", page.Visible),
			zap.Bool("exhausted", page.Exhausted),
		)
	}
}

func (m *Model) press(action string) {
	if err := m.session.Press(action); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = "pressed " + action
}

// refresh re-renders the feed tree and repositions the viewport on the
// focused post.
func (m *Model) refresh() {
	tree, err := m.session.Render()
	if err != nil {
		m.err = err
		return
	}

	r := Renderer{
		Width:  m.width,
		Skip:   map[string]int{"stories": m.storyOffset},
		Styles: m.styles,
	}
	if p, ok := m.Focused(); ok {
		r.Focus = fmt.Sprintf("post.%d", p.ID)
	}

	m.header = r.Render(view.Find(tree, "feed.header"))

	var body strings.Builder
	m.postStarts = nil
	line := 0
	if posts := view.Find(tree, "feed.posts"); posts != nil {
		for _, card := range posts.Children {
			m.postStarts = append(m.postStarts, line)
			s := r.Render(card)
			body.WriteString(s)
			body.WriteString("\n\n")
			line += lipgloss.Height(s) + 1
		}
	}

	chrome := lipgloss.Height(m.header) + 2
	m.viewport.Width = m.width
	m.viewport.Height = max(3, m.height-chrome)
	m.viewport.SetContent(body.String())
	if m.focus < len(m.postStarts) {
		m.viewport.SetYOffset(m.postStarts[m.focus])
	}
}

func (m Model) statusLine() string {
	stories := m.session.Stories()
	more := ""
	if !m.session.Exhausted() {
		more = "+"
	}
	line := fmt.Sprintf("stories %d%s", len(stories), more)

	if p, ok := m.Focused(); ok {
		line += fmt.Sprintf(" · %s · %s likes · %s comments · %s saves",
			p.UserName,
			humanize.Comma(int64(p.Likes)),
			humanize.Comma(int64(p.Comments)),
			humanize.Comma(int64(p.Bookmarks)),
		)
	}
	if m.status != "" {
		line += " · " + m.status
	}
	return line
}

func (m Model) helpLine() string {
	var parts []string
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
