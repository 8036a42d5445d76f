package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/vn-menu/pkg/state"
)

// MapScene is the base scene: the current map's name and the message log.
type MapScene struct {
	session *Session
	keys    KeyMap
	help    help.Model
	log     viewport.Model
	content string // last text written to the viewport
}

// NewMapScene creates the map scene sized for a width x height screen. A zero size
// keeps the defaults until the first tea.WindowSizeMsg.
func NewMapScene(session *Session, keys KeyMap, width, height int) *MapScene {
	s := &MapScene{
		session: session,
		keys:    keys,
		help:    help.New(),
		log:     viewport.New(50, 20),
	}
	s.resize(width, height)
	s.SyncLog()
	return s
}

func (s *MapScene) Init() tea.Cmd {
	return nil
}

func (s *MapScene) Title() string {
	if s.session.Map != nil {
		return s.session.Map.Name
	}
	return gotext.Get("Map")
}

func (s *MapScene) Update(msg tea.Msg) (Scene, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		s.SyncLog()
		return s, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Menu), key.Matches(msg, s.keys.Confirm):
			return s, OpenMenu()
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		}
	}

	var cmd tea.Cmd
	s.log, cmd = s.log.Update(msg)
	return s, cmd
}

func (s *MapScene) View(width, height int) string {
	header := titleStyle.Render(s.Title())
	if gs := s.session.State; gs != nil {
		header += promptStyle.Render(fmt.Sprintf("  ·  %s %d", gotext.Get("Turn"), gs.TurnCounter))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		promptStyle.Render(strings.Repeat("─", max(width, 1))),
		s.log.View(),
		s.help.View(mapHelp{k: s.keys}),
	)
}

func (s *MapScene) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.log.Width = width
	s.log.Height = max(height-3, 1) // header, separator, help
	s.help.Width = width
}

// SyncLog rewrites the viewport from the game state's log and scrolls to the newest
// entry when the text changed. The App calls it after every update.
func (s *MapScene) SyncLog() {
	if s.session.State == nil {
		return
	}
	content := formatLog(s.session.State.Log, s.log.Width)
	if content == s.content {
		return
	}
	s.content = content
	s.log.SetContent(content)
	s.log.GotoBottom()
}

func formatLog(entries []state.LogEntry, width int) string {
	if len(entries) == 0 {
		return promptStyle.Render(gotext.Get("Press m to look around."))
	}

	wrapWidth := max(width-2, 10)
	var content strings.Builder
	for _, entry := range entries {
		if entry.Speaker != "" {
			content.WriteString(speakerStyle.Render(entry.Speaker+":") + "\n")
		} else {
			content.WriteString(narratorStyle.Render("» "))
		}
		content.WriteString(wordwrap.String(entry.Text, wrapWidth))
		content.WriteString("\n\n")
	}
	return content.String()
}
