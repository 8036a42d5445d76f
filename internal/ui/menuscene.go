package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leonelquinteros/gotext"

	"github.com/jwebster45206/vn-menu/pkg/gamemap"
	"github.com/jwebster45206/vn-menu/pkg/vnmenu"
)

// SaveDisabledVar is the game variable that greys out the Save command when set to "true".
const SaveDisabledVar = "save_disabled"

// MenuScene hosts the VN menu overlay on top of the map scene. It is also the
// overlay's Host: requests made by the controller are queued and handed to the App
// as a single hostActionsMsg so they are applied in the order they were made.
type MenuScene struct {
	session    *Session
	keys       KeyMap
	help       help.Model
	controller *vnmenu.Controller
	pending    []tea.Msg
	width      int
	height     int
}

func NewMenuScene(session *Session, keys KeyMap, logger *slog.Logger, width, height int) *MenuScene {
	s := &MenuScene{
		session: session,
		keys:    keys,
		help:    help.New(),
	}
	s.controller = vnmenu.NewController(gamemap.NewStateView(session.Map, session.State), s, logger)
	s.controller.Open()
	s.resize(width, height)
	return s
}

func (s *MenuScene) StartBehavior(entityID int) {
	s.pending = append(s.pending, startBehaviorMsg{entityID: entityID})
}

func (s *MenuScene) OpenLoadScreen() {
	s.pending = append(s.pending, openSlotsMsg{mode: SlotLoad})
}

func (s *MenuScene) OpenSaveScreen() {
	s.pending = append(s.pending, openSlotsMsg{mode: SlotSave})
}

func (s *MenuScene) ReturnScene() {
	s.pending = append(s.pending, popSceneMsg{})
}

func (s *MenuScene) SaveEnabled() bool {
	if s.session.State == nil {
		return true
	}
	return s.session.State.Vars[SaveDisabledVar] != "true"
}

// Controller exposes the overlay state, mostly for tests.
func (s *MenuScene) Controller() *vnmenu.Controller {
	return s.controller
}

func (s *MenuScene) Init() tea.Cmd {
	return nil
}

func (s *MenuScene) Title() string {
	return gotext.Get("Menu")
}

func (s *MenuScene) Update(msg tea.Msg) (Scene, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Left):
			s.controller.Left()
		case key.Matches(msg, s.keys.Right):
			s.controller.Right()
		case key.Matches(msg, s.keys.Up):
			s.controller.Up()
		case key.Matches(msg, s.keys.Down):
			s.controller.Down()
		case key.Matches(msg, s.keys.Confirm):
			s.controller.Confirm()
		case key.Matches(msg, s.keys.Cancel), key.Matches(msg, s.keys.Menu):
			s.controller.Cancel()
		}
	}
	return s, s.flush()
}

// flush hands queued host requests to the App.
func (s *MenuScene) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	actions := s.pending
	s.pending = nil
	return func() tea.Msg {
		return hostActionsMsg{actions: actions}
	}
}

func (s *MenuScene) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width = width
	s.height = height
	s.help.Width = width

	rows := max(screenLayout(width, height).Panel.Height-3, 1) // borders and title
	s.controller.Talk().SetVisibleRows(rows)
	s.controller.Inspect().SetVisibleRows(rows)
}

// screenLayout keeps the bottom row free for the help line.
func screenLayout(width, height int) vnmenu.Layout {
	return vnmenu.ComputeLayout(width, height-1)
}

func (s *MenuScene) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	layout := screenLayout(width, height)
	canvas := make([]string, height)

	if s.controller.Root().State() != vnmenu.RootHidden {
		paint(canvas, layout.Root.Y, s.renderRoot(layout.Root))
	}
	if p := s.controller.ActivePanel(); p != nil && layout.Panel.Height >= 3 {
		paint(canvas, layout.Panel.Y, s.renderPanel(p, layout.Panel))
	} else {
		paint(canvas, layout.Panel.Y, titleStyle.Render(s.mapName())+promptStyle.Render("  ·  "+gotext.Get("What will you do?")))
	}
	canvas[height-1] = s.help.View(listHelp{k: s.keys, horizontal: s.controller.Visible() == vnmenu.PanelNone})

	return strings.Join(canvas, "\n")
}

func (s *MenuScene) mapName() string {
	if s.session.Map == nil {
		return ""
	}
	return s.session.Map.Name
}

// paint writes block into canvas starting at row y, dropping rows that fall off screen.
func paint(canvas []string, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		if row := y + i; row >= 0 && row < len(canvas) {
			canvas[row] = line
		}
	}
}

func (s *MenuScene) renderRoot(r vnmenu.Rect) string {
	root := s.controller.Root()
	items := root.Items()
	cells := make([]string, 0, len(items))
	for i, item := range items {
		label := " " + commandLabel(item) + " "
		switch {
		case !item.Enabled:
			cells = append(cells, disabledItemStyle.Render(label))
		case i == root.Index() && root.State() == vnmenu.RootFocused:
			cells = append(cells, selectedItemStyle.Render(label))
		case i == root.Index():
			cells = append(cells, unfocusedSelectedItemStyle.Render(label))
		default:
			cells = append(cells, itemStyle.Render(label))
		}
	}

	style := windowStyle
	if root.State() == vnmenu.RootFocused {
		style = focusedWindowStyle
	}
	return style.Width(max(r.Width-2, 0)).Render(strings.Join(cells, "  "))
}

// commandLabel translates a root menu row. Each label is a literal so catalogue
// extraction can find it.
func commandLabel(item vnmenu.CommandItem) string {
	switch item.Command {
	case vnmenu.CommandTalk:
		return gotext.Get("Talk")
	case vnmenu.CommandInspect:
		return gotext.Get("Inspect")
	case vnmenu.CommandLoad:
		return gotext.Get("Load")
	case vnmenu.CommandSave:
		return gotext.Get("Save")
	default:
		return item.Label
	}
}

func (s *MenuScene) renderPanel(p *vnmenu.Panel, r vnmenu.Rect) string {
	var body strings.Builder
	title := gotext.Get("Talk")
	if p.Tag() == vnmenu.TagInspect {
		title = gotext.Get("Inspect")
	}
	body.WriteString(titleStyle.Render(title))

	entries := p.Entries()
	if len(entries) == 0 {
		body.WriteString("\n" + promptStyle.Render(gotext.Get("Nothing here.")))
	}

	selected, _ := p.Selected()
	for _, entry := range p.VisibleEntries() {
		body.WriteString("\n")
		if entry == selected && p.Index() >= 0 {
			body.WriteString(selectedItemStyle.Render("▸ " + entry.Label))
		} else {
			body.WriteString(itemStyle.Render("  " + entry.Label))
		}
	}

	return focusedWindowStyle.
		Width(max(r.Width-2, 0)).
		MaxHeight(r.Height).
		Render(body.String())
}

var _ vnmenu.Host = (*MenuScene)(nil)
