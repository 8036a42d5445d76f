package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"

	"github.com/jwebster45206/vn-menu/internal/storage"
	"github.com/jwebster45206/vn-menu/pkg/state"
)

const storageTimeout = 5 * time.Second

// errEmptySlot is reported when the player tries to load a slot with nothing in it.
var errEmptySlot = errors.New("empty slot")

// SlotScene is the shared load/save screen.
type SlotScene struct {
	mode    SlotMode
	session *Session
	store   storage.Storage
	slots   int
	keys    KeyMap
	help    help.Model

	infos  []storage.SaveInfo
	index  int
	busy   bool
	status string
	err    error
}

func NewSlotScene(mode SlotMode, session *Session, store storage.Storage, slots int, keys KeyMap) *SlotScene {
	return &SlotScene{
		mode:    mode,
		session: session,
		store:   store,
		slots:   slots,
		keys:    keys,
		help:    help.New(),
		busy:    true,
	}
}

func (s *SlotScene) Init() tea.Cmd {
	return listSaves(s.store, s.slots)
}

func (s *SlotScene) Title() string {
	if s.mode == SlotSave {
		return gotext.Get("Save")
	}
	return gotext.Get("Load")
}

func (s *SlotScene) Update(msg tea.Msg) (Scene, tea.Cmd) {
	switch msg := msg.(type) {
	case savesListedMsg:
		s.busy = false
		s.err = msg.err
		if msg.err == nil {
			s.infos = msg.infos
			s.index = min(s.index, max(len(s.infos)-1, 0))
		}
		return s, nil

	case gameLoadedMsg:
		s.busy = false
		if errors.Is(msg.err, errEmptySlot) {
			s.status = gotext.Get("Empty slot")
			s.err = nil
			return s, nil
		}
		s.err = msg.err
		return s, nil

	case gameSavedMsg:
		s.busy = false
		s.err = msg.err
		return s, nil

	case saveDeletedMsg:
		if msg.err != nil {
			s.busy = false
			s.err = msg.err
			return s, nil
		}
		s.status = gotext.Get("Slot %d deleted.", msg.slot)
		return s, listSaves(s.store, s.slots)

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch {
		case key.Matches(msg, s.keys.Up):
			if len(s.infos) > 0 {
				s.index = (s.index - 1 + len(s.infos)) % len(s.infos)
			}
		case key.Matches(msg, s.keys.Down):
			if len(s.infos) > 0 {
				s.index = (s.index + 1) % len(s.infos)
			}
		case key.Matches(msg, s.keys.Cancel):
			return s, func() tea.Msg { return popSceneMsg{} }
		case key.Matches(msg, s.keys.Confirm):
			return s, s.confirm()
		case key.Matches(msg, s.keys.Delete):
			return s, s.delete()
		}
	}
	return s, nil
}

func (s *SlotScene) confirm() tea.Cmd {
	if s.index < 0 || s.index >= len(s.infos) {
		return nil
	}
	info := s.infos[s.index]
	s.status = ""
	s.err = nil

	if s.mode == SlotLoad {
		if info.Empty {
			s.status = gotext.Get("Empty slot")
			return nil
		}
		s.busy = true
		return loadGame(s.store, info.Slot)
	}

	if s.session.State == nil {
		return nil
	}
	s.busy = true
	return saveGame(s.store, info.Slot, s.session.State.Clone())
}

func (s *SlotScene) delete() tea.Cmd {
	if s.index < 0 || s.index >= len(s.infos) || s.infos[s.index].Empty {
		return nil
	}
	s.status = ""
	s.err = nil
	s.busy = true
	return deleteSave(s.store, s.infos[s.index].Slot)
}

func (s *SlotScene) View(width, height int) string {
	s.help.Width = width

	var body strings.Builder
	body.WriteString(titleStyle.Render(s.Title()) + "\n\n")

	if s.busy && len(s.infos) == 0 {
		body.WriteString(promptStyle.Render(gotext.Get("Loading...")) + "\n")
	}
	for i, info := range s.infos {
		line := slotLabel(info)
		if i == s.index {
			body.WriteString(selectedItemStyle.Render("▸ "+line) + "\n")
		} else {
			body.WriteString(itemStyle.Render("  "+line) + "\n")
		}
	}

	body.WriteString("\n")
	switch {
	case s.err != nil:
		body.WriteString(errorStyle.Render(gotext.Get("Error") + ": " + s.err.Error()))
	case s.status != "":
		body.WriteString(statusStyle.Render(s.status))
	}

	box := windowStyle.Width(max(width-2, 0)).Render(body.String())
	return lipgloss.JoinVertical(lipgloss.Left, box, s.help.View(slotHelp{k: s.keys}))
}

func slotLabel(info storage.SaveInfo) string {
	if info.Empty {
		return fmt.Sprintf("%2d  %s", info.Slot, gotext.Get("Empty"))
	}
	return fmt.Sprintf("%2d  %-20s %s %-4d %s",
		info.Slot, info.MapName, gotext.Get("Turn"), info.TurnCounter,
		info.UpdatedAt.Local().Format("2006-01-02 15:04"))
}

func listSaves(store storage.Storage, slots int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		infos, err := store.ListSaves(ctx, slots)
		return savesListedMsg{infos: infos, err: err}
	}
}

// loadGame reads the slot and the map its state was saved on.
func loadGame(store storage.Storage, slot int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()

		gs, err := store.LoadGame(ctx, slot)
		if err != nil {
			return gameLoadedMsg{slot: slot, err: err}
		}
		if gs == nil {
			return gameLoadedMsg{slot: slot, err: errEmptySlot}
		}
		gm, err := store.GetMap(ctx, gs.MapFile)
		if err != nil {
			return gameLoadedMsg{slot: slot, err: fmt.Errorf("failed to load map %q: %w", gs.MapFile, err)}
		}
		return gameLoadedMsg{slot: slot, state: gs, gameMap: gm}
	}
}

func saveGame(store storage.Storage, slot int, snapshot *state.GameState) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		return gameSavedMsg{slot: slot, err: store.SaveGame(ctx, slot, snapshot)}
	}
}

func deleteSave(store storage.Storage, slot int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		return saveDeletedMsg{slot: slot, err: store.DeleteSave(ctx, slot)}
	}
}
