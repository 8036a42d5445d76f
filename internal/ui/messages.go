package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/vn-menu/internal/storage"
	"github.com/jwebster45206/vn-menu/pkg/gamemap"
	"github.com/jwebster45206/vn-menu/pkg/state"
)

// SlotMode selects what the save-slot screen does on confirm.
type SlotMode int

const (
	SlotLoad SlotMode = iota
	SlotSave
)

type openMenuMsg struct{}

type popSceneMsg struct{}

type startBehaviorMsg struct {
	entityID int
}

type openSlotsMsg struct {
	mode SlotMode
}

// hostActionsMsg carries requests queued by the overlay during one update.
// The App applies them in order.
type hostActionsMsg struct {
	actions []tea.Msg
}

type savesListedMsg struct {
	infos []storage.SaveInfo
	err   error
}

type gameLoadedMsg struct {
	slot    int
	state   *state.GameState
	gameMap *gamemap.Map
	err     error
}

type gameSavedMsg struct {
	slot int
	err  error
}

type saveDeletedMsg struct {
	slot int
	err  error
}

// OpenMenu is the entry point that pushes the VN menu overlay scene.
func OpenMenu() tea.Cmd {
	return func() tea.Msg {
		return openMenuMsg{}
	}
}
