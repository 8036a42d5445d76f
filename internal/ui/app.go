package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leonelquinteros/gotext"

	"github.com/jwebster45206/vn-menu/internal/storage"
	"github.com/jwebster45206/vn-menu/pkg/interpreter"
)

// App is the root tea.Model. It owns the session and the scene stack, and
// carries out the requests scenes send it.
type App struct {
	session *Session
	store   storage.Storage
	interp  *interpreter.Interpreter
	logger  *slog.Logger
	keys    KeyMap
	slots   int
	stack   *SceneStack
	width   int
	height  int
}

func NewApp(session *Session, store storage.Storage, interp *interpreter.Interpreter, logger *slog.Logger, slots int, keys KeyMap) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		session: session,
		store:   store,
		interp:  interp,
		logger:  logger,
		keys:    keys,
		slots:   slots,
		stack:   NewSceneStack(),
	}
	a.stack.Push(NewMapScene(session, keys, 0, 0))
	return a
}

// Session returns the session currently in play.
func (a *App) Session() *Session {
	return a.session
}

// Stack exposes the scene stack, mostly for tests.
func (a *App) Stack() *SceneStack {
	return a.stack
}

func (a *App) Init() tea.Cmd {
	return a.stack.Current().Init()
}

// logSyncer is implemented by scenes that show the game state's message log.
type logSyncer interface {
	SyncLog()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.stack.Each(func(sc Scene) {
		if ls, ok := sc.(logSyncer); ok {
			ls.SyncLog()
		}
	})
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.stack.Broadcast(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		return a.stack.Update(msg)

	case openMenuMsg:
		if _, ok := a.stack.Current().(*MenuScene); ok {
			return nil
		}
		return a.stack.Push(NewMenuScene(a.session, a.keys, a.logger, a.width, a.height))

	case popSceneMsg:
		if a.stack.Len() > 1 {
			a.stack.Pop()
		}
		return nil

	case hostActionsMsg:
		var cmds []tea.Cmd
		for _, action := range msg.actions {
			cmd := a.update(action)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return tea.Batch(cmds...)

	case startBehaviorMsg:
		return a.startBehavior(msg.entityID)

	case openSlotsMsg:
		return a.stack.Push(NewSlotScene(msg.mode, a.session, a.store, a.slots, a.keys))

	case gameLoadedMsg:
		if msg.err != nil {
			a.logger.Warn("Failed to load game", "slot", msg.slot, "error", msg.err)
			return a.stack.Update(msg)
		}
		a.session = &Session{MapFile: msg.state.MapFile, Map: msg.gameMap, State: msg.state}
		a.session.State.AddLog("", gotext.Get("Game loaded from slot %d.", msg.slot))
		a.logger.Info("Game loaded", "slot", msg.slot, "game_state_id", msg.state.ID.String(), "map", msg.state.MapFile)
		return a.stack.Reset(NewMapScene(a.session, a.keys, a.width, a.height))

	case gameSavedMsg:
		if msg.err != nil {
			a.logger.Warn("Failed to save game", "slot", msg.slot, "error", msg.err)
			return a.stack.Update(msg)
		}
		a.session.State.AddLog("", gotext.Get("Game saved to slot %d.", msg.slot))
		if _, ok := a.stack.Current().(*SlotScene); ok && a.stack.Len() > 1 {
			a.stack.Pop()
		}
		return nil
	}

	return a.stack.Update(msg)
}

// startBehavior runs the entity's active page. The overlay has already been
// popped by the time this runs.
func (a *App) startBehavior(entityID int) tea.Cmd {
	if a.session.Map == nil || a.session.State == nil {
		return nil
	}
	entity := a.session.Map.Entity(entityID)
	if entity == nil {
		a.logger.Warn("Entity no longer on map", "entity_id", entityID)
		return nil
	}

	outcome, err := a.interp.Start(entity, a.session.State)
	if err != nil {
		a.logger.Error("Entity behavior failed", "entity_id", entityID, "error", err)
		a.session.State.AddLog("", gotext.Get("Something went wrong with %s.", entity.Name))
		return nil
	}
	a.logger.Info("Entity behavior ran",
		"entity_id", entityID,
		"messages", len(outcome.Messages),
		"turn", a.session.State.TurnCounter)

	if outcome.OpenMenu {
		return OpenMenu()
	}
	return nil
}

func (a *App) View() string {
	current := a.stack.Current()
	if current == nil {
		return ""
	}
	width, height := a.width, a.height
	if width == 0 || height == 0 {
		width, height = 80, 24
	}
	return current.View(width, height)
}
