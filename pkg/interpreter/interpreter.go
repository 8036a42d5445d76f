// Package interpreter runs the event commands on an entity's active page. Running a page is
// what "starting an entity's behavior" means to the host.
package interpreter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/vn-menu/pkg/gamemap"
	"github.com/jwebster45206/vn-menu/pkg/state"
)

var ErrMalformedCommand = errors.New("malformed command")

// Message is a block of text shown to the player, optionally attributed to a speaker.
type Message struct {
	Speaker string
	Text    string
}

// Outcome describes what happened while running a page.
type Outcome struct {
	EntityID   int
	Messages   []Message
	VarsSet    map[string]string
	OpenMenu   bool // the page asked for the VN menu to be opened afterwards
	Terminated bool // an explicit end command stopped the page
}

// Interpreter executes page commands against a game state.
type Interpreter struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{logger: logger}
}

// Start runs the entity's active page against gs. An entity with no active page does
// nothing, but still counts as a turn. Messages are also appended to the game state's log.
func (in *Interpreter) Start(entity *gamemap.Entity, gs *state.GameState) (*Outcome, error) {
	if entity == nil {
		return nil, fmt.Errorf("%w: no entity", ErrMalformedCommand)
	}
	if gs == nil {
		return nil, errors.New("game state is nil")
	}

	gs.TurnCounter++
	outcome := &Outcome{EntityID: entity.ID, VarsSet: make(map[string]string)}

	page := entity.ActivePage(gs)
	if page == nil {
		in.logger.Debug("Entity has no active page", "entity_id", entity.ID)
		return outcome, nil
	}

	var current *Message
	flush := func() {
		if current == nil || current.Text == "" {
			current = nil
			return
		}
		outcome.Messages = append(outcome.Messages, *current)
		gs.AddLog(current.Speaker, current.Text)
		current = nil
	}

	for i, cmd := range page.List {
		if cmd.Code != gamemap.CodeTextLine {
			// Any non-text command ends a text block, except that a header opens a new one.
			flush()
		}

		switch cmd.Code {
		case gamemap.CodeTextHeader:
			current = &Message{Speaker: cmd.Param(0)}
		case gamemap.CodeTextLine:
			if len(cmd.Parameters) == 0 {
				return outcome, fmt.Errorf("%w: text line at index %d has no text", ErrMalformedCommand, i)
			}
			if current == nil {
				current = &Message{}
			}
			if current.Text == "" {
				current.Text = cmd.Parameters[0]
			} else {
				current.Text += "\n" + cmd.Parameters[0]
			}
		case gamemap.CodeSetVar:
			if len(cmd.Parameters) < 2 || cmd.Parameters[0] == "" {
				return outcome, fmt.Errorf("%w: set var at index %d needs a name and a value", ErrMalformedCommand, i)
			}
			gs.SetVar(cmd.Parameters[0], cmd.Parameters[1])
			outcome.VarsSet[cmd.Parameters[0]] = cmd.Parameters[1]
		case gamemap.CodeOpenMenu:
			outcome.OpenMenu = true
		case gamemap.CodeComment, gamemap.CodeCommentExtra:
			// Annotations only.
		case gamemap.CodeEnd:
			outcome.Terminated = true
			in.logger.Debug("Entity behavior ended", "entity_id", entity.ID, "index", i)
			return outcome, nil
		default:
			in.logger.Debug("Skipping unsupported command", "entity_id", entity.ID, "code", cmd.Code, "index", i)
		}
	}
	flush()

	in.logger.Debug("Entity behavior finished",
		"entity_id", entity.ID,
		"messages", len(outcome.Messages),
		"vars_set", len(outcome.VarsSet),
		"turn", gs.TurnCounter)
	return outcome, nil
}
