package interpreter

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/vn-menu/pkg/conditionals"
	"github.com/jwebster45206/vn-menu/pkg/gamemap"
	"github.com/jwebster45206/vn-menu/pkg/state"
)

func newTestInterpreter() *Interpreter {
	return New(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
}

func cmd(code int, params ...string) gamemap.Command {
	return gamemap.Command{Code: code, Parameters: params}
}

func TestStart_TextAndVars(t *testing.T) {
	mayor := &gamemap.Entity{ID: 1, Name: "Mayor", Pages: []gamemap.Page{{
		List: []gamemap.Command{
			cmd(gamemap.CodeComment, "vn_npc"),
			cmd(gamemap.CodeTextHeader, "Mayor"),
			cmd(gamemap.CodeTextLine, "Welcome to the village."),
			cmd(gamemap.CodeTextLine, "Mind the well."),
			cmd(gamemap.CodeSetVar, "met_mayor", "true"),
			cmd(gamemap.CodeTextLine, "Off you go."),
			cmd(gamemap.CodeEnd),
		},
	}}}
	gs := state.NewGameState("village.json")

	outcome, err := newTestInterpreter().Start(mayor, gs)
	require.NoError(t, err)

	require.Len(t, outcome.Messages, 2)
	assert.Equal(t, Message{Speaker: "Mayor", Text: "Welcome to the village.\nMind the well."}, outcome.Messages[0])
	assert.Equal(t, Message{Text: "Off you go."}, outcome.Messages[1])
	assert.Equal(t, map[string]string{"met_mayor": "true"}, outcome.VarsSet)
	assert.True(t, outcome.Terminated)
	assert.False(t, outcome.OpenMenu)

	assert.Equal(t, "true", gs.Vars["met_mayor"])
	assert.Equal(t, 1, gs.TurnCounter)
	require.Len(t, gs.Log, 2)
	assert.Equal(t, "Mayor", gs.Log[0].Speaker)
}

func TestStart_EndStopsExecution(t *testing.T) {
	e := &gamemap.Entity{ID: 2, Name: "Sign", Pages: []gamemap.Page{{
		List: []gamemap.Command{
			cmd(gamemap.CodeTextLine, "Keep out."),
			cmd(gamemap.CodeEnd),
			cmd(gamemap.CodeSetVar, "never", "set"),
		},
	}}}
	gs := state.NewGameState("village.json")

	outcome, err := newTestInterpreter().Start(e, gs)
	require.NoError(t, err)
	assert.Len(t, outcome.Messages, 1)
	assert.NotContains(t, gs.Vars, "never")
}

func TestStart_UsesActivePage(t *testing.T) {
	well := &gamemap.Entity{ID: 3, Name: "Well", Pages: []gamemap.Page{
		{List: []gamemap.Command{
			cmd(gamemap.CodeTextLine, "You draw water."),
			cmd(gamemap.CodeSetVar, "well_dry", "true"),
		}},
		{
			When: &conditionals.When{Vars: map[string]string{"well_dry": "true"}},
			List: []gamemap.Command{cmd(gamemap.CodeTextLine, "The well is dry.")},
		},
	}}
	gs := state.NewGameState("village.json")
	in := newTestInterpreter()

	first, err := in.Start(well, gs)
	require.NoError(t, err)
	assert.Equal(t, "You draw water.", first.Messages[0].Text)

	second, err := in.Start(well, gs)
	require.NoError(t, err)
	assert.Equal(t, "The well is dry.", second.Messages[0].Text)
	assert.Equal(t, 2, gs.TurnCounter)
}

func TestStart_NoActivePage(t *testing.T) {
	e := &gamemap.Entity{ID: 4, Name: "Ghost", Pages: []gamemap.Page{
		{When: &conditionals.When{Vars: map[string]string{"midnight": "true"}}},
	}}
	gs := state.NewGameState("village.json")

	outcome, err := newTestInterpreter().Start(e, gs)
	require.NoError(t, err)
	assert.Empty(t, outcome.Messages)
	assert.Equal(t, 1, gs.TurnCounter)
}

func TestStart_OpenMenu(t *testing.T) {
	e := &gamemap.Entity{ID: 5, Name: "Bed", Pages: []gamemap.Page{{
		List: []gamemap.Command{cmd(gamemap.CodeOpenMenu), cmd(999, "ignored")},
	}}}

	outcome, err := newTestInterpreter().Start(e, state.NewGameState("village.json"))
	require.NoError(t, err)
	assert.True(t, outcome.OpenMenu)
}

func TestStart_MalformedCommands(t *testing.T) {
	tests := []struct {
		name    string
		command gamemap.Command
	}{
		{"text without parameters", cmd(gamemap.CodeTextLine)},
		{"set var without value", cmd(gamemap.CodeSetVar, "name")},
		{"set var with empty name", cmd(gamemap.CodeSetVar, "", "x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &gamemap.Entity{ID: 6, Name: "Broken", Pages: []gamemap.Page{{List: []gamemap.Command{tt.command}}}}
			_, err := newTestInterpreter().Start(e, state.NewGameState("village.json"))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedCommand))
		})
	}
}

func TestStart_NilArguments(t *testing.T) {
	in := newTestInterpreter()

	_, err := in.Start(nil, state.NewGameState("village.json"))
	assert.Error(t, err)

	_, err = in.Start(&gamemap.Entity{ID: 1, Name: "X"}, nil)
	assert.Error(t, err)
}
