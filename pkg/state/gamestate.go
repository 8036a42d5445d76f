package state

import (
	"time"

	"github.com/google/uuid"
)

// LogLimit caps the message log kept in a game state.
const LogLimit = 200

// LogEntry is one line of narration shown in the map scene's message log.
type LogEntry struct {
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text"`
}

// GameState is the current state of a play session. It is what a save slot holds.
type GameState struct {
	ID          uuid.UUID         `json:"id"`                 // Unique ID per session
	MapFile     string            `json:"map_file"`           // File name of the loaded map
	MapName     string            `json:"map_name,omitempty"` // Display name of the loaded map
	Vars        map[string]string `json:"vars,omitempty"`     // Variables set by event commands
	TurnCounter int               `json:"turn_counter"`       // Behaviors started so far
	Log         []LogEntry        `json:"log,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func NewGameState(mapFile string) *GameState {
	now := time.Now()
	return &GameState{
		ID:        uuid.New(),
		MapFile:   mapFile,
		Vars:      make(map[string]string),
		Log:       make([]LogEntry, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetVars implements conditionals.GameStateView
func (gs *GameState) GetVars() map[string]string {
	return gs.Vars
}

// GetTurnCounter implements conditionals.GameStateView
func (gs *GameState) GetTurnCounter() int {
	return gs.TurnCounter
}

// SetVar sets a variable, initializing the map when needed.
func (gs *GameState) SetVar(name, value string) {
	if gs.Vars == nil {
		gs.Vars = make(map[string]string)
	}
	gs.Vars[name] = value
}

// AddLog appends a log entry, dropping the oldest entries beyond LogLimit.
func (gs *GameState) AddLog(speaker, text string) {
	gs.Log = append(gs.Log, LogEntry{Speaker: speaker, Text: text})
	if len(gs.Log) > LogLimit {
		gs.Log = gs.Log[len(gs.Log)-LogLimit:]
	}
}

// Clone returns a copy that shares no maps or slices with gs.
func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	c := *gs
	if gs.Vars != nil {
		c.Vars = make(map[string]string, len(gs.Vars))
		for k, v := range gs.Vars {
			c.Vars[k] = v
		}
	}
	if gs.Log != nil {
		c.Log = append([]LogEntry(nil), gs.Log...)
	}
	return &c
}
