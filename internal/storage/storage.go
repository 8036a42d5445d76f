package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jwebster45206/vn-menu/pkg/gamemap"
	"github.com/jwebster45206/vn-menu/pkg/state"
)

var (
	ErrInvalidSlot = errors.New("invalid save slot")
	ErrMapNotFound = errors.New("map not found")
)

// SaveInfo summarizes a save slot for the load/save screens.
type SaveInfo struct {
	Slot        int       `json:"slot"`
	Empty       bool      `json:"empty"`
	MapName     string    `json:"map_name,omitempty"`
	TurnCounter int       `json:"turn_counter,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// Storage defines a unified interface for all storage operations
// This interface combines save slot persistence (Redis) with map loading (filesystem)
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Save slot operations. Slots are numbered from 1.
	SaveGame(ctx context.Context, slot int, gs *state.GameState) error
	LoadGame(ctx context.Context, slot int) (*state.GameState, error)
	ListSaves(ctx context.Context, slots int) ([]SaveInfo, error)
	DeleteSave(ctx context.Context, slot int) error

	// Map operations (filesystem-backed)
	ListMaps(ctx context.Context) (map[string]string, error)
	GetMap(ctx context.Context, filename string) (*gamemap.Map, error)
}

func infoFromState(slot int, gs *state.GameState) SaveInfo {
	if gs == nil {
		return SaveInfo{Slot: slot, Empty: true}
	}
	return SaveInfo{
		Slot:        slot,
		MapName:     gs.MapName,
		TurnCounter: gs.TurnCounter,
		UpdatedAt:   gs.UpdatedAt,
	}
}
