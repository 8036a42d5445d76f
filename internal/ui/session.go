package ui

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jwebster45206/vn-menu/internal/storage"
	"github.com/jwebster45206/vn-menu/pkg/gamemap"
	"github.com/jwebster45206/vn-menu/pkg/state"
)

// Session is the map and game state currently in play. Scenes share one Session
// owned by the App; it is only mutated inside Update.
type Session struct {
	MapFile string
	Map     *gamemap.Map
	State   *state.GameState
}

// StartSession loads mapFile from store and starts a fresh game on it. When the map
// does not exist the error names the maps that do.
func StartSession(ctx context.Context, store storage.Storage, mapFile string) (*Session, error) {
	gm, err := store.GetMap(ctx, mapFile)
	if errors.Is(err, storage.ErrMapNotFound) {
		available, listErr := store.ListMaps(ctx)
		if listErr != nil || len(available) == 0 {
			return nil, err
		}
		files := slices.Sorted(maps.Values(available))
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(files, ", "))
	}
	if err != nil {
		return nil, err
	}

	gs := state.NewGameState(mapFile)
	gs.MapName = gm.Name
	return &Session{MapFile: mapFile, Map: gm, State: gs}, nil
}
