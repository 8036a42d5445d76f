package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/vn-menu/pkg/state"
)

const saveKeyPrefix = "savefile:"

func saveKey(slot int) string {
	return saveKeyPrefix + strconv.Itoa(slot)
}

// Save slot operations (Redis-backed)

func (r *RedisStorage) SaveGame(ctx context.Context, slot int, gs *state.GameState) error {
	if slot < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if gs == nil {
		return errors.New("cannot save a nil game state")
	}

	// Update the UpdatedAt timestamp
	gs.UpdatedAt = time.Now()

	data, err := json.Marshal(gs)
	if err != nil {
		r.logger.Error("Failed to marshal gamestate", "slot", slot, "uuid", gs.ID, "error", err)
		return fmt.Errorf("failed to marshal gamestate: %w", err)
	}

	// Save files do not expire
	cmd := r.client.Set(ctx, saveKey(slot), string(data), 0)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to save game", "slot", slot, "uuid", gs.ID, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	r.logger.Info("Game saved", "slot", slot, "uuid", gs.ID, "turn", gs.TurnCounter)
	return nil
}

func (r *RedisStorage) LoadGame(ctx context.Context, slot int) (*state.GameState, error) {
	if slot < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}

	cmd := r.client.Get(ctx, saveKey(slot))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Save slot is empty", "slot", slot)
			return nil, nil // Return nil for empty slot
		}
		r.logger.Error("Failed to load game", "slot", slot, "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	gs, err := decodeGameState(cmd.Val())
	if err != nil {
		r.logger.Error("Failed to unmarshal gamestate", "slot", slot, "error", err)
		return nil, err
	}
	return gs, nil
}

// ListSaves summarizes slots 1..slots in a single round trip.
func (r *RedisStorage) ListSaves(ctx context.Context, slots int) ([]SaveInfo, error) {
	if slots < 1 {
		return []SaveInfo{}, nil
	}

	keys := make([]string, slots)
	for i := range keys {
		keys[i] = saveKey(i + 1)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Error("Failed to list saves", "error", err)
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	infos := make([]SaveInfo, slots)
	for i, v := range values {
		slot := i + 1
		data, ok := v.(string)
		if !ok || data == "" {
			infos[i] = infoFromState(slot, nil)
			continue
		}
		gs, err := decodeGameState(data)
		if err != nil {
			// A corrupt slot shows as empty rather than hiding every other slot.
			r.logger.Warn("Skipping unreadable save slot", "slot", slot, "error", err)
			infos[i] = infoFromState(slot, nil)
			continue
		}
		infos[i] = infoFromState(slot, gs)
	}
	return infos, nil
}

func (r *RedisStorage) DeleteSave(ctx context.Context, slot int) error {
	if slot < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	cmd := r.client.Del(ctx, saveKey(slot))
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to delete save", "slot", slot, "error", err)
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

func decodeGameState(data string) (*state.GameState, error) {
	if data == "" {
		return nil, nil
	}
	var gs state.GameState
	if err := json.Unmarshal([]byte(data), &gs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gamestate: %w", err)
	}
	return &gs, nil
}
