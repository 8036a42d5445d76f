package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/jwebster45206/vn-menu/pkg/gamemap"
	"github.com/jwebster45206/vn-menu/pkg/state"
)

// MemoryStorage keeps save slots in process memory. It backs the game when no
// Redis is configured and stands in for Redis in tests. Maps come from dataDir
// unless added with AddMap.
type MemoryStorage struct {
	mu      sync.RWMutex
	saves   map[int][]byte
	maps    map[string]*gamemap.Map
	dataDir string
	logger  *slog.Logger
}

// Ensure MemoryStorage implements Storage interface
var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage(dataDir string, logger *slog.Logger) *MemoryStorage {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryStorage{
		saves:   make(map[int][]byte),
		maps:    make(map[string]*gamemap.Map),
		dataDir: dataDir,
		logger:  logger,
	}
}

// Ping always succeeds; there is no connection to lose.
func (m *MemoryStorage) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

// SaveGame stores a snapshot; later changes to gs do not affect the slot.
func (m *MemoryStorage) SaveGame(ctx context.Context, slot int, gs *state.GameState) error {
	if slot < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if gs == nil {
		return errors.New("cannot save a nil game state")
	}

	gs.UpdatedAt = time.Now()
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("failed to marshal gamestate: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[slot] = data
	return nil
}

func (m *MemoryStorage) LoadGame(ctx context.Context, slot int) (*state.GameState, error) {
	if slot < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}

	m.mu.RLock()
	data, exists := m.saves[slot]
	m.mu.RUnlock()
	if !exists {
		return nil, nil // Return nil for empty slot
	}
	return decodeGameState(string(data))
}

func (m *MemoryStorage) ListSaves(ctx context.Context, slots int) ([]SaveInfo, error) {
	infos := make([]SaveInfo, 0, slots)
	for slot := 1; slot <= slots; slot++ {
		gs, err := m.LoadGame(ctx, slot)
		if err != nil {
			return nil, err
		}
		infos = append(infos, infoFromState(slot, gs))
	}
	return infos, nil
}

func (m *MemoryStorage) DeleteSave(ctx context.Context, slot int) error {
	if slot < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saves, slot)
	return nil
}

// AddMap registers a map under filename (for testing)
func (m *MemoryStorage) AddMap(filename string, gm *gamemap.Map) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maps[filename] = gm
}

func (m *MemoryStorage) ListMaps(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string)
	if m.dataDir != "" {
		onDisk, err := listMapDir(filepath.Join(m.dataDir, "maps"), m.logger.Warn)
		if err != nil {
			return nil, err
		}
		for name, file := range onDisk {
			result[name] = file
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for filename, gm := range m.maps {
		result[gm.Name] = filename
	}
	return result, nil
}

func (m *MemoryStorage) GetMap(ctx context.Context, filename string) (*gamemap.Map, error) {
	m.mu.RLock()
	gm, exists := m.maps[filename]
	m.mu.RUnlock()
	if exists {
		return gm, nil
	}
	if m.dataDir == "" {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, filename)
	}
	return loadMapFile(filepath.Join(m.dataDir, "maps"), filename)
}
