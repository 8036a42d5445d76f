package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jwebster45206/vn-menu/pkg/gamemap"
)

// Map operations (filesystem-backed)

func (r *RedisStorage) ListMaps(ctx context.Context) (map[string]string, error) {
	return listMapDir(filepath.Join(r.dataDir, "maps"), r.logger.Warn)
}

func (r *RedisStorage) GetMap(ctx context.Context, filename string) (*gamemap.Map, error) {
	return loadMapFile(filepath.Join(r.dataDir, "maps"), filename)
}

// listMapDir maps display name to file name for every readable map in dir.
func listMapDir(dir string, warn func(msg string, args ...any)) (map[string]string, error) {
	maps := make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		m, err := gamemap.Load(path)
		if err != nil {
			warn("Failed to read map file", "path", path, "error", err)
			return nil
		}

		maps[m.Name] = filepath.Base(path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}

	return maps, nil
}

func loadMapFile(dir, filename string) (*gamemap.Map, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return nil, fmt.Errorf("%w: %q", ErrMapNotFound, filename)
	}
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMapNotFound, filename)
		}
		return nil, fmt.Errorf("failed to stat map file: %w", err)
	}
	return gamemap.Load(path)
}
