package persist

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"dungeoncrawl/internal/config"
)

// Store holds at most one saved game.
type Store interface {
	Save(ctx context.Context, s *Snapshot) error
	// Load returns ErrNoSave when nothing has been saved.
	Load(ctx context.Context) (*Snapshot, error)
	Exists(ctx context.Context) (bool, error)
	Delete(ctx context.Context) error
	Close() error
}

// Open builds the store selected by cfg. A non-empty slot keeps saves of
// different players apart within one backend.
func Open(ctx context.Context, cfg config.Save, slot string) (Store, error) {
	slot = cleanSlot(slot)
	switch cfg.Backend {
	case "", "file":
		path := cfg.Path
		if slot != "" {
			path = filepath.Join(filepath.Dir(path), slot+"."+filepath.Base(path))
		}
		return NewFileStore(path), nil
	case "sqlite":
		return OpenSQLite(ctx, cfg.Path, slot)
	case "postgres":
		return OpenPostgres(ctx, cfg.DSN, slot)
	}
	return nil, fmt.Errorf("persist: unknown backend %q", cfg.Backend)
}

// cleanSlot maps a user-supplied name onto a safe file and key name.
func cleanSlot(slot string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, slot)
}
