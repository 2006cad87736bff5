package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"

	"op3d/internal/config"
	"op3d/internal/profile"
)

// ErrIndexLocked indicates another process is rebuilding the index.
var ErrIndexLocked = errors.New("catalog index is locked by another process")

// Rebuild scans the profile library and replaces the catalog index with what
// it finds. Concurrent rebuilds are excluded with a lock file next to the
// database.
func Rebuild(ctx context.Context, cfg *config.Config, store *Store, library *profile.Library, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	lock := flock.New(filepath.Join(cfg.Paths.CacheDir, "index.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("acquire index lock: %w", err)
	}
	if !ok {
		return 0, ErrIndexLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release index lock", "error", err)
		}
	}()

	var entries []Entry
	for _, kind := range profile.Kinds() {
		docs, err := library.LoadKind(kind)
		if err != nil {
			return 0, fmt.Errorf("scan %s profiles: %w", kind, err)
		}
		for _, doc := range docs {
			entries = append(entries, EntryFromDocument(doc, doc.Path))
		}
	}

	if err := store.Replace(ctx, entries); err != nil {
		return 0, err
	}
	logger.Info("catalog index rebuilt", "profiles", len(entries), "db", store.Path())
	return len(entries), nil
}
