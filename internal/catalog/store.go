package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"op3d/internal/config"
	"op3d/internal/profile"
)

// Store manages the catalog index backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.CatalogDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Replace swaps the entire profile index for the given entries in one
// transaction. Favorites are untouched.
func (s *Store) Replace(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin index tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, entry := range entries {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO profiles (kind, id, name, brand, material, intent, tags, path, indexed_at)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			string(entry.Kind),
			entry.ID,
			entry.Name,
			entry.Brand,
			entry.Material,
			entry.Intent,
			joinTags(entry.Tags),
			entry.Path,
			now,
		)
		if err != nil {
			return fmt.Errorf("index %s/%s: %w", entry.Kind, entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit index: %w", err)
	}
	return nil
}

// Get fetches one indexed entry.
func (s *Store) Get(ctx context.Context, kind profile.Kind, id string) (*Entry, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+entryColumns+` FROM profiles p WHERE p.kind = ? AND p.id = ?`,
		string(kind), id,
	)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// List returns indexed entries matching the filter.
func (s *Store) List(ctx context.Context, filter Filter) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM profiles p`
	var conds []string
	var args []any

	if filter.FavoritesOnly {
		query += ` INNER JOIN favorites f ON f.kind = p.kind AND f.id = p.id`
	}
	if filter.Kind != "" {
		conds = append(conds, "p.kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.Brand != "" {
		conds = append(conds, "p.brand = ? COLLATE NOCASE")
		args = append(args, filter.Brand)
	}
	if filter.Material != "" {
		conds = append(conds, "p.material = ? COLLATE NOCASE")
		args = append(args, filter.Material)
	}
	if filter.Intent != "" {
		conds = append(conds, "p.intent = ? COLLATE NOCASE")
		args = append(args, filter.Intent)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		conds = append(conds, "(p.id LIKE ? OR p.name LIKE ? OR p.brand LIKE ? OR p.material LIKE ? OR p.tags LIKE ?)")
		like := "%" + q + "%"
		args = append(args, like, like, like, like, like)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += orderClause(filter.Sort)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// Stats returns a count of indexed profiles grouped by kind.
func (s *Store) Stats(ctx context.Context) (map[profile.Kind]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(1) FROM profiles GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[profile.Kind]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		stats[profile.Kind(kind)] = count
	}
	return stats, rows.Err()
}

// AddFavorite marks a profile as a favorite. The profile must be indexed.
func (s *Store) AddFavorite(ctx context.Context, kind profile.Kind, id string) error {
	entry, err := s.Get(ctx, kind, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("profile %s/%s: %w", kind, id, profile.ErrNotFound)
	}
	_, err = s.db.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO favorites (kind, id, added_at) VALUES (?, ?, ?)`,
		string(kind), id, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite clears the favorite flag. Removing a non-favorite is not an
// error.
func (s *Store) RemoveFavorite(ctx context.Context, kind profile.Kind, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE kind = ? AND id = ?`, string(kind), id)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

const entryColumns = `p.kind, p.id, p.name, p.brand, p.material, p.intent, p.tags, p.path, p.indexed_at,
    EXISTS (SELECT 1 FROM favorites fav WHERE fav.kind = p.kind AND fav.id = p.id)`

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		kind      string
		entry     Entry
		tagsRaw   string
		indexedAt string
		favorite  int
	)
	if err := scanner.Scan(
		&kind,
		&entry.ID,
		&entry.Name,
		&entry.Brand,
		&entry.Material,
		&entry.Intent,
		&tagsRaw,
		&entry.Path,
		&indexedAt,
		&favorite,
	); err != nil {
		return nil, err
	}
	entry.Kind = profile.Kind(kind)
	entry.Tags = splitTags(tagsRaw)
	entry.Favorite = favorite != 0
	if t, err := time.Parse(time.RFC3339Nano, indexedAt); err == nil {
		entry.IndexedAt = t
	}
	return &entry, nil
}

func orderClause(sort string) string {
	switch sort {
	case SortName:
		return " ORDER BY p.name COLLATE NOCASE, p.kind, p.id"
	case SortBrand:
		return " ORDER BY p.brand COLLATE NOCASE, p.id"
	case SortIndexed:
		return " ORDER BY p.indexed_at DESC, p.kind, p.id"
	default:
		return " ORDER BY p.kind, p.id"
	}
}
