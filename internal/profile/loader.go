package profile

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Library reads profile documents from a library directory laid out as
// <root>/<kind>/<brand>/<name>.json. Malformed documents are skipped with a
// logged warning; the remaining valid profiles still load.
type Library struct {
	root   string
	logger *slog.Logger
}

// NewLibrary creates a loader rooted at dir.
func NewLibrary(dir string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Library{root: dir, logger: logger}
}

// Root returns the library root directory.
func (l *Library) Root() string {
	return l.root
}

// LoadFile reads and decodes a single profile document.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// LoadAll walks every kind subdirectory and returns the valid documents,
// sorted by kind then id.
func (l *Library) LoadAll() ([]*Document, error) {
	var docs []*Document
	for _, kind := range Kinds() {
		kindDocs, err := l.LoadKind(kind)
		if err != nil {
			return nil, err
		}
		docs = append(docs, kindDocs...)
	}
	return docs, nil
}

// LoadKind loads all documents of one kind. A missing kind directory is not
// an error; it simply yields no documents.
func (l *Library) LoadKind(kind Kind) ([]*Document, error) {
	dir := filepath.Join(l.root, string(kind))
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}

	var docs []*Document
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			return nil
		}
		doc, err := LoadFile(path)
		if err != nil {
			l.logger.Warn("skipping profile", "path", path, "error", err)
			return nil
		}
		if doc.Kind != kind {
			l.logger.Warn("profile schema does not match directory",
				"path", path, "schema", doc.Kind, "directory", kind)
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID() < docs[j].ID() })
	return docs, nil
}

// Find loads the document with the given kind and id.
func (l *Library) Find(kind Kind, id string) (*Document, error) {
	docs, err := l.LoadKind(kind)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if doc.ID() == id {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, kind, id)
}
