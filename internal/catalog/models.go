package catalog

import (
	"strings"
	"time"

	"op3d/internal/profile"
)

// Entry is one indexed profile.
type Entry struct {
	Kind      profile.Kind `json:"kind"`
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Brand     string       `json:"brand,omitempty"`
	Material  string       `json:"material,omitempty"`
	Intent    string       `json:"intent,omitempty"`
	Tags      []string     `json:"tags,omitempty"`
	Path      string       `json:"path"`
	IndexedAt time.Time    `json:"indexed_at"`
	Favorite  bool         `json:"favorite"`
}

// EntryFromDocument derives the indexable fields for a loaded profile.
func EntryFromDocument(doc *profile.Document, path string) Entry {
	entry := Entry{
		Kind: doc.Kind,
		ID:   doc.ID(),
		Name: doc.DisplayName(),
		Tags: doc.Meta().Tags,
		Path: path,
	}
	switch doc.Kind {
	case profile.KindFilament:
		entry.Brand = doc.Filament.Brand
		entry.Material = doc.Filament.Material
	case profile.KindPrinter:
		entry.Brand = doc.Printer.Manufacturer
	case profile.KindProcess:
		entry.Intent = doc.Process.Intent
	}
	return entry
}

// Sort orders for List.
const (
	SortID      = "id"
	SortName    = "name"
	SortBrand   = "brand"
	SortIndexed = "indexed"
)

// Filter narrows a List call. Zero values match everything.
type Filter struct {
	Kind          profile.Kind
	Brand         string
	Material      string
	Intent        string
	Query         string
	FavoritesOnly bool
	Sort          string
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
