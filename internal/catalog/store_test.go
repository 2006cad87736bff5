package catalog_test

import (
	"context"
	"errors"
	"testing"

	"op3d/internal/catalog"
	"op3d/internal/config"
	"op3d/internal/profile"
	"op3d/internal/testsupport"
)

func openStore(t *testing.T) (*catalog.Store, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, cfg
}

func seedEntries(t *testing.T, store *catalog.Store) {
	t.Helper()
	entries := []catalog.Entry{
		{Kind: profile.KindFilament, ID: "Prusament/PLA-Galaxy-Black", Name: "PLA Galaxy Black", Brand: "Prusament", Material: "PLA", Tags: []string{"pla", "black"}, Path: "filament/pla.json"},
		{Kind: profile.KindFilament, ID: "Polymaker/PolyLite-ASA", Name: "PolyLite ASA", Brand: "Polymaker", Material: "ASA", Path: "filament/asa.json"},
		{Kind: profile.KindPrinter, ID: "Prusa/MK4", Name: "Prusa MK4", Brand: "Prusa", Path: "printer/mk4.json"},
		{Kind: profile.KindProcess, ID: "Standard/0.2mm-Quality", Name: "0.2mm Quality", Intent: "standard", Path: "process/quality.json"},
	}
	if err := store.Replace(context.Background(), entries); err != nil {
		t.Fatalf("replace entries: %v", err)
	}
}

func TestStoreReplaceAndList(t *testing.T) {
	store, _ := openStore(t)
	seedEntries(t, store)

	entries, err := store.List(context.Background(), catalog.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	// Default order is kind then id; filament sorts before printer.
	if entries[0].Kind != profile.KindFilament || entries[0].ID != "Polymaker/PolyLite-ASA" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].IndexedAt.IsZero() {
		t.Fatal("expected indexed_at to be stamped")
	}

	// Replacing again drops the old rows.
	if err := store.Replace(context.Background(), nil); err != nil {
		t.Fatalf("replace with empty set: %v", err)
	}
	entries, err = store.List(context.Background(), catalog.Filter{})
	if err != nil {
		t.Fatalf("List after clear: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty index, got %d entries", len(entries))
	}
}

func TestStoreListFilters(t *testing.T) {
	store, _ := openStore(t)
	seedEntries(t, store)
	ctx := context.Background()

	byKind, err := store.List(ctx, catalog.Filter{Kind: profile.KindFilament})
	if err != nil {
		t.Fatalf("List by kind: %v", err)
	}
	if len(byKind) != 2 {
		t.Fatalf("expected 2 filaments, got %d", len(byKind))
	}

	byBrand, err := store.List(ctx, catalog.Filter{Brand: "prusament"})
	if err != nil {
		t.Fatalf("List by brand: %v", err)
	}
	if len(byBrand) != 1 || byBrand[0].ID != "Prusament/PLA-Galaxy-Black" {
		t.Fatalf("case-insensitive brand filter failed: %+v", byBrand)
	}

	byMaterial, err := store.List(ctx, catalog.Filter{Material: "asa"})
	if err != nil {
		t.Fatalf("List by material: %v", err)
	}
	if len(byMaterial) != 1 || byMaterial[0].Brand != "Polymaker" {
		t.Fatalf("material filter failed: %+v", byMaterial)
	}

	byQuery, err := store.List(ctx, catalog.Filter{Query: "Galaxy"})
	if err != nil {
		t.Fatalf("List by query: %v", err)
	}
	if len(byQuery) != 1 {
		t.Fatalf("query search failed: %+v", byQuery)
	}

	byIntent, err := store.List(ctx, catalog.Filter{Intent: "standard"})
	if err != nil {
		t.Fatalf("List by intent: %v", err)
	}
	if len(byIntent) != 1 || byIntent[0].Kind != profile.KindProcess {
		t.Fatalf("intent filter failed: %+v", byIntent)
	}
}

func TestStoreGet(t *testing.T) {
	store, _ := openStore(t)
	seedEntries(t, store)
	ctx := context.Background()

	entry, err := store.Get(ctx, profile.KindPrinter, "Prusa/MK4")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry == nil || entry.Name != "Prusa MK4" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	missing, err := store.Get(ctx, profile.KindPrinter, "Prusa/MK3S")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing entry, got %+v", missing)
	}
}

func TestStoreTagsRoundTrip(t *testing.T) {
	store, _ := openStore(t)
	seedEntries(t, store)

	entry, err := store.Get(context.Background(), profile.KindFilament, "Prusament/PLA-Galaxy-Black")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(entry.Tags) != 2 || entry.Tags[0] != "pla" || entry.Tags[1] != "black" {
		t.Fatalf("tags did not round trip: %v", entry.Tags)
	}
}

func TestStoreFavorites(t *testing.T) {
	store, _ := openStore(t)
	seedEntries(t, store)
	ctx := context.Background()

	if err := store.AddFavorite(ctx, profile.KindPrinter, "Prusa/MK4"); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	// Adding twice is idempotent.
	if err := store.AddFavorite(ctx, profile.KindPrinter, "Prusa/MK4"); err != nil {
		t.Fatalf("AddFavorite twice: %v", err)
	}

	err := store.AddFavorite(ctx, profile.KindPrinter, "Prusa/Nonexistent")
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unindexed profile, got %v", err)
	}

	favorites, err := store.List(ctx, catalog.Filter{FavoritesOnly: true})
	if err != nil {
		t.Fatalf("List favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].ID != "Prusa/MK4" || !favorites[0].Favorite {
		t.Fatalf("unexpected favorites: %+v", favorites)
	}

	// Favorites survive a reindex.
	seedEntries(t, store)
	favorites, err = store.List(ctx, catalog.Filter{FavoritesOnly: true})
	if err != nil {
		t.Fatalf("List favorites after reindex: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("favorite lost on reindex: %+v", favorites)
	}

	removed, err := store.RemoveFavorite(ctx, profile.KindPrinter, "Prusa/MK4")
	if err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	if !removed {
		t.Fatal("expected removal to report true")
	}
	removed, err = store.RemoveFavorite(ctx, profile.KindPrinter, "Prusa/MK4")
	if err != nil {
		t.Fatalf("RemoveFavorite twice: %v", err)
	}
	if removed {
		t.Fatal("expected second removal to report false")
	}
}

func TestStoreStats(t *testing.T) {
	store, _ := openStore(t)
	seedEntries(t, store)

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats[profile.KindFilament] != 2 || stats[profile.KindPrinter] != 1 || stats[profile.KindProcess] != 1 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}
