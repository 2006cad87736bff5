package profile_test

import (
	"errors"
	"testing"

	"op3d/internal/profile"
	"op3d/internal/testsupport"
)

func TestLibraryLoadAll(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedLibrary(t, root)

	library := profile.NewLibrary(root, nil)
	docs, err := library.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for _, doc := range docs {
		if doc.Path == "" {
			t.Fatalf("document %s has no source path", doc.ID())
		}
	}
}

func TestLibrarySkipsMalformedFiles(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedLibrary(t, root)
	testsupport.WriteProfile(t, root, profile.KindFilament, "broken.json", "{not json")

	library := profile.NewLibrary(root, nil)
	docs, err := library.LoadKind(profile.KindFilament)
	if err != nil {
		t.Fatalf("LoadKind: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected malformed file to be skipped, got %d documents", len(docs))
	}
}

func TestLibrarySkipsMisplacedKinds(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteProfile(t, root, profile.KindFilament, "actually-a-printer.json", testsupport.PrinterJSON)

	library := profile.NewLibrary(root, nil)
	docs, err := library.LoadKind(profile.KindFilament)
	if err != nil {
		t.Fatalf("LoadKind: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected misplaced profile to be skipped, got %d documents", len(docs))
	}
}

func TestLibraryMissingKindDirectoryIsEmpty(t *testing.T) {
	library := profile.NewLibrary(t.TempDir(), nil)
	docs, err := library.LoadKind(profile.KindProcess)
	if err != nil {
		t.Fatalf("LoadKind: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}

func TestLibraryFind(t *testing.T) {
	root := t.TempDir()
	testsupport.SeedLibrary(t, root)

	library := profile.NewLibrary(root, nil)
	doc, err := library.Find(profile.KindPrinter, "Prusa/MK4")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if doc.Printer.Model != "MK4" {
		t.Fatalf("unexpected model %q", doc.Printer.Model)
	}

	if _, err := library.Find(profile.KindPrinter, "Prusa/MK3S"); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
