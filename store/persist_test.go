package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treesplice/bank"
	"github.com/npillmayer/treesplice/internal/minijson"
)

func TestPersistLoadRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treesplice.store")
	defer teardown()

	b := bank.NewBank()
	tree, err := minijson.NewParser().Parse([]byte(`[1,2,"x"]`))
	if err != nil {
		t.Fatal(err)
	}
	b.AddTree(tree, []byte(`[1,2,"x"]`))

	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")
	if err := Persist(path, b); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	restored, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	before, after := b.Stats(), restored.Stats()
	if before.Total != after.Total || before.Kinds != after.Kinds {
		t.Errorf("round trip changed Stats: before=%+v after=%+v", before, after)
	}
}

func TestLoadRejectsCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")
	if err := Persist(path, bank.NewBank()); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	tampered := append(data, '}')
	if err := os.WriteFile(path, tampered, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load must reject a tampered snapshot")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nonexistent.json")); err == nil {
		t.Fatal("Load must error on a missing file")
	}
}
