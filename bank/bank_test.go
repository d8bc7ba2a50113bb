package bank

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treesplice"
	"github.com/npillmayer/treesplice/internal/minijson"
)

func mustParse(t *testing.T, src string) (treesplice.Tree, []byte) {
	t.Helper()
	tree, err := minijson.NewParser().Parse([]byte(src))
	if err != nil {
		t.Fatalf("parsing %q: %v", src, err)
	}
	return tree, []byte(src)
}

func TestAddTreeDedup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treesplice.bank")
	defer teardown()
	b := NewBank()
	tree, src := mustParse(t, `[1,2,1]`)
	b.AddTree(tree, src)
	if got := b.Count("number"); got != 2 {
		t.Errorf("Count(number) = %d, want 2 (two distinct texts \"1\" and \"2\")", got)
	}
}

func TestAddTreeMonotonicity(t *testing.T) {
	b := NewBank()
	tree1, src1 := mustParse(t, `[1,2]`)
	b.AddTree(tree1, src1)
	before := b.Count("number")
	tree2, src2 := mustParse(t, `[3]`)
	b.AddTree(tree2, src2)
	after := b.Count("number")
	if after < before {
		t.Fatalf("Count(number) decreased from %d to %d after AddTree", before, after)
	}
	if after != before+1 {
		t.Errorf("Count(number) = %d, want %d (one new distinct fragment \"3\")", after, before+1)
	}
}

func TestAddTreeIdempotent(t *testing.T) {
	b := NewBank()
	tree, src := mustParse(t, `{"a":1,"b":[2,3]}`)
	b.AddTree(tree, src)
	snap := b.Stats()
	b.AddTree(tree, src)
	again := b.Stats()
	if snap.Total != again.Total {
		t.Errorf("re-adding an already-banked tree changed Stats.Total: %d -> %d", snap.Total, again.Total)
	}
}

func TestHasAndPopulate(t *testing.T) {
	b := NewBank()
	if b.Has("number") {
		t.Fatal("empty Bank must report Has == false for any kind")
	}
	tree, src := mustParse(t, `[1]`)
	b.AddTree(tree, src)
	if !b.Has("number") {
		t.Fatal("Bank holding a number fragment must report Has(\"number\") == true")
	}
	if b.Has("string") {
		t.Fatal("Bank never seeing a string must report Has(\"string\") == false")
	}
}

func TestPossibleUpperBound(t *testing.T) {
	b := NewBank()
	if got := b.Possible(); got != 0 {
		t.Fatalf("Possible() on empty Bank = %d, want 0", got)
	}
	tree, src := mustParse(t, `[1,2,3]`)
	b.AddTree(tree, src)
	// three distinct "number" fragments contribute 3-1=2; "array" and
	// "document" each contribute one fragment, contributing 0 each.
	if got := b.Possible(); got != 2 {
		t.Fatalf("Possible() = %d, want 2", got)
	}
}

func TestRandomFragmentDeterministic(t *testing.T) {
	b := NewBank()
	tree, src := mustParse(t, `[1,2,3,4,5]`)
	b.AddTree(tree, src)
	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))
	f1, ok1 := b.RandomFragment(rng1, "number")
	f2, ok2 := b.RandomFragment(rng2, "number")
	if !ok1 || !ok2 {
		t.Fatal("expected a number fragment to be available")
	}
	if string(f1) != string(f2) {
		t.Errorf("same-seed RandomFragment calls diverged: %q vs %q", f1, f2)
	}
}

func TestRandomKindEmptyBank(t *testing.T) {
	b := NewBank()
	if _, ok := b.RandomKind(rand.New(rand.NewSource(1))); ok {
		t.Fatal("empty Bank must report RandomKind ok == false")
	}
}

func TestFirstUsableKind(t *testing.T) {
	b := NewBank()
	tree, src := mustParse(t, `{"k":1}`)
	b.AddTree(tree, src)
	kind, ok := b.FirstUsableKind(func(k string) bool { return k == "number" })
	if !ok || kind != "number" {
		t.Errorf("FirstUsableKind(number predicate) = (%q, %v), want (\"number\", true)", kind, ok)
	}
	if _, ok := b.FirstUsableKind(func(k string) bool { return false }); ok {
		t.Error("FirstUsableKind with an always-false predicate must report ok == false")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	b := NewBank()
	tree, src := mustParse(t, `[1,2,"x"]`)
	b.AddTree(tree, src)
	data, err := b.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var restored Bank
	if err := restored.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	before, after := b.Stats(), restored.Stats()
	if before.Total != after.Total || before.Kinds != after.Kinds {
		t.Errorf("round trip changed Stats: before=%+v after=%+v", before, after)
	}
	rng1 := rand.New(rand.NewSource(7))
	rng2 := rand.New(rand.NewSource(7))
	f1, _ := b.RandomFragment(rng1, "number")
	f2, _ := restored.RandomFragment(rng2, "number")
	if string(f1) != string(f2) {
		t.Errorf("round trip changed fragment ordering: %q vs %q", f1, f2)
	}
}
