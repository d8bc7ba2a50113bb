package mutstage

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treesplice/bank"
	"github.com/npillmayer/treesplice/internal/minijson"
	"github.com/npillmayer/treesplice/nodetypes"
	"github.com/npillmayer/treesplice/splice"
)

func buildSplicer(t *testing.T, b *bank.Bank, opts ...splice.Option) *splice.Splicer {
	t.Helper()
	reg, err := nodetypes.New([]byte(minijson.NodeTypes))
	if err != nil {
		t.Fatalf("nodetypes.New: %v", err)
	}
	cfg := splice.NewConfig(rand.New(rand.NewSource(1)), opts...)
	return splice.NewSplicer(reg, b, minijson.NewParser(), minijson.NewRenderer(), cfg)
}

func TestMutateSkipsUnparseableInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treesplice.mutstage")
	defer teardown()
	m := NewMutator(minijson.NewParser(), buildSplicer(t, bank.NewBank()))
	out, res := m.Mutate([]byte(`{{{not json`))
	if res != Skipped {
		t.Fatalf("Mutate on unparseable input = %v, want Skipped", res)
	}
	if string(out) != "{{{not json" {
		t.Error("Mutate must return the original bytes unchanged on Skipped")
	}
}

func TestMutateSkipsWhenInterSplicesTooSmall(t *testing.T) {
	m := NewMutator(minijson.NewParser(), buildSplicer(t, bank.NewBank(), splice.WithInterSplices(1)))
	_, res := m.Mutate([]byte(`{}`))
	if res != Skipped {
		t.Fatalf("Mutate with InterSplices<=1 = %v, want Skipped", res)
	}
}

func TestMutateProducesOutput(t *testing.T) {
	b := bank.NewBank()
	t1, err := minijson.NewParser().Parse([]byte(`[1]`))
	if err != nil {
		t.Fatal(err)
	}
	b.AddTree(t1, []byte(`[1]`))
	t2, err := minijson.NewParser().Parse([]byte(`[2]`))
	if err != nil {
		t.Fatal(err)
	}
	b.AddTree(t2, []byte(`[2]`))

	m := NewMutator(minijson.NewParser(), buildSplicer(t, b,
		splice.WithChaos(0), splice.WithDeletions(0), splice.WithInterSplices(2), splice.WithReparse(8)))
	out, res := m.Mutate([]byte(`[1]`))
	if res != Mutated {
		t.Fatalf("Mutate = %v, want Mutated", res)
	}
	if string(out) != "[2]" {
		t.Errorf("Mutate output = %q, want \"[2]\"", out)
	}
}

func TestResultString(t *testing.T) {
	if Skipped.String() != "Skipped" || Mutated.String() != "Mutated" {
		t.Fatal("Result.String() must name Skipped/Mutated")
	}
}
