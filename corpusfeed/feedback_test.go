package corpusfeed

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treesplice/bank"
	"github.com/npillmayer/treesplice/internal/minijson"
)

func TestIsInterestingAlwaysFalse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treesplice.corpusfeed")
	defer teardown()
	f := NewFeedback(minijson.NewParser(), bank.NewBank())
	if f.IsInteresting([]byte(`{}`)) {
		t.Fatal("IsInteresting must always report false")
	}
}

func TestOnAcceptIngestsFragments(t *testing.T) {
	b := bank.NewBank()
	f := NewFeedback(minijson.NewParser(), b)
	f.OnAccept([]byte(`[1,2,3]`))
	if !b.Has("number") {
		t.Fatal("OnAccept must bank the \"number\" kind reachable from [1,2,3]")
	}
	if got := b.Count("number"); got != 3 {
		t.Errorf("Count(number) = %d, want 3", got)
	}
}

func TestOnAcceptSkipsUnparseableInput(t *testing.T) {
	b := bank.NewBank()
	f := NewFeedback(minijson.NewParser(), b)
	f.OnAccept([]byte(`not json at all {{{`))
	if b.Possible() != 0 {
		t.Fatal("a parse failure must not bank any fragments")
	}
}
