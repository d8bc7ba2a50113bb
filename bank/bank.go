package bank

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/npillmayer/treesplice"
)

// fragments is the (ordered sequence, dedup set) pair banked for one node
// kind. seq holds rendered fragment text in insertion order; seen holds the
// same strings for O(1) membership tests.
type fragments struct {
	seq  *arraylist.List
	seen *hashset.Set
}

func newFragments() *fragments {
	return &fragments{seq: arraylist.New(), seen: hashset.New()}
}

func (f *fragments) add(text string) bool {
	if f.seen.Contains(text) {
		return false
	}
	f.seen.Add(text)
	f.seq.Add(text)
	return true
}

// Bank is the Fragment Bank of spec.md §4.2: an append-only table of
// previously-seen subtrees, indexed by node kind. A Bank is not safe for
// concurrent use without external synchronization, matching the teacher's
// convention of leaving locking to the caller (see runtime.ScopeBase).
type Bank struct {
	byKind map[string]*fragments
	kinds  *fragments // the kinds-seen index: an (ordered, deduped) list of kind names
}

// NewBank returns an empty Bank.
func NewBank() *Bank {
	return &Bank{byKind: make(map[string]*fragments), kinds: newFragments()}
}

// NewFromTrees builds a Bank by ingesting every node of each of the given
// trees. A tree whose nodes fall outside source's bounds is skipped node by
// node; this mirrors corpusfeed's policy of silently dropping corpus
// entries the Parser rejects.
func NewFromTrees(trees []struct {
	Tree   treesplice.Tree
	Source []byte
}) *Bank {
	b := NewBank()
	for _, t := range trees {
		b.AddTree(t.Tree, t.Source)
	}
	return b
}

// AddTree walks every node of tree, root included, and banks its
// source-span text under its node kind. A node's rendered form equals
// source[n.Start():n.End()] whenever no edits are pending, so banking reads
// directly from source instead of paying for a full-tree render per node.
func (b *Bank) AddTree(tree treesplice.Tree, source []byte) {
	queue := []treesplice.Node{tree.Root()}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		b.addNode(n, source)
		for i := 0; i < n.ChildCount(); i++ {
			queue = append(queue, n.Child(i))
		}
	}
}

// addNode banks a single node's own byte span (source[n.Start():n.End()]),
// which is exactly what an unedited Renderer would reproduce for a leaf
// copy of that node, without requiring a second full-tree render pass.
func (b *Bank) addNode(n treesplice.Node, source []byte) {
	if int(n.End()) > len(source) || n.Start() > n.End() {
		return
	}
	text := string(source[n.Start():n.End()])
	fr, ok := b.byKind[n.Kind()]
	if !ok {
		fr = newFragments()
		b.byKind[n.Kind()] = fr
	}
	if fr.add(text) {
		b.kinds.add(n.Kind())
		tracer().Debugf("bank: +1 %s (%d total)", n.Kind(), fr.seq.Size())
	}
}

// Has reports whether the Bank holds at least one fragment of kind.
func (b *Bank) Has(kind string) bool {
	fr, ok := b.byKind[kind]
	return ok && fr.seq.Size() > 0
}

// Possible is a diagnostic upper bound on the number of non-identity
// replacements splice could draw: the sum, across every kind, of
// len(sequence(K))−1 (a kind with a single fragment contributes nothing,
// since its one fragment can only replace a same-text node).
func (b *Bank) Possible() int {
	total := 0
	for _, fr := range b.byKind {
		if n := fr.seq.Size(); n > 0 {
			total += n - 1
		}
	}
	return total
}

// Count returns the number of distinct fragments banked under kind.
func (b *Bank) Count(kind string) int {
	fr, ok := b.byKind[kind]
	if !ok {
		return 0
	}
	return fr.seq.Size()
}

// RandomFragment returns a uniformly-random fragment of kind, using rng as
// the source of randomness. The bool result is false if no fragment of that
// kind has ever been banked.
func (b *Bank) RandomFragment(rng *rand.Rand, kind string) ([]byte, bool) {
	fr, ok := b.byKind[kind]
	if !ok || fr.seq.Size() == 0 {
		return nil, false
	}
	idx := rng.Intn(fr.seq.Size())
	v, _ := fr.seq.Get(idx)
	return []byte(v.(string)), true
}

// RandomKind returns a uniformly-random kind among those the Bank has ever
// banked a fragment for ("chaotic mode" node-kind pick of spec.md §5). The
// bool result is false if the Bank is empty.
func (b *Bank) RandomKind(rng *rand.Rand) (string, bool) {
	if b.kinds.seq.Size() == 0 {
		return "", false
	}
	idx := rng.Intn(b.kinds.seq.Size())
	v, _ := b.kinds.seq.Get(idx)
	return v.(string), true
}

// FirstUsableKind scans the kinds-seen index in insertion order and returns
// the first kind satisfying pred. It is used by the bounded fallback scan
// of splice.Splicer when a targeted candidate kind is exhausted. The bool
// result is false if no kind satisfies pred.
func (b *Bank) FirstUsableKind(pred func(kind string) bool) (string, bool) {
	it := b.kinds.seq.Iterator()
	for it.Next() {
		kind := it.Value().(string)
		if pred(kind) {
			return kind, true
		}
	}
	return "", false
}

// Stats is a point-in-time snapshot of Bank occupancy, one entry per kind,
// for CLI/REPL inspection. It is not part of the snapshot store.Persist
// writes. There is no equivalent structured type in the original source,
// which only ever printed bank sizes ad hoc for debugging; Stats gives that
// visibility a stable, queryable shape.
type Stats struct {
	Kinds   int            `json:"kinds"`
	Total   int            `json:"total"`
	PerKind map[string]int `json:"per_kind"`
}

// Stats computes a Stats snapshot of the current Bank contents.
func (b *Bank) Stats() Stats {
	s := Stats{PerKind: make(map[string]int, len(b.byKind))}
	for kind, fr := range b.byKind {
		n := fr.seq.Size()
		s.PerKind[kind] = n
		s.Total += n
	}
	s.Kinds = len(b.byKind)
	return s
}

// snapshot is the JSON-serializable form of a Bank, used by store.Persist.
type snapshot struct {
	PerKind map[string][]string `json:"per_kind"`
}

// MarshalJSON implements json.Marshaler, serializing the Bank as an ordered
// per-kind fragment listing. The kinds-seen index is not persisted
// separately: it is rebuilt from the per-kind map keys on load.
func (b *Bank) MarshalJSON() ([]byte, error) {
	s := snapshot{PerKind: make(map[string][]string, len(b.byKind))}
	for kind, fr := range b.byKind {
		vals := make([]string, 0, fr.seq.Size())
		it := fr.seq.Iterator()
		for it.Next() {
			vals = append(vals, it.Value().(string))
		}
		s.PerKind[kind] = vals
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler, restoring a Bank previously
// written by MarshalJSON. Fragment insertion order within each kind is
// preserved, so replaying a persisted Bank with the same seed reproduces
// the same sequence of RandomFragment picks.
func (b *Bank) UnmarshalJSON(data []byte) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("bank: decoding snapshot: %w", err)
	}
	b.byKind = make(map[string]*fragments, len(s.PerKind))
	b.kinds = newFragments()
	for kind, vals := range s.PerKind {
		fr := newFragments()
		for _, v := range vals {
			fr.add(v)
		}
		b.byKind[kind] = fr
		if fr.seq.Size() > 0 {
			b.kinds.add(kind)
		}
	}
	return nil
}
