package splice

import (
	"github.com/npillmayer/treesplice"
	"github.com/npillmayer/treesplice/bank"
	"github.com/npillmayer/treesplice/nodetypes"
)

// Splicer is the central mutation algorithm of spec.md §4.3: given an
// input's bytes and its pre-parsed tree, it composes one or more splice and
// deletion edits into a new byte sequence, periodically re-rendering and
// re-parsing so later edits in the same call operate on accurate node ids.
//
// A Splicer only ever reads its Bank; fragments are added exclusively by
// corpusfeed, never by the Splicer itself (spec.md §5, "Shared resources").
type Splicer struct {
	registry *nodetypes.Registry
	bank     *bank.Bank
	parser   treesplice.Parser
	renderer treesplice.Renderer
	config   *Config
}

// NewSplicer builds a Splicer over the given Node-Type Registry, Fragment
// Bank, and Parser/Renderer collaborators, configured by config.
func NewSplicer(registry *nodetypes.Registry, bnk *bank.Bank, parser treesplice.Parser, renderer treesplice.Renderer, config *Config) *Splicer {
	return &Splicer{registry: registry, bank: bnk, parser: parser, renderer: renderer, config: config}
}

// allNodes returns every node of tree, root included, in breadth-first
// order. The result is an ordered slice rather than a set: iterating a Go
// map or a hash-based set in "traversal order" is not reproducible across
// runs, which would silently violate the Determinism property of
// spec.md §8 property 2 even though the property only speaks of the
// *output*, not internal order — a set-based traversal combined with a
// seeded index pick would still make pickNode's choice depend on
// process-specific hash iteration, not just the seed.
func allNodes(tree treesplice.Tree) []treesplice.Node {
	root := tree.Root()
	nodes := []treesplice.Node{root}
	queue := []treesplice.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for i := 0; i < n.ChildCount(); i++ {
			child := n.Child(i)
			nodes = append(nodes, child)
			queue = append(queue, child)
		}
	}
	return nodes
}

// deleteOne implements spec.md §4.3.1 "Delete-one".
func (s *Splicer) deleteOne(tree treesplice.Tree) (treesplice.NodeID, []byte, int) {
	nodes := allNodes(tree)
	var chosen treesplice.Node
	if s.config.Rand.Intn(100) < s.config.Chaos {
		chosen = nodes[s.config.Rand.Intn(len(nodes))]
	} else {
		var optional []treesplice.Node
		for _, n := range nodes {
			if s.registry.OptionalNode(n) {
				optional = append(optional, n)
			}
		}
		if len(optional) > 0 {
			chosen = optional[s.config.Rand.Intn(len(optional))]
		} else {
			chosen = nodes[s.config.Rand.Intn(len(nodes))]
		}
	}
	delta := -int(chosen.End() - chosen.Start())
	return chosen.ID(), []byte{}, delta
}

// spliceOne implements spec.md §4.3.1 "Splice-one". The bool result is
// false only on CandidateExhaustion with an entirely empty Bank — there is
// then no fragment of any kind to draw from, even in chaotic mode, and the
// caller must treat this edit as skipped.
func (s *Splicer) spliceOne(tree treesplice.Tree, text []byte) (treesplice.NodeID, []byte, int, bool) {
	nodes := allNodes(tree)
	var node treesplice.Node
	var kind string
	found := false
	for attempt := 0; attempt < candidateRetryLimit; attempt++ {
		n := nodes[s.config.Rand.Intn(len(nodes))]
		k := n.Kind()
		if s.config.Rand.Intn(100) < s.config.Chaos {
			rk, ok := s.bank.RandomKind(s.config.Rand)
			if ok {
				k = rk
			}
		}
		if s.bank.Count(k) > 1 {
			node, kind, found = n, k, true
			break
		}
	}
	if !found {
		// CandidateExhaustion (spec.md §7): promote to chaotic mode
		// unconditionally rather than giving up on the whole edit. Scan the
		// kinds-seen index for the first still-usable kind (>=2 fragments)
		// before falling back to any kind at all.
		n := nodes[s.config.Rand.Intn(len(nodes))]
		k, ok := s.bank.FirstUsableKind(func(kind string) bool { return s.bank.Count(kind) > 1 })
		if !ok {
			k, ok = s.bank.RandomKind(s.config.Rand)
			if !ok {
				return 0, nil, 0, false // Bank is entirely empty; nothing to draw from.
			}
		}
		node, kind = n, k
	}
	candidate, ok := s.bank.RandomFragment(s.config.Rand, kind)
	if !ok {
		return 0, nil, 0, false
	}
	original := nodeText(node, text)
	if s.bank.Count(kind) > 1 {
		for attempt := 0; attempt < candidateRetryLimit && string(candidate) == string(original); attempt++ {
			candidate, _ = s.bank.RandomFragment(s.config.Rand, kind)
		}
	}
	delta := len(candidate) - int(node.End()-node.Start())
	return node.ID(), candidate, delta, true
}

func nodeText(n treesplice.Node, text []byte) []byte {
	if int(n.End()) > len(text) || n.Start() > n.End() {
		return nil
	}
	return text[n.Start():n.End()]
}

// chooseEdit rolls the deletions% coin and dispatches to deleteOne or
// spliceOne. The bool result mirrors spliceOne's: false only when the Bank
// cannot supply any fragment at all.
func (s *Splicer) chooseEdit(tree treesplice.Tree, text []byte) (treesplice.NodeID, []byte, int, bool) {
	if s.config.Rand.Intn(100) < s.config.Deletions {
		id, bytes, delta := s.deleteOne(tree)
		return id, bytes, delta, true
	}
	return s.spliceOne(tree, text)
}

// Splice implements spec.md §4.3.2: composes 1 to InterSplices-1 edits against
// text0/tree0 into a single mutated byte buffer. The bool result reports
// whether any edit was produced; a false result ("nothing to do") happens
// when InterSplices <= 1, when the Bank can never supply a fragment, or
// when an intermediate render/reparse fails.
func (s *Splicer) Splice(text0 []byte, tree0 treesplice.Tree) ([]byte, bool) {
	if s.config.InterSplices <= 1 {
		return nil, false
	}
	splices := 1 + s.config.Rand.Intn(s.config.InterSplices-1)
	text := append([]byte(nil), text0...)
	tree := tree0
	edits := map[treesplice.NodeID][]byte{}
	sz := len(text0)
	produced := false

	for i := 0; i < splices; i++ {
		id, editBytes, delta, ok := s.chooseEdit(tree, text)
		if !ok {
			break
		}
		sz += delta
		sizedOut := sz >= s.config.MaxSize
		edits[id] = editBytes
		produced = true
		last := i == splices-1

		if (s.config.Reparse > 0 && i%s.config.Reparse == 0) || last || sizedOut {
			rendered, err := s.renderer.Render(tree, text, edits)
			if err != nil {
				tracer().Debugf("splice: render failed, aborting call: %v", err)
				return nil, false
			}
			text = rendered
			edits = map[treesplice.NodeID][]byte{}
			if !last && !sizedOut {
				newTree, err := s.parser.Parse(text)
				if err != nil {
					tracer().Debugf("splice: intermediate reparse failed, aborting call: %v", err)
					return nil, false
				}
				tree = newTree
			}
			// The final flush skips the reparse: nothing downstream in
			// this call needs the tree again, and the next mutation call
			// reparses its own input from scratch regardless.
		}
		if sizedOut {
			break
		}
	}

	if len(edits) > 0 {
		rendered, err := s.renderer.Render(tree, text, edits)
		if err != nil {
			tracer().Debugf("splice: final render failed, aborting call: %v", err)
			return nil, false
		}
		text = rendered
	}

	if !produced {
		return nil, false
	}
	return text, true
}
