package tsadapter

import (
	"fmt"

	"github.com/npillmayer/treesplice"
)

// Renderer implements treesplice.Renderer for tsadapter trees. The
// algorithm is grammar-agnostic — it only relies on the Node contract
// (kind, byte range, ordered children) — so it is identical in shape to
// internal/minijson's Renderer; the two are kept as separate types because
// they serve different Tree/Node concrete implementations and because
// production code should never import an internal test-support package.
type Renderer struct{}

// NewRenderer returns a tsadapter Renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render implements treesplice.Renderer: an edited node's bytes are taken
// verbatim from edits; an unedited node's bytes are either copied directly
// (leaf) or reassembled from its children plus the source gaps between
// them, so any concrete syntax not represented as a named child node
// (punctuation, whitespace, anonymous tokens) survives untouched. Where two
// edits would otherwise overlap — an edited descendant inside an edited
// ancestor — the ancestor's edit wins, since walk never descends into a
// node once its own edit has been applied.
func (Renderer) Render(t treesplice.Tree, base []byte, edits map[treesplice.NodeID][]byte) ([]byte, error) {
	var out []byte
	var walk func(n treesplice.Node) error
	walk = func(n treesplice.Node) error {
		if repl, ok := edits[n.ID()]; ok {
			out = append(out, repl...)
			return nil
		}
		if n.ChildCount() == 0 {
			if int(n.End()) > len(base) || n.Start() > n.End() {
				return fmt.Errorf("%w: node range out of bounds", treesplice.ErrRenderFailure)
			}
			out = append(out, base[n.Start():n.End()]...)
			return nil
		}
		cursor := n.Start()
		for i := 0; i < n.ChildCount(); i++ {
			child := n.Child(i)
			if child.Start() > cursor && int(child.Start()) <= len(base) {
				out = append(out, base[cursor:child.Start()]...)
			}
			if err := walk(child); err != nil {
				return err
			}
			cursor = child.End()
		}
		if cursor < n.End() && int(n.End()) <= len(base) {
			out = append(out, base[cursor:n.End()]...)
		}
		return nil
	}
	if err := walk(t.Root()); err != nil {
		return nil, err
	}
	return out, nil
}

var _ treesplice.Renderer = Renderer{}
