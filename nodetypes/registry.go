package nodetypes

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/treesplice"
)

// slot describes one child position of a node type: whether the grammar
// allows it to be absent ("required" in tree-sitter's own node-types.json
// vocabulary — we store the inverse, since our callers only ever ask
// "is this optional?").
type slot struct {
	optional bool
}

// descriptor is everything the Registry retains about one node kind: which
// of its named fields exist and whether each is optional, plus whether it
// has an anonymous/positional children slot and whether that slot is
// optional.
type descriptor struct {
	fields        map[string]slot
	hasChildren   bool
	childOptional bool
}

// Registry is the Node-Type Registry of spec.md §4.1: an immutable table,
// keyed by grammar node-kind, built once from a static grammar description.
type Registry struct {
	table map[string]descriptor
}

// rawSlot mirrors one "fields"/"children" entry of a tree-sitter
// node-types.json document.
type rawSlot struct {
	Multiple bool `json:"multiple"`
	Required bool `json:"required"`
	Types    []struct {
		Type  string `json:"type"`
		Named bool   `json:"named"`
	} `json:"types"`
}

// rawNodeType mirrors one top-level entry of a node-types.json document.
type rawNodeType struct {
	Type     string            `json:"type"`
	Named    bool              `json:"named"`
	Fields   map[string]rawSlot `json:"fields"`
	Children *rawSlot          `json:"children"`
}

// New parses a node-types.json-shaped grammar description into a Registry.
// Construction fails with treesplice.ErrInvalidGrammar if description
// cannot be parsed as the expected schema.
func New(description []byte) (*Registry, error) {
	var raw []rawNodeType
	if err := json.Unmarshal(description, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", treesplice.ErrInvalidGrammar, err)
	}
	table := make(map[string]descriptor, len(raw))
	for _, rnt := range raw {
		if rnt.Type == "" {
			return nil, fmt.Errorf("%w: node type with empty \"type\"", treesplice.ErrInvalidGrammar)
		}
		d := descriptor{fields: make(map[string]slot, len(rnt.Fields))}
		for name, rs := range rnt.Fields {
			d.fields[name] = slot{optional: !rs.Required}
		}
		if rnt.Children != nil {
			d.hasChildren = true
			d.childOptional = !rnt.Children.Required
		}
		table[rnt.Type] = d
	}
	tracer().Debugf("node-type registry: %d kinds", len(table))
	return &Registry{table: table}, nil
}

// Optional reports whether a child occupying the named field of parentKind
// (or, if fieldName is "", the anonymous/positional children slot of
// parentKind) may legally be absent. Unknown parent kinds — including a
// kind never present in the grammar description, or one present but with
// no matching field/children entry — conservatively answer false, so that
// callers never delete a node whose grammatical position they don't
// understand.
func (r *Registry) Optional(parentKind, fieldName string) bool {
	d, ok := r.table[parentKind]
	if !ok {
		return false
	}
	if fieldName != "" {
		s, ok := d.fields[fieldName]
		if !ok {
			return false
		}
		return s.optional
	}
	if d.hasChildren {
		return d.childOptional
	}
	return false
}

// OptionalNode is a convenience wrapper over Optional taking a Node
// directly: it reports whether node may legally be removed from its
// parent's child slot. The root node (Parent() == nil) is never optional.
func (r *Registry) OptionalNode(node treesplice.Node) bool {
	parent := node.Parent()
	if parent == nil {
		return false
	}
	return r.Optional(parent.Kind(), node.FieldName())
}
