package treesplice

// --- Parse trees ------------------------------------------------------

// NodeID is a stable integer identifying a Node within one Tree instance.
// Ids are not meaningful across different Tree instances, even for trees
// parsed from identical bytes.
type NodeID uint64

// Node is a single node of a parsed tree, as produced by a Parser. Node
// implementations are read-only and are valid only for the lifetime of the
// Tree that produced them.
type Node interface {
	// ID is a stable identifier for this node, unique within its Tree.
	ID() NodeID
	// Kind is the grammar-assigned label of this node (e.g. "object").
	Kind() string
	// Start and End delimit the byte range this node spans in the
	// document its Tree was parsed from.
	Start() uint32
	End() uint32
	// ChildCount and Child give ordered access to this node's children.
	ChildCount() int
	Child(i int) Node
	// Parent returns this node's parent, or nil for the root.
	Parent() Node
	// FieldName returns the grammar field name under which this node is
	// referenced by its parent, or "" if it occupies an anonymous,
	// purely positional child slot.
	FieldName() string
}

// Tree is a parsed, read-only syntax tree over some byte buffer.
type Tree interface {
	Root() Node
}

// Parser is the syntax-parser collaborator (spec.md §6): given bytes, it
// produces a Tree or an error. Implementations differ in tolerance:
// tsadapter's Parser returns a tree (possibly containing error nodes) for
// malformed input, while internal/minijson's Parser rejects any input
// outside its grammar with ErrParseFailure.
type Parser interface {
	Parse(data []byte) (Tree, error)
}

// Renderer is the tree-rendering collaborator (spec.md §4.3.2): given a
// tree, the bytes it was parsed from, and a set of per-node replacement
// edits, it emits a new byte buffer in which every edited node's range has
// been replaced by its mapped bytes, with every other byte range preserved
// verbatim. Where edits overlap (an edit to a node and an edit to one of
// its ancestors), the outermost edit wins.
type Renderer interface {
	Render(tree Tree, base []byte, edits map[NodeID][]byte) ([]byte, error)
}
