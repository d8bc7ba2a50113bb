package tsadapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/npillmayer/treesplice"
)

// node is a fully Go-owned parse-tree node: one cursor walk at Parse time
// copies every tree-sitter node's kind, byte range and field name into this
// form and assigns it a sequential NodeID, so node identity never depends
// on tree-sitter's own (cgo-backed) node handles surviving past the parse
// call that produced them.
type node struct {
	id       treesplice.NodeID
	kind     string
	start    uint32
	end      uint32
	field    string
	parent   *node
	children []*node
}

func (n *node) ID() treesplice.NodeID { return n.id }
func (n *node) Kind() string          { return n.kind }
func (n *node) Start() uint32         { return n.start }
func (n *node) End() uint32           { return n.end }
func (n *node) ChildCount() int       { return len(n.children) }
func (n *node) Child(i int) treesplice.Node {
	return n.children[i]
}
func (n *node) FieldName() string { return n.field }
func (n *node) Parent() treesplice.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// tree wraps the materialized root; the underlying *sitter.Tree is closed
// once materialization completes, since nothing downstream touches it.
type tree struct {
	root *node
}

func (t *tree) Root() treesplice.Node { return t.root }

// Parser wraps a tree-sitter grammar (*sitter.Language) as a
// treesplice.Parser.
type Parser struct {
	lang *sitter.Language
}

// NewParser returns a Parser for the given tree-sitter grammar.
func NewParser(lang *sitter.Language) *Parser {
	return &Parser{lang: lang}
}

// Parse implements treesplice.Parser.
func (p *Parser) Parse(data []byte) (treesplice.Tree, error) {
	sp := sitter.NewParser()
	sp.SetLanguage(p.lang)
	tsTree, err := sp.ParseCtx(context.Background(), nil, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", treesplice.ErrParseFailure, err)
	}
	defer tsTree.Close()
	root := tsTree.RootNode()
	if root.HasError() {
		tracer().Debugf("tsadapter: parse of %d bytes produced error nodes, returning tree anyway", len(data))
	}
	counter := treesplice.NodeID(0)
	materialized := materialize(root, nil, "", &counter)
	return &tree{root: materialized}, nil
}

func materialize(tsNode *sitter.Node, parent *node, field string, counter *treesplice.NodeID) *node {
	n := &node{
		id:     *counter,
		kind:   tsNode.Type(),
		start:  tsNode.StartByte(),
		end:    tsNode.EndByte(),
		field:  field,
		parent: parent,
	}
	*counter++
	count := int(tsNode.ChildCount())
	n.children = make([]*node, 0, count)
	for i := 0; i < count; i++ {
		child := tsNode.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		childField := tsNode.FieldNameForChild(i)
		n.children = append(n.children, materialize(child, n, childField, counter))
	}
	return n
}

var _ treesplice.Parser = (*Parser)(nil)
var _ treesplice.Tree = (*tree)(nil)
var _ treesplice.Node = (*node)(nil)
