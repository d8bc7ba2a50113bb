/*
Package tsadapter is the real-world Parser/Renderer collaborator pair
(spec.md §6), built on an embedded tree-sitter parser via
github.com/smacker/go-tree-sitter. It materializes a tree-sitter parse
tree into the fully Go-owned, sequentially-id'd form treesplice.Tree/Node
describe, walking the tree-sitter cursor exactly once per parse rather
than retaining tree-sitter's own node handles — simpler and independent
of tree-sitter's own (C-backed) node identity scheme.

tsadapter is grammar-agnostic: callers supply the *sitter.Language for
their target grammar (any of the language bindings tree-sitter ships, or
a custom one) along with that grammar's node-types.json description for
nodetypes.New. This package never assumes a specific grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tsadapter

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'treesplice.tsadapter'.
func tracer() tracing.Trace {
	return tracing.Select("treesplice.tsadapter")
}
