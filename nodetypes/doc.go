/*
Package nodetypes implements the Node-Type Registry (spec.md §4.1): a
queryable table, built once from a static grammar description, answering
whether a given child slot of a given parent kind is grammatically
optional.

The description format is the same one every tree-sitter grammar ships
as `src/node-types.json`: a JSON array of node-type descriptors, each
carrying an optional `fields` map (named child slots) and an optional
`children` descriptor (anonymous, positional child slots), both of which
may mark `required: false`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package nodetypes

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'treesplice.nodetypes'.
func tracer() tracing.Trace {
	return tracing.Select("treesplice.nodetypes")
}
