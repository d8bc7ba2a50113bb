/*
Package treesplice implements a grammar-aware mutational fuzzer core: a
tree-splicing mutator and its corpus metadata.

Given a parser for some target language and a seed corpus, the Splicer
(package splice) repeatedly produces new candidate inputs by replacing
subtrees of an existing input with equivalently-typed subtrees harvested
from other corpus members. The Fragment Bank (package bank) indexes every
subtree fragment ever observed, keyed by grammar node-kind. The
Node-Type Registry (package nodetypes) classifies which node kinds sit in
grammatically optional positions, so deletions only target removable
nodes.

Package structure:

■ nodetypes: the static, per-target grammar description and its
optional-child predicate.

■ bank: the Fragment Bank and the kinds-seen index.

■ splice: the Splicer, composing multiple splice/deletion edits into one
mutated byte buffer.

■ corpusfeed: a feedback hook that folds newly-accepted corpus entries
back into the Fragment Bank.

■ mutstage: a mutator hook presenting the Splicer to a fuzzing engine.

■ tsadapter: a tree-sitter-backed reference implementation of the
Parser/Renderer external interfaces, for any tree-sitter grammar the
caller supplies.

■ store: persistence of the Fragment Bank across worker restarts.

■ cmd/treesplice: the operational CLI.

The coverage-guided fuzzing engine proper (scheduler, queue, executor,
broker, crash detector) is an external collaborator, reached only
through the narrow interfaces declared in this package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treesplice
