package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/treesplice/bank"
	"github.com/npillmayer/treesplice/internal/minijson"
	"github.com/npillmayer/treesplice/mutstage"
	"github.com/npillmayer/treesplice/nodetypes"
	"github.com/npillmayer/treesplice/splice"
	"github.com/npillmayer/treesplice/store"
)

type runOptions struct {
	corpusDir    string
	outDir       string
	snapshot     string
	seed         int64
	iterations   int
	chaos        int
	deletions    int
	interSplices int
	reparse      int
	maxSize      int
	brokerPort   int // accepted for operational-surface symmetry with the engine; unused here
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a seed corpus, build a Fragment Bank, and emit mutated candidates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutationLoop(opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.corpusDir, "corpus", "", "seed corpus directory (required)")
	f.StringVar(&opts.outDir, "out", "", "directory to write mutated candidates into (required)")
	f.StringVar(&opts.snapshot, "bank-snapshot", "", "optional path to persist the Fragment Bank after running")
	f.Int64Var(&opts.seed, "seed", 1, "PRNG seed")
	f.IntVar(&opts.iterations, "iterations", 100, "number of mutation calls to perform")
	f.IntVar(&opts.chaos, "chaos", 5, "percent chance an edit ignores kind-compatibility")
	f.IntVar(&opts.deletions, "deletions", 15, "percent chance an edit is a deletion")
	f.IntVar(&opts.interSplices, "inter-splices", 16, "exclusive upper bound on edits composed per call")
	f.IntVar(&opts.reparse, "reparse", 8, "edits between intermediate render+reparse passes")
	f.IntVar(&opts.maxSize, "max-size", 1<<20, "soft byte cap on produced output")
	f.IntVar(&opts.brokerPort, "broker-port", 0, "broker port (reserved for the surrounding engine; unused here)")
	cmd.MarkFlagRequired("corpus")
	cmd.MarkFlagRequired("out")
	return cmd
}

func runMutationLoop(opts *runOptions) error {
	entries, err := os.ReadDir(opts.corpusDir)
	if err != nil {
		return fmt.Errorf("reading corpus dir: %w", err)
	}
	parser := minijson.NewParser()
	renderer := minijson.NewRenderer()
	b := bank.NewBank()

	var corpus [][]byte
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(opts.corpusDir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			tracer().Errorf("run: skipping %s: %v", path, err)
			continue
		}
		tree, err := parser.Parse(data)
		if err != nil {
			tracer().Infof("run: skipping unparseable seed %s: %v", path, err)
			continue
		}
		b.AddTree(tree, data)
		corpus = append(corpus, data)
	}
	if len(corpus) == 0 {
		return fmt.Errorf("no parseable seeds found in %s", opts.corpusDir)
	}
	pterm.Info.Printfln("run: loaded %d seeds, bank holds %d kinds (%d fragments)", len(corpus), b.Stats().Kinds, b.Stats().Total)

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("creating out dir: %w", err)
	}

	reg, err := nodetypes.New([]byte(minijson.NodeTypes))
	if err != nil {
		return fmt.Errorf("building node-type registry: %w", err)
	}
	rng := rand.New(rand.NewSource(opts.seed))
	cfg := splice.NewConfig(rng,
		splice.WithChaos(opts.chaos), splice.WithDeletions(opts.deletions),
		splice.WithInterSplices(opts.interSplices), splice.WithReparse(opts.reparse),
		splice.WithMaxSize(opts.maxSize))
	sp := splice.NewSplicer(reg, b, parser, renderer, cfg)
	mutator := mutstage.NewMutator(parser, sp)

	mutated := 0
	for i := 0; i < opts.iterations; i++ {
		seed := corpus[rng.Intn(len(corpus))]
		out, res := mutator.Mutate(seed)
		if res != mutstage.Mutated {
			continue
		}
		mutated++
		path := filepath.Join(opts.outDir, fmt.Sprintf("candidate-%06d", i))
		if err := os.WriteFile(path, out, 0o644); err != nil {
			tracer().Errorf("run: writing %s: %v", path, err)
		}
	}
	pterm.Success.Printfln("run: %d/%d iterations produced a mutated candidate", mutated, opts.iterations)

	if opts.snapshot != "" {
		if err := store.Persist(opts.snapshot, b); err != nil {
			return fmt.Errorf("persisting bank snapshot: %w", err)
		}
		pterm.Info.Printfln("run: persisted bank snapshot to %s", opts.snapshot)
	}
	return nil
}
