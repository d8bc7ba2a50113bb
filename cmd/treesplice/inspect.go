package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/npillmayer/treesplice/store"
)

// newInspectCmd builds an interactive REPL over a persisted Fragment Bank
// snapshot, in the spirit of terex/terexlang/trepl's T.REPL: a small
// readline-driven command loop for ad hoc exploration rather than a
// scripted report.
func newInspectCmd() *cobra.Command {
	var snapshot string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Open an interactive REPL over a persisted Fragment Bank snapshot.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspectREPL(snapshot)
		},
	}
	cmd.Flags().StringVar(&snapshot, "bank-snapshot", "", "path to a bank snapshot written by `treesplice run --bank-snapshot`")
	cmd.MarkFlagRequired("bank-snapshot")
	return cmd
}

func runInspectREPL(snapshotPath string) error {
	b, err := store.Load(snapshotPath)
	if err != nil {
		return fmt.Errorf("loading bank snapshot: %w", err)
	}
	pterm.Info.Printfln("inspect: loaded %s (%d kinds, %d fragments)", snapshotPath, b.Stats().Kinds, b.Stats().Total)

	rl, err := readline.New("treesplice> ")
	if err != nil {
		return fmt.Errorf("starting REPL: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on ^D, readline.ErrInterrupt on ^C
			if err != io.EOF {
				tracer().Infof("inspect: REPL exiting: %v", err)
			}
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "stats":
			stats := b.Stats()
			kinds := make([]string, 0, len(stats.PerKind))
			for k := range stats.PerKind {
				kinds = append(kinds, k)
			}
			slices.Sort(kinds)
			for _, k := range kinds {
				pterm.Println(fmt.Sprintf("  %-24s %d", k, stats.PerKind[k]))
			}
			pterm.Println(fmt.Sprintf("total: %d fragments across %d kinds", stats.Total, stats.Kinds))
		case "has":
			if len(fields) != 2 {
				pterm.Warning.Println("usage: has <kind>")
				continue
			}
			pterm.Println(fmt.Sprintf("%v", b.Has(fields[1])))
		case "count":
			if len(fields) != 2 {
				pterm.Warning.Println("usage: count <kind>")
				continue
			}
			pterm.Println(fmt.Sprintf("%d", b.Count(fields[1])))
		case "quit", "exit":
			return nil
		case "help":
			pterm.Println("commands: stats, has <kind>, count <kind>, quit")
		default:
			pterm.Warning.Printfln("unknown command %q (try \"help\")", fields[0])
		}
	}
}
