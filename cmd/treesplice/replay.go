package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/treesplice/internal/minijson"
)

// newReplayCmd builds the single-file replay utility of spec.md §6: it
// feeds one file's bytes through the target parser for triage, standing in
// for the harness the surrounding engine would otherwise drive. Exit codes
// are this binary's own, not the engine's: 0 on a successful parse, 1 on a
// parse failure, mirroring the guiding policy that only the engine defines
// crash-worthy exit codes.
func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Feed a single file's bytes to the target parser for triage.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			tree, err := minijson.NewParser().Parse(data)
			if err != nil {
				pterm.Error.Printfln("replay: %s failed to parse: %v", args[0], err)
				os.Exit(1)
			}
			pterm.Success.Printfln("replay: %s parsed cleanly, root kind %q, %d bytes", args[0], tree.Root().Kind(), len(data))
			return nil
		},
	}
}
