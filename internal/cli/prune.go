package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/filebus/internal/bus"
)

// newPruneCommand creates the prune command.
func newPruneCommand(rootOpts *RootOptions) *cobra.Command {
	var maxBytes int64

	cmd := &cobra.Command{
		Use:   "prune <dir>",
		Short: "Delete oldest processed events over the size limit",
		Long: `Delete acknowledged events oldest-first once processed/ exceeds the size
limit. The limit comes from --max-bytes, falling back to the directory's
config.yaml (retention-max-bytes, default 16 MiB). Only processed/ is
touched; pending events are never pruned.`,
		Args: exactArgs(1, "prune <dir> [--max-bytes=N]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxBytes < 0 {
				return NewExitError(ExitBadArgs, fmt.Sprintf("invalid --max-bytes value: %d", maxBytes))
			}

			b, err := openBus(args[0])
			if err != nil {
				return err
			}
			return runPrune(b, cmd.OutOrStdout(), maxBytes)
		},
	}

	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 0,
		"size limit for processed/ in bytes (0 uses config.yaml or the 16 MiB default)")

	return cmd
}

// runPrune executes one prune pass, printing the summary. A maxBytes of
// zero falls back to the directory's configured retention budget. When
// deletions failed and processed/ is still over budget the summary is
// printed anyway and a general error carries the failure out.
func runPrune(b *bus.Bus, w io.Writer, maxBytes int64) error {
	limit := maxBytes
	if limit == 0 {
		limit = b.Config().RetentionMaxBytes
	}

	result, err := b.Prune(limit)
	if err != nil {
		return err
	}
	renderPrune(w, result)
	if result.OverBudget() {
		return NewExitError(ExitFailure,
			fmt.Sprintf("processed/ still over budget: %d of %d deletions failed", result.Failed, result.Failed+result.Pruned))
	}
	return nil
}

// renderPrune prints the prune summary.
func renderPrune(w io.Writer, r bus.PruneResult) {
	if r.Pruned == 0 && !r.OverBudget() {
		fmt.Fprintf(w, "Pruned 0 events (%.1f KB / %.1f KB limit)\n", kb(r.RemainingBytes), kb(r.MaxBytes))
		return
	}
	fmt.Fprintf(w, "Pruned %d event%s (%.1f KB remaining, %.1f KB limit)\n",
		r.Pruned, plural(r.Pruned), kb(r.RemainingBytes), kb(r.MaxBytes))
}

func kb(n int64) float64 {
	return float64(n) / 1024.0
}
