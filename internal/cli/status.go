package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/filebus/internal/bus"
	"github.com/roach88/filebus/internal/event"
)

// newStatusCommand creates the status command.
func newStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <dir>",
		Short: "Summarise the queue",
		Long: `Print pending counts by priority, the oldest pending timestamp, the size
of processed/, and a stale-event warning when an ack-timeout is
configured. Status never mutates the queue.`,
		Args: exactArgs(1, "status <dir>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBus(args[0])
			if err != nil {
				return err
			}
			st, err := b.Status()
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), st)
			return nil
		},
	}
}

// renderStatus prints the status block:
//
//	Pending: 3 total (critical=1, high=1, normal=1, low=0)
//	Oldest pending: 2026-08-30T10:15:00Z
//	Processed: 12 events (4.2 KB)
//	WARNING: 2 stale events (unacked > 300s)
func renderStatus(w io.Writer, st bus.Status) {
	fmt.Fprintf(w, "Pending: %d total", st.Pending)
	if st.Pending > 0 {
		fmt.Fprintf(w, " (critical=%d, high=%d, normal=%d, low=%d)",
			st.ByPriority[event.PriorityCritical],
			st.ByPriority[event.PriorityHigh],
			st.ByPriority[event.PriorityNormal],
			st.ByPriority[event.PriorityLow])
	}
	fmt.Fprintln(w)

	if !st.OldestPending.IsZero() {
		fmt.Fprintf(w, "Oldest pending: %s\n", st.OldestPending.UTC().Format("2006-01-02T15:04:05Z"))
	}

	fmt.Fprintf(w, "Processed: %d events (%.1f KB)\n", st.ProcessedCount, kb(st.ProcessedBytes))

	if st.Stale > 0 {
		fmt.Fprintf(w, "WARNING: %d stale event%s (unacked > %ds)\n",
			st.Stale, plural(st.Stale), int64(st.AckTimeout.Seconds()))
	}
}
