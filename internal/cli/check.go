package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/filebus/internal/event"
)

// newCheckCommand creates the check command.
func newCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var handle string

	cmd := &cobra.Command{
		Use:   "check <dir>",
		Short: "List pending events, highest priority first",
		Long: `List pending events sorted by priority (critical first), then age
(oldest first). With --handle only events from that source are shown.`,
		Args: exactArgs(1, "check <dir> [--handle=<name>]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBus(args[0])
			if err != nil {
				return err
			}
			events, err := b.Check(handle)
			if err != nil {
				return err
			}
			renderCheck(cmd.OutOrStdout(), events, b.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "only list events from this source")

	return cmd
}

// renderCheck prints one listing line per event:
//
//	[high] 1756500000000000-scribe-checkpoint-4242.event (45s ago)
func renderCheck(w io.Writer, events []event.Event, now time.Time) {
	for _, ev := range events {
		fmt.Fprintf(w, "[%s] %s (%s)\n", ev.Priority, ev.Name, event.FormatAge(now.Sub(ev.Timestamp)))
	}
}
