package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/filebus/internal/event"
)

// newPublishCommand creates the publish command.
func newPublishCommand(rootOpts *RootOptions) *cobra.Command {
	var dedupWindow int64

	cmd := &cobra.Command{
		Use:   "publish <dir> <source> <type> <priority> [payload]",
		Short: "Write an event file to the queue",
		Long: `Publish an event to the queue atomically (write-temp, rename).

With --dedup-window=N the event is dropped when a pending event with the
same source:type already exists within the last N seconds. A dropped
event is reported on stderr and the command exits with code 5; this is a
suppressed publish, not a failure.

Example:
  filebus publish .nbs/events scribe checkpoint high "20 decisions logged"`,
		Args: rangeArgs(4, 5, "publish <dir> <source> <type> <priority> [payload]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, source, eventType := args[0], args[1], args[2]

			priority, err := event.ParsePriority(args[3])
			if err != nil {
				return &ExitError{Code: ExitBadArgs, Err: err}
			}
			payload := ""
			if len(args) == 5 {
				payload = args[4]
			}
			if dedupWindow < 0 {
				return NewExitError(ExitBadArgs, fmt.Sprintf("invalid --dedup-window value: %d", dedupWindow))
			}

			b, err := openBus(dir)
			if err != nil {
				return err
			}

			window := time.Duration(dedupWindow) * time.Second
			name, deduplicated, err := b.PublishDedup(source, eventType, priority, payload, window)
			if err != nil {
				return err
			}
			if deduplicated {
				fmt.Fprintf(cmd.ErrOrStderr(), "Dedup: event %s:%s dropped (duplicate within window)\n", source, eventType)
				return NewExitError(ExitDeduplicated, "deduplicated")
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.Flags().Int64Var(&dedupWindow, "dedup-window", 0,
		"drop the event if the same source:type was published within N seconds (0 disables)")

	return cmd
}
