package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newAckCommand creates the ack command.
func newAckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ack <dir> <event-file>",
		Short: "Acknowledge an event (move to processed/)",
		Args:  exactArgs(2, "ack <dir> <event-file>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBus(args[0])
			if err != nil {
				return err
			}
			return b.Ack(args[1])
		},
	}
}

// newAckAllCommand creates the ack-all command.
func newAckAllCommand(rootOpts *RootOptions) *cobra.Command {
	var handle string

	cmd := &cobra.Command{
		Use:   "ack-all <dir>",
		Short: "Acknowledge all pending events",
		Long: `Acknowledge every pending event, optionally filtered by source handle.
The reported count covers successful moves only; events taken by another
consumer mid-run are skipped.`,
		Args: exactArgs(1, "ack-all <dir> [--handle=<name>]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBus(args[0])
			if err != nil {
				return err
			}
			acked, err := b.AckAll(handle)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Acknowledged %d event%s\n", acked, plural(acked))
			return nil
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "only acknowledge events from this source")

	return cmd
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
