package cli

import (
	"github.com/spf13/cobra"
)

// newReadCommand creates the read command.
func newReadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read <dir> <event-file>",
		Short: "Print a single event file",
		Long: `Print the exact bytes of one pending event file. The filename must be
bare; a path separator or ".." is rejected before any file is touched.`,
		Args: exactArgs(2, "read <dir> <event-file>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBus(args[0])
			if err != nil {
				return err
			}
			data, err := b.Read(args[1])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
