package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/filebus/internal/bus"
	"github.com/roach88/filebus/internal/config"
	"github.com/roach88/filebus/internal/store"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the filebus root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "filebus",
		Short: "File-system-backed event queue",
		Long: `filebus coordinates independent processes through a shared directory.

Producers publish typed, prioritized events as individual files; consumers
list, read, and acknowledge them. There is no daemon, no socket, and no
database. Atomic rename is the only synchronization primitive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Bad flag values are an argument error, not a general one.
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: ExitBadArgs, Err: err}
	})

	cmd.AddCommand(newPublishCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newReadCommand(opts))
	cmd.AddCommand(newAckCommand(opts))
	cmd.AddCommand(newAckAllCommand(opts))
	cmd.AddCommand(newPruneCommand(opts))
	cmd.AddCommand(newStatusCommand(opts))

	return cmd
}

// exactArgs is cobra.ExactArgs with the bad-arguments exit code attached.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return NewExitError(ExitBadArgs, fmt.Sprintf("usage: filebus %s", usage))
		}
		return nil
	}
}

// rangeArgs is cobra.RangeArgs with the bad-arguments exit code attached.
func rangeArgs(min, max int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min || len(args) > max {
			return NewExitError(ExitBadArgs, fmt.Sprintf("usage: filebus %s", usage))
		}
		return nil
	}
}

// openBus binds a Bus to the events directory named on the command line,
// loading the directory's config.yaml alongside it.
func openBus(dir string) (*bus.Bus, error) {
	st, err := store.Open(dir)
	if err != nil {
		return nil, err
	}
	return bus.New(st, config.Load(dir)), nil
}
