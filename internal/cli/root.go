package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// options are the global flags shared by all subcommands.
type options struct {
	output string
	debug  bool
	log    *slog.Logger
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cmd := &cobra.Command{
		Use:          "datatype",
		Short:        "Inspect and compute dates, months, amounts and rates",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.output {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", opts.output)
			}
			opts.log = newLogger(cmd.ErrOrStderr(), opts.debug)
			opts.log.Debug("cli.start", "command", cmd.CommandPath(), "output", opts.output)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatText, "output format: text, json or yaml")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to stderr")

	cmd.AddCommand(dateCmd(opts))
	cmd.AddCommand(monthCmd(opts))
	cmd.AddCommand(amountCmd(opts))
	cmd.AddCommand(rateCmd(opts))
	return cmd
}

// newLogger returns a logger that writes warnings to w, or everything
// including the source position when debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	addSource := false
	if debug {
		level = slog.LevelDebug
		addSource = true
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	}))
}
