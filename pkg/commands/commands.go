package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo      = &base.OutputOptions{}
	verbose = false
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "kharcha",
		Short: base.Wrap80("Track expenses against a remote ledger from the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addRegister(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addReport(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func configureLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
