package main

import (
	"os"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/matcher"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/outcome_log"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/runner"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lazyl",
		Short:         "Start and stop a set of programs, launch notebook servers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				runner.SetLogOutput(os.Stderr)
				matcher.SetLogOutput(os.Stderr)
				outcome_log.SetLogOutput(os.Stderr)
			}
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: $"+configEnvHint+" or the user config directory)")
	root.PersistentFlags().Bool("debug", false, "print debug logging to stderr")

	root.AddCommand(newStartCmd())
	root.AddCommand(newStopCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newProgramsCmd())
	root.AddCommand(newFoldersCmd())
	root.AddCommand(newNotebookCmd())
	root.AddCommand(newTUICmd())

	return root
}
