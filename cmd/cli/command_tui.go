package main

import (
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/outcome_log"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/runner"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/tui"
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive program selection with a live outcome log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := outcome_log.New()
			defer log.Close()

			return tui.Run(tui.Options{
				Config:     cfg,
				ConfigPath: path,
				Runner:     runner.NewRunner(runner.Config{Sink: log}),
				Log:        log,
			})
		},
	}
}
