package main

import (
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/matcher"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which registered programs are running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m := matcher.New()
			var rows [][]string
			for _, e := range cfg.Registry().Entries() {
				state := "Stopped"
				if m.IsRunning(e.ExecutablePath) {
					state = "Running"
				}
				rows = append(rows, []string{e.Name, state, e.ExecutablePath})
			}
			printTable(cmd.OutOrStdout(), []string{"NAME", "STATE", "PATH"}, rows)
			return nil
		},
	}
	return cmd
}
