package main

import (
	"fmt"
	"path/filepath"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/config"
	"github.com/spf13/cobra"
)

func newProgramsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "programs",
		Short: "Manage the registered programs",
	}
	cmd.AddCommand(newProgramsListCmd())
	cmd.AddCommand(newProgramsAddCmd())
	cmd.AddCommand(newProgramsRemoveCmd())
	return cmd
}

func newProgramsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			var rows [][]string
			for _, e := range cfg.Registry().Entries() {
				rows = append(rows, []string{e.Name, e.ExecutablePath})
			}
			printTable(cmd.OutOrStdout(), []string{"NAME", "PATH"}, rows)
			return nil
		},
	}
}

func newProgramsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Register a program (named after its file name unless --name is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			executable, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			reg := cfg.Registry()
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				name, err = reg.AddPath(executable)
			} else {
				err = reg.Add(name, executable)
			}
			if err != nil {
				return err
			}
			cfg.SetPrograms(reg)
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s: %s\n", name, executable)
			return nil
		},
	}
	cmd.Flags().String("name", "", "program name")
	return cmd
}

func newProgramsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>...",
		Short: "Unregister programs by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			reg := cfg.Registry()
			for _, name := range args {
				if err := reg.Remove(name); err != nil {
					return err
				}
			}
			cfg.SetPrograms(reg)
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			for _, name := range args {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
			}
			return nil
		},
	}
}
