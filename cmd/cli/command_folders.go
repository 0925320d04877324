package main

import (
	"fmt"
	"path/filepath"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/config"
	"github.com/spf13/cobra"
)

func newFoldersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Manage pinned and recent notebook folders",
	}
	cmd.AddCommand(newFoldersListCmd())
	cmd.AddCommand(newFoldersPinCmd())
	cmd.AddCommand(newFoldersUnpinCmd())
	cmd.AddCommand(newFoldersRenameCmd())
	cmd.AddCommand(newFoldersRecentCmd())
	return cmd
}

// updateConfig loads the config, applies fn and saves the result.
func updateConfig(cmd *cobra.Command, fn func(cfg *config.Config) error) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	return config.Save(path, cfg)
}

func newFoldersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pinned and recent folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			var rows [][]string
			for _, p := range cfg.PinnedFolders {
				rows = append(rows, []string{"pinned", p.Label, p.Path})
			}
			for _, r := range cfg.RecentFolders {
				rows = append(rows, []string{"recent", "", r})
			}
			printTable(cmd.OutOrStdout(), []string{"KIND", "LABEL", "PATH"}, rows)
			return nil
		},
	}
}

func newFoldersPinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin <folder>",
		Short: "Pin a folder, or relabel it if already pinned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			label, _ := cmd.Flags().GetString("label")
			if label == "" {
				label = filepath.Base(folder)
			}
			err = updateConfig(cmd, func(cfg *config.Config) error {
				return cfg.PinFolder(folder, label)
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pinned folder: %s\nLabel: %s\n", folder, label)
			return nil
		},
	}
	cmd.Flags().String("label", "", "label for the pinned folder (default: folder name)")
	return cmd
}

func newFoldersUnpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpin <folder>",
		Short: "Unpin a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			err = updateConfig(cmd, func(cfg *config.Config) error {
				if !cfg.UnpinFolder(folder) {
					return fmt.Errorf("folder is not pinned: %s", folder)
				}
				return nil
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unpinned folder: %s\n", folder)
			return nil
		},
	}
}

func newFoldersRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <label> <new-label>",
		Short: "Rename a pinned folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := updateConfig(cmd, func(cfg *config.Config) error {
				return cfg.RenamePinned(args[0], args[1])
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed pinned folder:\nOld label: %s\nNew label: %s\n", args[0], args[1])
			return nil
		},
	}
}

func newFoldersRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Manage recent folders",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <folder>",
		Short: "Delete a folder from the recent list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := updateConfig(cmd, func(cfg *config.Config) error {
				if !cfg.DeleteRecent(args[0]) {
					return fmt.Errorf("not a recent folder: %s", args[0])
				}
				return nil
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted recent folder: %s\n", args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear all recent folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := updateConfig(cmd, func(cfg *config.Config) error {
				cfg.ClearRecents()
				return nil
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared all recent folders.")
			return nil
		},
	})
	return cmd
}
