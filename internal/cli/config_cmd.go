package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mithrel/cardstock/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigOptionsCmd())
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the effective settings file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), getApp(cmd).cfgPath)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			if _, err := os.Stat(a.cfgPath); err == nil && !overwrite {
				return fmt.Errorf("config already exists at %s; use --overwrite to replace it", a.cfgPath)
			}
			if err := config.DefaultSettings().Save(a.cfgPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing settings file")
	return cmd
}

func newConfigOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List settings keys with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.RenderOptions())
			return nil
		},
	}
}
