package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/cardstock/internal/config"
	"github.com/mithrel/cardstock/internal/logger"
	"github.com/mithrel/cardstock/internal/tui"
)

type ctxKey string

const appKey ctxKey = "app"

// app carries the resolved configuration into subcommands.
type app struct {
	settings config.Settings
	cfgPath  string
	log      *logger.Logger
	closeLog func()
}

// Execute is the entrypoint: it builds the root cobra.Command
// and calls its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
// Running it without a subcommand opens the interactive editor.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "cardstock",
		Short:         "Cardstock — markdown index cards in the terminal",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}

			log, closeLog := openLogger(v)

			// A broken settings file falls back to the defaults; the
			// editor must still come up.
			settings, err := config.FromViper(v)
			if err != nil {
				log.SettingsFallback(err)
				settings = config.DefaultSettings()
			}

			path := cfgPath
			if path == "" {
				path = config.DefaultConfigPath()
			}

			a := &app{settings: settings, cfgPath: path, log: log, closeLog: closeLog}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, a))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a := appFrom(cmd); a != nil && a.closeLog != nil {
				a.closeLog()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			return tui.Run(cmd.Context(), a.settings, a.cfgPath, a.log)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to settings file (json)")

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func openLogger(v *viper.Viper) (*logger.Logger, func()) {
	level := logger.ParseLevel(v.GetString("log_level"))
	log, closeLog, err := logger.NewFileLogger(v.GetString("log_file"), level)
	if err != nil {
		return logger.Discard(), nil
	}
	return log, closeLog
}

func appFrom(cmd *cobra.Command) *app {
	v := cmd.Context().Value(appKey)
	if v == nil {
		return nil
	}
	return v.(*app)
}

func getApp(cmd *cobra.Command) *app {
	a := appFrom(cmd)
	if a == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return a
}
