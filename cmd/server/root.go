package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/and161185/files-manager/internal/config"
	"github.com/and161185/files-manager/internal/logging"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// app is the state shared by subcommands after the root pre-run.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "fm-server",
		Short:         "files-manager server",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.load()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML config file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug|info|warn|error)")

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newWorkerCmd(a))
	cmd.AddCommand(newMigrateCmd(a))
	return cmd
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}
