package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/and161185/files-manager/internal/config"
)

func newWorkerCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the derivative job workers without the API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Database.Driver != config.DriverPostgres {
				return errors.New("worker: the memory job queue lives inside serve; use serve with worker.count > 0")
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Worker.Count = workers
			}
			if a.cfg.Worker.Count < 1 {
				a.cfg.Worker.Count = 1
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			st, err := openStores(ctx, a.cfg, a.log)
			if err != nil {
				return err
			}
			defer st.Close()

			a.log.Info("worker starting", zap.Int("workers", a.cfg.Worker.Count))
			err = newWorker(a.cfg, st, a.log).Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			a.log.Info("worker stopped")
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent consumers")
	return cmd
}
