package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/and161185/files-manager/internal/config"
	"github.com/and161185/files-manager/internal/migrate"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Database.Driver != config.DriverPostgres {
				return errors.New("migrate: only the postgres driver has a schema")
			}
			return migrate.Up(cmd.Context(), a.cfg.Database.DSN, a.log)
		},
	}
}
