package cli

import (
	"userapi-go/internal/database/migrate"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(newMigrateStepCmd("up", "Apply all pending migrations", migrate.RunMigrations))
	cmd.AddCommand(newMigrateStepCmd("down", "Roll back all migrations", migrate.RollbackMigrations))
	return cmd
}

func newMigrateStepCmd(use, short string, step func(*sqlx.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := connect(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			return step(db.DB)
		},
	}
}
