package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/terraincognita07/mlimi/internal/config"
	"github.com/terraincognita07/mlimi/internal/db"
)

func newMigrateCommand(state *commandState) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and print their status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(state.viper, false)
			if err != nil {
				return err
			}
			database, closeDatabase, err := state.openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase()

			state.logger.Info("schema up to date", zap.String("db", cfg.DBPath))
			return printMigrationStatus(database, cmd.OutOrStdout())
		},
	}
}

func printMigrationStatus(database *gorm.DB, out io.Writer) error {
	statuses, err := db.MigrationStatuses(database)
	if err != nil {
		return fmt.Errorf("read migration status: %w", err)
	}
	for _, status := range statuses {
		state := "pending"
		if status.Applied {
			state = "applied"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", status.Version, status.Name, state)
	}
	return nil
}
