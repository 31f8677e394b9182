package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/terraincognita07/mlimi/internal/config"
	"github.com/terraincognita07/mlimi/internal/db"
	"github.com/terraincognita07/mlimi/internal/logging"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// commandState carries what every subcommand needs after the persistent pre-run:
// the merged configuration source and the process logger.
type commandState struct {
	viper   *viper.Viper
	envFile string
	logger  *zap.Logger
	out     io.Writer
}

// Execute runs the mlimi command line and returns the process exit code.
func Execute() int {
	if err := NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	return exitSuccess
}

func NewRootCommand(out io.Writer) *cobra.Command {
	state := &commandState{viper: config.NewViper(), out: out}

	root := &cobra.Command{
		Use:           "mlimi",
		Short:         "Mlimi keeps farm, soil and animal health records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.logger != nil {
				_ = state.logger.Sync()
			}
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&state.envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")
	flags.String("db-path", "", "SQLite database path (env DB_PATH)")
	flags.String("log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	_ = state.viper.BindPFlag(config.KeyDBPath, flags.Lookup("db-path"))
	_ = state.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(newServeCommand(state))
	root.AddCommand(newMigrateCommand(state))
	root.AddCommand(newResetPasswordCommand(state))
	return root
}

func (state *commandState) init() error {
	if err := config.LoadDotEnv(state.envFile); err != nil {
		return err
	}
	logger, err := logging.New(state.viper.GetString(config.KeyLogLevel), state.viper.GetBool(config.KeyLogDevelopment))
	if err != nil {
		return err
	}
	state.logger = logger
	return nil
}

func (state *commandState) openDatabase(cfg config.Config) (*gorm.DB, func(), error) {
	database, err := db.OpenSQLite(cfg.DBPath, state.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	closeDatabase := func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return database, closeDatabase, nil
}
