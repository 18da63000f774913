// Command employeectl manages employee records from the shell: bulk CSV import,
// CSV export and filtered listing against the same store the server uses.
package main

import (
	"fmt"
	"os"

	"employee-records/internal/config"
	"employee-records/internal/database"
	"employee-records/internal/logger"
	"employee-records/internal/repository"
	"employee-records/internal/service"
	"employee-records/internal/validation"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// cliOptions are the persistent flags shared by every subcommand
type cliOptions struct {
	driver   string
	database string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "employeectl",
		Short:         "Manage employee records",
		Long:          `Import, export and list employee records stored in SQLite or PostgreSQL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "Database driver: sqlite or postgres (default from DATABASE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&opts.database, "database", "", "Database file or URL (default from DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (default from LOG_LEVEL)")

	rootCmd.AddCommand(newImportCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))

	return rootCmd
}

// openService loads configuration, applies flag overrides and wires the employee service.
// The returned func closes the database.
func openService(opts *cliOptions) (service.EmployeeServiceInterface, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.driver != "" {
		cfg.DatabaseDriver = opts.driver
	}
	if opts.database != "" {
		cfg.DatabaseURL = opts.database
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewEmployeeService(repository.NewEmployeeRepository(db), validation.New())
	return svc, func() { closeDB(db) }, nil
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		logger.New().WithError(err).Warn("failed to close database")
	}
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
