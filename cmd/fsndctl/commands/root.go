package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/fsnd-projects/fsnd-api/cmd/app"
	"github.com/fsnd-projects/fsnd-api/internal/config"
	"github.com/fsnd-projects/fsnd-api/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "fsndctl",
	Short:         "Admin tasks for the FSND API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./cmd/app/config.yml", "Path to the YAML config file")

	rootCmd.AddCommand(newMigrateCmd(), newSeedCmd(), newCreateUserCmd(), newTokenCmd())
}

func loadConfig() (*config.AppConfig, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return nil, fmt.Errorf("logger.Init -> %w", err)
	}

	return conf, nil
}

// openDB loads the config and opens the database, which also migrates it.
func openDB() (*config.AppConfig, *gorm.DB, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := app.OpenDB(conf)
	if err != nil {
		return nil, nil, fmt.Errorf("app.OpenDB -> %w", err)
	}

	return conf, db, nil
}
