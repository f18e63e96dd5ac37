package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsnd-projects/fsnd-api/internal/repository/dao"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}

			if err = dao.InitTables(db); err != nil {
				return fmt.Errorf("dao.InitTables -> %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "tables migrated")

			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default trivia categories into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}

			n, err := dao.SeedTrivia(cmd.Context(), db)
			if err != nil {
				return fmt.Errorf("dao.SeedTrivia -> %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d categories created\n", n)

			return nil
		},
	}
}
