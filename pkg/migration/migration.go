package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const migrationsDir = "migrations"

func newMigrate(rootDir string, dsn string) *migrate.Migrate {
	m, err := migrate.New("file://"+path.Join(rootDir, migrationsDir), "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand runs migrations from ./migrations, database drivers must be imported by main
func MigrateCommand(dsn string) *cobra.Command {
	cmd := &cobra.Command{
		Use: "migrate",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "migrate up to the latest version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return ignoreNoChange(newMigrate(".", dsn).Up())
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "migrate down one version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return ignoreNoChange(newMigrate(".", dsn).Steps(-1))
			},
		},
		&cobra.Command{
			Use:   "force [version]",
			Short: "force set version, clearing the dirty flag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version: %w", err)
				}
				return newMigrate(".", dsn).Force(version)
			},
		},
	)
	return cmd
}

// MigrateUpForTesting ...
func MigrateUpForTesting(rootDir string, dsn string) {
	err := ignoreNoChange(newMigrate(rootDir, dsn).Up())
	if err != nil {
		panic(err)
	}
}
