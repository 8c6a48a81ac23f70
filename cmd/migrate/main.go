package main

import (
	"os"

	"github.com/QuangTung97/promo-engagement/config"
	"github.com/QuangTung97/promo-engagement/pkg/migration"
	"go.uber.org/zap"

	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	cmd := migration.MigrateCommand(conf.MySQL.DSN())
	if err := cmd.Execute(); err != nil {
		logger.Error("migrate", zap.Error(err))
		os.Exit(1)
	}
}
