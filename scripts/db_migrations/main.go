package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-planner/internal/config"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/storage/sqlconfig"
)

func main() {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLogging(env.LogLevel)

	db, err := sqlconfig.Open(context.Background(), env.PostgresURL())
	if err != nil {
		logger.WithError(err).Fatal("sqlconfig.Open")
		return
	}
	defer db.Close()

	result, err := sqlconfig.Migrate(db, "file://migrations")
	if err != nil {
		logger.WithError(err).Fatal("sqlconfig.Migrate")
		return
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
}
