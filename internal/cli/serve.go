package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-planner/api"
	"github.com/carson-networks/budget-planner/internal/config"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/operator"
	"github.com/carson-networks/budget-planner/internal/service"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/upload"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API. Configuration comes from the environment and an
optional .env file. SIGINT or SIGTERM drains in-flight requests and stops.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Error("config.ProcessEnvironmentVariables")
		return err
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithFields(logrus.Fields{
		"storeDriver":  envConfig.StoreDriver,
		"uploadDriver": envConfig.UploadDriver,
	}).Info("budget-planner starting")

	store, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Error("storage.NewStorage")
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	uploader, err := upload.New(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Error("upload.New")
		return fmt.Errorf("configure uploads: %w", err)
	}
	if closer, ok := uploader.(io.Closer); ok {
		defer closer.Close()
	}

	op := operator.NewOperatorDelegator(store, envConfig.OperatorWorkers, logger)
	op.Start()
	defer op.Stop()

	httpRest := api.Rest{
		Logger:         logger,
		Port:           envConfig.Port,
		Service:        service.NewService(store, op, uploader, envConfig),
		AllowedOrigins: envConfig.CORSAllowedOrigins,
	}
	return httpRest.Serve(ctx)
}
