package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/account"
	"github.com/carson-networks/budget-planner/internal/handlers/v1/category"
	"github.com/carson-networks/budget-planner/internal/handlers/v1/dashboard"
	"github.com/carson-networks/budget-planner/internal/handlers/v1/entry"
	"github.com/carson-networks/budget-planner/internal/handlers/v1/routine"
	"github.com/carson-networks/budget-planner/internal/handlers/v1/status"
	"github.com/carson-networks/budget-planner/internal/handlers/v1/task"
	"github.com/carson-networks/budget-planner/internal/handlers/v1/transfer"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/service"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Service        *service.Service
	AllowedOrigins []string
}

type registrar interface {
	Register(api huma.API)
}

// Router builds the chi router with the status probe and every v1 operation.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	router.Use(logging.Middleware(r.Logger))

	statusHandler := status.NewHandler()
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humachi.New(router, huma.DefaultConfig("Budget Planner API", "1.0.0"))

	svc := r.Service
	for _, h := range []registrar{
		account.NewCreateAccountHandler(svc.Account),
		account.NewListAccountsHandler(svc.Account),
		account.NewGetAccountHandler(svc.Account),
		account.NewUpdateAccountHandler(svc.Account),
		account.NewDeleteAccountHandler(svc.Account),

		entry.NewCreateEntryHandler(svc.Entry),
		entry.NewListEntriesHandler(svc.Entry),
		entry.NewGetEntryHandler(svc.Entry),
		entry.NewUpdateEntryHandler(svc.Entry),
		entry.NewDeleteEntryHandler(svc.Entry),

		transfer.NewCreateTransferHandler(svc.Transfer),
		transfer.NewListTransfersHandler(svc.Transfer),
		transfer.NewGetTransferHandler(svc.Transfer),
		transfer.NewUpdateTransferHandler(svc.Transfer),
		transfer.NewDeleteTransferHandler(svc.Transfer),

		category.NewCreateCategoryHandler(svc.Category),
		category.NewListCategoriesHandler(svc.Category),
		category.NewUpdateCategoryHandler(svc.Category),
		category.NewDeleteCategoryHandler(svc.Category),

		task.NewCreateTaskHandler(svc.Task),
		task.NewListTasksHandler(svc.Task),
		task.NewListDayTasksHandler(svc.Task),
		task.NewGetTaskHandler(svc.Task),
		task.NewEditTaskHandler(svc.Task),
		task.NewDeleteTaskHandler(svc.Task),
		task.NewTaskTimerHandler(svc.Task),

		routine.NewCreateRoutineHandler(svc.Routine),
		routine.NewListRoutinesHandler(svc.Routine),
		routine.NewUpdateRoutineHandler(svc.Routine),
		routine.NewToggleRoutineHandler(svc.Routine),
		routine.NewDeleteRoutineHandler(svc.Routine),

		dashboard.NewGetDashboardHandler(svc.Dashboard),
	} {
		h.Register(api)
	}

	return router
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
