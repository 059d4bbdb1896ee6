package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/expense"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/income"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/summary"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Config  config.HTTPConfig
	Service *service.Service
	Storage *storage.Storage
}

// Router builds the chi router with every v1 operation registered on it.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logging.Middleware(r.Logger))
	router.Use(metrics.Middleware)

	statusHandler := status.NewHandler(nil)
	if r.Storage != nil && r.Storage.DB != nil {
		statusHandler = status.NewHandler(r.Storage.DB)
	}
	router.Handle("/status", statusHandler)
	router.Handle("/metrics", metrics.Handler())

	apierr.Install()
	api := humachi.New(router, huma.DefaultConfig("finance-tracker", "1.0.0"))

	expense.NewCreateExpenseHandler(r.Service.Expense).Register(api)
	expense.NewListExpensesHandler(r.Service.Expense).Register(api)
	expense.NewUpdateExpenseHandler(r.Service.Expense).Register(api)
	expense.NewDeleteExpenseHandler(r.Service.Expense).Register(api)

	income.NewCreateIncomeHandler(r.Service.Income).Register(api)
	income.NewCreateMonthlyIncomeHandler(r.Service.Income).Register(api)
	income.NewListIncomeHandler(r.Service.Income).Register(api)
	income.NewUpdateIncomeHandler(r.Service.Income).Register(api)
	income.NewDeleteIncomeHandler(r.Service.Income).Register(api)

	summary.NewGetSummaryHandler(r.Service.Summary).Register(api)

	return router
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Config.Port,
		Handler:           r.Router(),
		ReadTimeout:       r.Config.ReadTimeout,
		WriteTimeout:      r.Config.WriteTimeout,
		IdleTimeout:       r.Config.IdleTimeout,
		ReadHeaderTimeout: r.Config.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Config.Port).Info("HttpServer.Serve.listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.Config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
