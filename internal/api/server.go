package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/futurewise/futurewise-api/infrastructure/repository"
	"github.com/futurewise/futurewise-api/internal/api/handler"
	"github.com/futurewise/futurewise-api/internal/api/handler/router"
	"github.com/futurewise/futurewise-api/internal/config"
	"github.com/futurewise/futurewise-api/internal/scheduler"
	"github.com/futurewise/futurewise-api/internal/usecases/authenticating"
	"github.com/futurewise/futurewise-api/internal/usecases/billing"
	"github.com/futurewise/futurewise-api/internal/usecases/importing"
	"github.com/futurewise/futurewise-api/internal/usecases/simulating"
	"github.com/futurewise/futurewise-api/internal/usecases/tenanting"
	"github.com/futurewise/futurewise-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	tenantService tenanting.TenantManager,
	importService importing.Importer,
	simulationService simulating.Simulator,
	billingService billing.Biller,
	statsRepo repository.SystemStatsRepository,
	auditRepo repository.AuditRepository,
	cleanupService *scheduler.ImportEventsCleanupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ImportEventsCleanupService: cleanupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Tenants(tenantService, importService)...),
		router.WithRoutes(handler.Imports(importService)...),
		router.WithRoutes(handler.Scenarios(simulationService)...),
		router.WithRoutes(handler.Billing(billingService)...),
		router.WithRoutes(handler.System(statsRepo, auditRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
