package main

import (
	"context"

	"github.com/futurewise/futurewise-api/infrastructure/database/postgres"
	"github.com/futurewise/futurewise-api/infrastructure/repository"
	"github.com/futurewise/futurewise-api/internal/api"
	"github.com/futurewise/futurewise-api/internal/config"
	"github.com/futurewise/futurewise-api/internal/scheduler"
	"github.com/futurewise/futurewise-api/internal/usecases/authenticating"
	"github.com/futurewise/futurewise-api/internal/usecases/billing"
	"github.com/futurewise/futurewise-api/internal/usecases/importing"
	"github.com/futurewise/futurewise-api/internal/usecases/simulating"
	"github.com/futurewise/futurewise-api/internal/usecases/tenanting"
	"github.com/futurewise/futurewise-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar no banco de dados")
	}
	defer conn.Close()

	tenantRepo := repository.NewTenantRepository(conn)
	kpiRepo := repository.NewKpiRepository(conn)
	eventRepo := repository.NewImportEventRepository(conn)
	scenarioRepo := repository.NewScenarioRepository(conn)
	userRepo := repository.NewUserRepository(conn)
	subscriptionRepo := repository.NewSubscriptionRepository(conn)
	auditRepo := repository.NewAuditRepository(conn)
	statsRepo := repository.NewSystemStatsRepository(conn)

	authenticator := authenticating.NewService(userRepo, cfg)
	tenantService := tenanting.NewService(tenantRepo, auditRepo)
	importService := importing.NewService(conn, tenantRepo, kpiRepo, eventRepo)
	simulationService := simulating.NewService(scenarioRepo, kpiRepo)
	billingService := billing.NewService(subscriptionRepo, cfg)

	cleanupService := scheduler.NewImportEventsCleanupService(eventRepo, cfg)
	if err := cleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar agendador de limpeza de eventos")
	}

	srv, err := api.New(
		cfg,
		authenticator,
		tenantService,
		importService,
		simulationService,
		billingService,
		statsRepo,
		auditRepo,
		cleanupService,
	)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o servidor HTTP")
	}

	if err := srv.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro na execução do servidor")
	}
}
