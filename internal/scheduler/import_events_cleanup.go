// Package scheduler contém os serviços de agendamento de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/futurewise/futurewise-api/infrastructure/repository"
	"github.com/futurewise/futurewise-api/internal/config"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type ImportEventsCleanupConfig struct {
	CronSchedule  string
	Enabled       bool
	RetentionDays int
}

// ImportEventsCleanupService remove periodicamente eventos de importação
// antigos, junto com seu ledger de erros, respeitando a janela de retenção.
type ImportEventsCleanupService struct {
	scheduler          *gocron.Scheduler
	eventRepo          repository.ImportEventRepository
	config             ImportEventsCleanupConfig
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastDeletedCount   int64
}

func NewImportEventsCleanupService(
	eventRepo repository.ImportEventRepository,
	cfg *config.Config,
) *ImportEventsCleanupService {
	cleanupConfig := ImportEventsCleanupConfig{
		CronSchedule:  cfg.ImportEventsCleanup.CronSchedule,
		Enabled:       cfg.ImportEventsCleanup.Enabled,
		RetentionDays: cfg.ImportEventsCleanup.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cleanupConfig.CronSchedule,
		"retention_days": cleanupConfig.RetentionDays,
	}).Info("Configuração do agendador de limpeza de eventos de importação carregada")

	return &ImportEventsCleanupService{
		scheduler: scheduler,
		eventRepo: eventRepo,
		config:    cleanupConfig,
	}
}

func (s *ImportEventsCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de eventos de importação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de eventos de importação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CleanupImportEvents(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de eventos de importação")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de eventos de importação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de eventos de importação")
		s.scheduler.Stop()
	}()

	return nil
}

// CleanupImportEvents executa uma passada de limpeza. Execuções simultâneas
// são descartadas.
func (s *ImportEventsCleanupService) CleanupImportEvents(ctx context.Context) error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.runRunning {
		logrus.Warn("Limpeza de eventos de importação já está em execução")
		return nil
	}

	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.runRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Iniciando limpeza de eventos de importação")

	deleted, err := s.eventRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover eventos de importação antigos")
		return err
	}

	s.lastDeletedCount = deleted

	logrus.WithField("deleted_count", deleted).Info("Limpeza de eventos de importação concluída")

	return nil
}

// TriggerManualCleanup inicia manualmente uma passada de limpeza
func (s *ImportEventsCleanupService) TriggerManualCleanup(ctx context.Context) {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Limpeza de eventos de importação já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de eventos de importação")
	go s.CleanupImportEvents(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *ImportEventsCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":       s.config.Enabled,
		"cleanup_cron":          s.config.CronSchedule,
		"retention_days":        s.config.RetentionDays,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_deleted_count":    s.lastDeletedCount,
	}
}
