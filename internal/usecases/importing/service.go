package importing

import (
	"context"
	"fmt"
	"time"

	"github.com/futurewise/futurewise-api/infrastructure/database/postgres"
	"github.com/futurewise/futurewise-api/infrastructure/repository"
	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/futurewise/futurewise-api/pkg/log"
)

// Importer processa lotes de linhas brutas de KPI e expõe o histórico de
// eventos de importação.
type Importer interface {
	ImportBatch(ctx context.Context, tenantID, source string, rows []domain.RawRow, filename *string) (*domain.ImportSummary, error)
	ListEvents(ctx context.Context, tenantID string, limit uint64) ([]*domain.ImportEvent, error)
	ListEventErrors(ctx context.Context, eventID int64) ([]*domain.ImportEventError, error)
	GetKpiRange(ctx context.Context, tenantID string, startDate, endDate time.Time) ([]*domain.KpiDailyRecord, error)
}

type service struct {
	conn       postgres.Conn
	tenantRepo repository.TenantRepository
	kpiRepo    repository.KpiRepository
	eventRepo  repository.ImportEventRepository
}

// NewService cria o serviço de importação de KPIs
func NewService(
	conn postgres.Conn,
	tenantRepo repository.TenantRepository,
	kpiRepo repository.KpiRepository,
	eventRepo repository.ImportEventRepository,
) Importer {
	return &service{
		conn:       conn,
		tenantRepo: tenantRepo,
		kpiRepo:    kpiRepo,
		eventRepo:  eventRepo,
	}
}

// ImportBatch valida e grava um lote de linhas para o tenant. Cada linha é
// processada de forma independente: falhas de validação viram entradas no
// ledger de erros do evento sem interromper as demais linhas. O lote inteiro
// (upserts de KPI + evento + erros) roda em uma única transação; um erro do
// banco desfaz tudo.
func (s *service) ImportBatch(ctx context.Context, tenantID, source string, rows []domain.RawRow, filename *string) (*domain.ImportSummary, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"tenant_id": tenantID,
		"source":    source,
		"row_count": len(rows),
	})

	exists, err := s.tenantRepo.Exists(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar tenant: %w", err)
	}
	if !exists {
		return nil, ErrUnknownTenant
	}

	defaults, err := s.tenantRepo.GetDefaults(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver defaults do tenant: %w", err)
	}

	summary := &domain.ImportSummary{}
	err = s.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		eventID, err := s.eventRepo.Begin(ctx, q, tenantID, source, filename)
		if err != nil {
			return err
		}

		insertedCount := 0
		errorCount := 0
		for i, row := range rows {
			record, rowErr := buildRecord(tenantID, row, defaults)
			if rowErr != nil {
				if err := s.eventRepo.RecordError(ctx, q, eventID, i, rowErr.Error(), row); err != nil {
					return err
				}
				errorCount++
				continue
			}

			if err := s.kpiRepo.Upsert(ctx, q, record); err != nil {
				return err
			}
			insertedCount++
		}

		if err := s.eventRepo.Finish(ctx, q, eventID, insertedCount, errorCount); err != nil {
			return err
		}

		summary.EventID = eventID
		summary.InsertedCount = insertedCount
		summary.ErrorCount = errorCount
		summary.Status = domain.ImportStatusFor(insertedCount, errorCount)
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("importação de lote falhou")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"event_id":       summary.EventID,
		"inserted_count": summary.InsertedCount,
		"error_count":    summary.ErrorCount,
		"status":         summary.Status,
	}).Info("lote de KPIs importado")

	return summary, nil
}

func (s *service) ListEvents(ctx context.Context, tenantID string, limit uint64) ([]*domain.ImportEvent, error) {
	return s.eventRepo.ListByTenant(ctx, tenantID, limit)
}

func (s *service) ListEventErrors(ctx context.Context, eventID int64) ([]*domain.ImportEventError, error) {
	return s.eventRepo.ListErrors(ctx, eventID)
}

// GetKpiRange devolve a série diária importada do tenant no intervalo.
func (s *service) GetKpiRange(ctx context.Context, tenantID string, startDate, endDate time.Time) ([]*domain.KpiDailyRecord, error) {
	exists, err := s.tenantRepo.Exists(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar tenant: %w", err)
	}
	if !exists {
		return nil, ErrUnknownTenant
	}

	return s.kpiRepo.GetByDateRange(ctx, tenantID, startDate, endDate)
}
