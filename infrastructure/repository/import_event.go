package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/futurewise/futurewise-api/infrastructure/database/postgres"
	"github.com/futurewise/futurewise-api/internal/domain"
	_ "github.com/lib/pq"
)

const (
	importEventsTable      = "import_events"
	importEventErrorsTable = "import_event_errors"
)

type ImportEventRepository interface {
	// Begin, RecordError e Finish recebem um Queryer para participar da
	// transação do lote; as operações de leitura e retenção usam a conexão.
	Begin(ctx context.Context, q postgres.Queryer, tenantID, source string, filename *string) (int64, error)
	RecordError(ctx context.Context, q postgres.Queryer, eventID int64, rowIndex int, message string, rawRow domain.RawRow) error
	Finish(ctx context.Context, q postgres.Queryer, eventID int64, insertedCount, errorCount int) error
	ListByTenant(ctx context.Context, tenantID string, limit uint64) ([]*domain.ImportEvent, error)
	ListErrors(ctx context.Context, eventID int64) ([]*domain.ImportEventError, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type importEventRepository struct {
	conn postgres.Conn
}

func NewImportEventRepository(conn postgres.Conn) ImportEventRepository {
	return &importEventRepository{
		conn: conn,
	}
}

func (r *importEventRepository) Begin(ctx context.Context, q postgres.Queryer, tenantID, source string, filename *string) (int64, error) {
	query, args, err := squirrel.
		Insert(importEventsTable).
		Columns("tenant_id", "source", "filename", "inserted_count", "error_count", "status").
		Values(tenantID, source, filename, 0, 0, domain.ImportStatusPending).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var eventID int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&eventID); err != nil {
		return 0, fmt.Errorf("erro ao registrar evento de importação: %w", err)
	}

	return eventID, nil
}

func (r *importEventRepository) RecordError(ctx context.Context, q postgres.Queryer, eventID int64, rowIndex int, message string, rawRow domain.RawRow) error {
	rawJSON, err := json.Marshal(rawRow)
	if err != nil {
		return fmt.Errorf("erro ao serializar linha original para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(importEventErrorsTable).
		Columns("event_id", "row_index", "error", "raw_row").
		Values(eventID, rowIndex, message, rawJSON).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar erro de linha: %w", err)
	}

	return nil
}

// Finish grava os contadores finais e o status derivado do lote.
func (r *importEventRepository) Finish(ctx context.Context, q postgres.Queryer, eventID int64, insertedCount, errorCount int) error {
	query, args, err := squirrel.
		Update(importEventsTable).
		Set("inserted_count", insertedCount).
		Set("error_count", errorCount).
		Set("status", domain.ImportStatusFor(insertedCount, errorCount)).
		Where(squirrel.Eq{"id": eventID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao finalizar evento de importação: %w", err)
	}

	return nil
}

func (r *importEventRepository) ListByTenant(ctx context.Context, tenantID string, limit uint64) ([]*domain.ImportEvent, error) {
	query, args, err := squirrel.
		Select("id, tenant_id, source, filename, inserted_count, error_count, status, created_at").
		From(importEventsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.ImportEvent, 0)
	for rows.Next() {
		event := &domain.ImportEvent{}
		err := rows.Scan(
			&event.ID,
			&event.TenantID,
			&event.Source,
			&event.Filename,
			&event.InsertedCount,
			&event.ErrorCount,
			&event.Status,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento de importação: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

func (r *importEventRepository) ListErrors(ctx context.Context, eventID int64) ([]*domain.ImportEventError, error) {
	query, args, err := squirrel.
		Select("id, event_id, row_index, error, raw_row").
		From(importEventErrorsTable).
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("row_index ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	importErrors := make([]*domain.ImportEventError, 0)
	for rows.Next() {
		importError := &domain.ImportEventError{}
		var rawJSON []byte

		err := rows.Scan(
			&importError.ID,
			&importError.EventID,
			&importError.RowIndex,
			&importError.Error,
			&rawJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear erro de importação: %w", err)
		}

		if len(rawJSON) > 0 {
			if err := json.Unmarshal(rawJSON, &importError.RawRow); err != nil {
				return nil, fmt.Errorf("erro ao desserializar linha original: %w", err)
			}
		}

		importErrors = append(importErrors, importError)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return importErrors, nil
}

// DeleteOlderThan remove eventos antigos (os erros associados caem via CASCADE).
func (r *importEventRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(importEventsTable).
		Where(squirrel.Lt{"created_at": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
