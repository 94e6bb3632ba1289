package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/futurewise/futurewise-api/infrastructure/database/postgres"
	"github.com/futurewise/futurewise-api/internal/domain"
	_ "github.com/lib/pq"
)

const (
	auditEventsTable = "audit_events"
)

type AuditRepository interface {
	Record(ctx context.Context, event *domain.AuditEvent) error
	ListRecent(ctx context.Context, limit, offset uint64) ([]*domain.AuditEvent, error)
}

type auditRepository struct {
	conn postgres.Conn
}

func NewAuditRepository(conn postgres.Conn) AuditRepository {
	return &auditRepository{
		conn: conn,
	}
}

func (r *auditRepository) Record(ctx context.Context, event *domain.AuditEvent) error {
	var detailsJSON []byte
	var err error

	if event.Details != nil {
		detailsJSON, err = json.Marshal(event.Details)
		if err != nil {
			return fmt.Errorf("erro ao serializar detalhes para JSON: %w", err)
		}
	}

	query, args, err := squirrel.
		Insert(auditEventsTable).
		Columns("user_id", "action_type", "entity_type", "entity_id", "details").
		Values(event.UserID, event.ActionType, event.EntityType, event.EntityID, detailsJSON).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar evento de auditoria: %w", err)
	}

	return nil
}

func (r *auditRepository) ListRecent(ctx context.Context, limit, offset uint64) ([]*domain.AuditEvent, error) {
	query, args, err := squirrel.
		Select("audit_id, user_id, action_type, entity_type, entity_id, details, created_at").
		From(auditEventsTable).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
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

	events := make([]*domain.AuditEvent, 0)
	for rows.Next() {
		event := &domain.AuditEvent{}
		var detailsJSON []byte

		err := rows.Scan(
			&event.AuditID,
			&event.UserID,
			&event.ActionType,
			&event.EntityType,
			&event.EntityID,
			&detailsJSON,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento de auditoria: %w", err)
		}

		if len(detailsJSON) > 0 {
			if err := json.Unmarshal(detailsJSON, &event.Details); err != nil {
				return nil, fmt.Errorf("erro ao desserializar detalhes: %w", err)
			}
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}
