package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/futurewise/futurewise-api/infrastructure/database/postgres"
	"github.com/futurewise/futurewise-api/internal/domain"
	_ "github.com/lib/pq"
)

const (
	subscriptionsTable = "subscriptions"
)

type SubscriptionRepository interface {
	UpsertStatus(ctx context.Context, tenantID, status string) error
	GetByTenant(ctx context.Context, tenantID string) (*domain.Subscription, error)
}

type subscriptionRepository struct {
	conn postgres.Conn
}

func NewSubscriptionRepository(conn postgres.Conn) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

// UpsertStatus grava o último status de assinatura reportado pelo provedor
// de pagamento, um registro por tenant.
func (r *subscriptionRepository) UpsertStatus(ctx context.Context, tenantID, status string) error {
	query, args, err := squirrel.
		Insert(subscriptionsTable).
		Columns("tenant_id", "status").
		Values(tenantID, status).
		Suffix(`
			ON CONFLICT (tenant_id) DO UPDATE SET
				status = EXCLUDED.status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar assinatura: %w", err)
	}

	return nil
}

func (r *subscriptionRepository) GetByTenant(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	query, args, err := squirrel.
		Select("tenant_id, status, updated_at").
		From(subscriptionsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	subscription := &domain.Subscription{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&subscription.TenantID,
		&subscription.Status,
		&subscription.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar assinatura: %w", err)
	}

	return subscription, nil
}
