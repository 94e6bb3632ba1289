package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/futurewise/futurewise-api/infrastructure/database/postgres"
	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/lib/pq"
)

const (
	kpiDailyTable = "kpi_daily"
)

type KpiRepository interface {
	Upsert(ctx context.Context, q postgres.Queryer, record *domain.KpiDailyRecord) error
	GetByDateRange(ctx context.Context, tenantID string, startDate, endDate time.Time) ([]*domain.KpiDailyRecord, error)
}

type kpiRepository struct {
	conn postgres.Conn
}

func NewKpiRepository(conn postgres.Conn) KpiRepository {
	return &kpiRepository{
		conn: conn,
	}
}

// Upsert insere ou sobrescreve o registro do dia, chaveado por (tenant_id, date).
// Recebe um Queryer para poder participar da transação do lote de importação.
func (r *kpiRepository) Upsert(ctx context.Context, q postgres.Queryer, record *domain.KpiDailyRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(kpiDailyTable).
		Columns(
			"tenant_id", "date", "sessions", "orders", "revenue_cents",
			"conversion_rate", "inventory_units", "channel", "currency",
			"tax_rate", "revenue_cents_gross", "revenue_cents_net",
		).
		Values(
			record.TenantID,
			record.Date,
			record.Sessions,
			record.Orders,
			record.RevenueCents,
			record.ConversionRate,
			record.InventoryUnits,
			record.Channel,
			record.Currency,
			record.TaxRate,
			record.RevenueCentsGross,
			record.RevenueCentsNet,
		).
		Suffix(`
			ON CONFLICT (tenant_id, date) DO UPDATE SET
				sessions = EXCLUDED.sessions,
				orders = EXCLUDED.orders,
				revenue_cents = EXCLUDED.revenue_cents,
				conversion_rate = EXCLUDED.conversion_rate,
				inventory_units = EXCLUDED.inventory_units,
				channel = EXCLUDED.channel,
				currency = EXCLUDED.currency,
				tax_rate = EXCLUDED.tax_rate,
				revenue_cents_gross = EXCLUDED.revenue_cents_gross,
				revenue_cents_net = EXCLUDED.revenue_cents_net,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = q.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetByDateRange devolve a série diária do tenant em ordem ascendente de data.
func (r *kpiRepository) GetByDateRange(ctx context.Context, tenantID string, startDate, endDate time.Time) ([]*domain.KpiDailyRecord, error) {
	query, args, err := squirrel.
		Select("tenant_id, date, sessions, orders, revenue_cents, conversion_rate, inventory_units, channel, currency, tax_rate, revenue_cents_gross, revenue_cents_net, created_at, updated_at").
		From(kpiDailyTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date ASC").
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

	records := make([]*domain.KpiDailyRecord, 0)
	for rows.Next() {
		record := &domain.KpiDailyRecord{}
		var date time.Time

		err := rows.Scan(
			&record.TenantID,
			&date,
			&record.Sessions,
			&record.Orders,
			&record.RevenueCents,
			&record.ConversionRate,
			&record.InventoryUnits,
			&record.Channel,
			&record.Currency,
			&record.TaxRate,
			&record.RevenueCentsGross,
			&record.RevenueCentsNet,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de KPI: %w", err)
		}

		record.Date = date.Format(time.DateOnly)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
