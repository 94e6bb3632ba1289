package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/futurewise/futurewise-api/infrastructure/database/postgres"
	"github.com/futurewise/futurewise-api/internal/domain"
	_ "github.com/lib/pq"
)

type SystemStatsRepository interface {
	GetStats(ctx context.Context) (*domain.SystemStats, error)
}

type systemStatsRepository struct {
	conn postgres.Conn
}

func NewSystemStatsRepository(conn postgres.Conn) SystemStatsRepository {
	return &systemStatsRepository{
		conn: conn,
	}
}

// GetStats agrega contadores globais entre todos os tenants para o painel
// administrativo: tenants, usuários, cenários e receita bruta dos últimos 30 dias.
func (r *systemStatsRepository) GetStats(ctx context.Context) (*domain.SystemStats, error) {
	stats := &domain.SystemStats{}

	if err := r.scanCount(ctx, tenantsTable, &stats.TotalTenants); err != nil {
		return nil, err
	}

	if err := r.scanCount(ctx, usersTable, &stats.TotalUsers); err != nil {
		return nil, err
	}

	if err := r.scanCount(ctx, scenariosTable, &stats.ActiveScenarios); err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select("COALESCE(SUM(revenue_cents_gross), 0), COUNT(*)").
		From(kpiDailyTable).
		Where(squirrel.Expr("date >= NOW() - INTERVAL '30 days'")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&stats.SystemRevenue, &stats.TotalDataPoints)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar receita do sistema: %w", err)
	}

	return stats, nil
}

func (r *systemStatsRepository) scanCount(ctx context.Context, table string, dest *int) error {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(dest); err != nil {
		return fmt.Errorf("erro ao contar registros de %s: %w", table, err)
	}

	return nil
}
