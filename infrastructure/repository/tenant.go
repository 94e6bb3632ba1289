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
	tenantsTable        = "tenants"
	tenantDefaultsTable = "tenant_defaults"
)

type TenantRepository interface {
	Exists(ctx context.Context, tenantID string) (bool, error)
	GetDefaults(ctx context.Context, tenantID string) (*domain.TenantDefaults, error)
	SaveDefaults(ctx context.Context, tenantID string, defaults *domain.TenantDefaults) error
	Create(ctx context.Context, tenant *domain.Tenant) error
	List(ctx context.Context) ([]*domain.Tenant, error)
	Delete(ctx context.Context, tenantID string) (bool, error)
}

type tenantRepository struct {
	conn postgres.Conn
}

func NewTenantRepository(conn postgres.Conn) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) Exists(ctx context.Context, tenantID string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(tenantsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao verificar tenant: %w", err)
	}

	return true, nil
}

// GetDefaults devolve os defaults configurados do tenant ou, na ausência de
// configuração, os defaults do sistema. Nunca retorna nil sem erro.
func (r *tenantRepository) GetDefaults(ctx context.Context, tenantID string) (*domain.TenantDefaults, error) {
	query, args, err := squirrel.
		Select("default_currency, default_tax_rate, default_channel").
		From(tenantDefaultsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	defaults := &domain.TenantDefaults{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&defaults.Currency,
		&defaults.TaxRate,
		&defaults.Channel,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.SystemDefaults(), nil
		}
		return nil, fmt.Errorf("erro ao buscar defaults do tenant: %w", err)
	}

	return defaults, nil
}

func (r *tenantRepository) SaveDefaults(ctx context.Context, tenantID string, defaults *domain.TenantDefaults) error {
	query, args, err := squirrel.
		Insert(tenantDefaultsTable).
		Columns("tenant_id", "default_currency", "default_tax_rate", "default_channel").
		Values(tenantID, defaults.Currency, defaults.TaxRate, defaults.Channel).
		Suffix(`
			ON CONFLICT (tenant_id) DO UPDATE SET
				default_currency = EXCLUDED.default_currency,
				default_tax_rate = EXCLUDED.default_tax_rate,
				default_channel = EXCLUDED.default_channel,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar defaults do tenant: %w", err)
	}

	return nil
}

func (r *tenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	query, args, err := squirrel.
		Insert(tenantsTable).
		Columns("tenant_id", "name").
		Values(tenant.TenantID, tenant.Name).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar tenant: %w", err)
	}

	return nil
}

func (r *tenantRepository) List(ctx context.Context) ([]*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("tenant_id, name, created_at").
		From(tenantsTable).
		OrderBy("name ASC").
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

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant := &domain.Tenant{}
		if err := rows.Scan(&tenant.TenantID, &tenant.Name, &tenant.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tenants, nil
}

func (r *tenantRepository) Delete(ctx context.Context, tenantID string) (bool, error) {
	query, args, err := squirrel.
		Delete(tenantsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover tenant: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected > 0, nil
}
