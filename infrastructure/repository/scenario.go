package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/futurewise/futurewise-api/infrastructure/database/postgres"
	"github.com/futurewise/futurewise-api/internal/domain"
	_ "github.com/lib/pq"
)

const (
	scenariosTable            = "scenarios"
	scenarioResultsDailyTable = "scenario_results_daily"
)

type ScenarioRepository interface {
	Get(ctx context.Context, scenarioID int64, tenantID string) (*domain.Scenario, error)
	Create(ctx context.Context, tenantID, name, kind string, params domain.ScenarioParams) (int64, error)
	ReplaceResults(ctx context.Context, scenarioID int64, tenantID string, results []*domain.ScenarioResultDaily) error
	ListByTenant(ctx context.Context, tenantID string, limit uint64) ([]*domain.Scenario, error)
	ListResults(ctx context.Context, scenarioID int64, tenantID string) ([]*domain.ScenarioResultDaily, error)
}

type scenarioRepository struct {
	conn postgres.Conn
}

func NewScenarioRepository(conn postgres.Conn) ScenarioRepository {
	return &scenarioRepository{
		conn: conn,
	}
}

// Get devolve o cenário do tenant ou nil quando não existe.
func (r *scenarioRepository) Get(ctx context.Context, scenarioID int64, tenantID string) (*domain.Scenario, error) {
	query, args, err := squirrel.
		Select("scenario_id, tenant_id, name, kind, params, created_at").
		From(scenariosTable).
		Where(squirrel.Eq{"scenario_id": scenarioID, "tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	scenario, err := r.scanScenario(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cenário: %w", err)
	}

	return scenario, nil
}

func (r *scenarioRepository) Create(ctx context.Context, tenantID, name, kind string, params domain.ScenarioParams) (int64, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return 0, fmt.Errorf("erro ao serializar params para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(scenariosTable).
		Columns("tenant_id", "name", "kind", "params").
		Values(tenantID, name, kind, paramsJSON).
		Suffix("RETURNING scenario_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var scenarioID int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&scenarioID); err != nil {
		return 0, fmt.Errorf("erro ao criar cenário: %w", err)
	}

	return scenarioID, nil
}

// ReplaceResults substitui integralmente os resultados do cenário
// (delete + insert) em uma única transação.
func (r *scenarioRepository) ReplaceResults(ctx context.Context, scenarioID int64, tenantID string, results []*domain.ScenarioResultDaily) error {
	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(scenarioResultsDailyTable).
			Where(squirrel.Eq{"scenario_id": scenarioID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover resultados anteriores: %w", err)
		}

		for _, result := range results {
			insertSQL, insertArgs, err := squirrel.
				Insert(scenarioResultsDailyTable).
				Columns("scenario_id", "tenant_id", "date", "sessions", "orders", "revenue_cents_gross", "revenue_cents_net").
				Values(scenarioID, tenantID, result.Date, result.Sessions, result.Orders, result.RevenueCentsGross, result.RevenueCentsNet).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := q.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
				return fmt.Errorf("erro ao inserir resultado de simulação: %w", err)
			}
		}

		return nil
	})
}

func (r *scenarioRepository) ListByTenant(ctx context.Context, tenantID string, limit uint64) ([]*domain.Scenario, error) {
	query, args, err := squirrel.
		Select("scenario_id, tenant_id, name, kind, params, created_at").
		From(scenariosTable).
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

	scenarios := make([]*domain.Scenario, 0)
	for rows.Next() {
		scenario, err := r.scanScenarioRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cenário: %w", err)
		}
		scenarios = append(scenarios, scenario)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return scenarios, nil
}

func (r *scenarioRepository) ListResults(ctx context.Context, scenarioID int64, tenantID string) ([]*domain.ScenarioResultDaily, error) {
	query, args, err := squirrel.
		Select("scenario_id, date, sessions, orders, revenue_cents_gross, revenue_cents_net").
		From(scenarioResultsDailyTable).
		Where(squirrel.Eq{"scenario_id": scenarioID, "tenant_id": tenantID}).
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

	results := make([]*domain.ScenarioResultDaily, 0)
	for rows.Next() {
		result := &domain.ScenarioResultDaily{}
		var date time.Time

		err := rows.Scan(
			&result.ScenarioID,
			&date,
			&result.Sessions,
			&result.Orders,
			&result.RevenueCentsGross,
			&result.RevenueCentsNet,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resultado de simulação: %w", err)
		}

		result.Date = date.Format(time.DateOnly)
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

func (r *scenarioRepository) scanScenario(row *sql.Row) (*domain.Scenario, error) {
	scenario := &domain.Scenario{}
	var paramsJSON []byte

	err := row.Scan(
		&scenario.ScenarioID,
		&scenario.TenantID,
		&scenario.Name,
		&scenario.Kind,
		&paramsJSON,
		&scenario.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(paramsJSON) > 0 {
		if err := json.Unmarshal(paramsJSON, &scenario.Params); err != nil {
			return nil, fmt.Errorf("erro ao desserializar params: %w", err)
		}
	}

	return scenario, nil
}

func (r *scenarioRepository) scanScenarioRows(rows *sql.Rows) (*domain.Scenario, error) {
	scenario := &domain.Scenario{}
	var paramsJSON []byte

	err := rows.Scan(
		&scenario.ScenarioID,
		&scenario.TenantID,
		&scenario.Name,
		&scenario.Kind,
		&paramsJSON,
		&scenario.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(paramsJSON) > 0 {
		if err := json.Unmarshal(paramsJSON, &scenario.Params); err != nil {
			return nil, fmt.Errorf("erro ao desserializar params: %w", err)
		}
	}

	return scenario, nil
}
