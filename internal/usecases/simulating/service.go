package simulating

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/futurewise/futurewise-api/infrastructure/repository"
	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/futurewise/futurewise-api/pkg/log"
)

// Parâmetros reconhecidos da simulação e seus defaults.
const (
	paramPriceElasticity   = "price_elasticity"
	paramPriceChangePct    = "price_change_pct"
	paramPromoUpliftOrders = "promo_uplift_orders"
	paramTrafficChangePct  = "traffic_change_pct"

	defaultPriceElasticity = -1.2
)

// SimulationInput descreve uma execução de simulação. Exatamente um entre
// ScenarioID e Params deve ser informado.
type SimulationInput struct {
	TenantID   string
	ScenarioID *int64
	Params     domain.ScenarioParams
	DateFrom   string
	DateTo     string
}

// Simulator aplica cenários hipotéticos sobre a série diária de baseline.
type Simulator interface {
	Simulate(ctx context.Context, input *SimulationInput) (*domain.SimulationSummary, error)
	CreateScenario(ctx context.Context, tenantID, name, kind string, params domain.ScenarioParams) (int64, error)
	ListScenarios(ctx context.Context, tenantID string, limit uint64) ([]*domain.Scenario, error)
	ListResults(ctx context.Context, scenarioID int64, tenantID string) ([]*domain.ScenarioResultDaily, error)
}

type service struct {
	scenarioRepo repository.ScenarioRepository
	kpiRepo      repository.KpiRepository
}

// NewService cria o serviço de simulação de cenários
func NewService(scenarioRepo repository.ScenarioRepository, kpiRepo repository.KpiRepository) Simulator {
	return &service{
		scenarioRepo: scenarioRepo,
		kpiRepo:      kpiRepo,
	}
}

// Simulate carrega a baseline do intervalo, aplica a transformação
// determinística de elasticidade/uplift dia a dia e substitui integralmente
// os resultados do cenário. Sem scenario_id, um cenário novo é criado com os
// parâmetros inline antes do cálculo.
func (s *service) Simulate(ctx context.Context, input *SimulationInput) (*domain.SimulationSummary, error) {
	hasScenarioID := input.ScenarioID != nil
	hasParams := len(input.Params) > 0
	if hasScenarioID == hasParams {
		return nil, ErrMissingParameters
	}

	dateFrom, err := parseDate(input.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseDate(input.DateTo)
	if err != nil {
		return nil, err
	}

	var scenarioID int64
	var params domain.ScenarioParams

	if hasScenarioID {
		scenario, err := s.scenarioRepo.Get(ctx, *input.ScenarioID, input.TenantID)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar cenário: %w", err)
		}
		if scenario == nil {
			return nil, ErrScenarioNotFound
		}
		scenarioID = scenario.ScenarioID
		params = scenario.Params
	} else {
		params = input.Params
		name := "Ad-hoc"
		if custom, ok := params["name"].(string); ok && strings.TrimSpace(custom) != "" {
			name = custom
		}
		scenarioID, err = s.scenarioRepo.Create(ctx, input.TenantID, name, "custom", params)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar cenário: %w", err)
		}
	}

	elasticity, err := paramFloat(params, paramPriceElasticity, defaultPriceElasticity)
	if err != nil {
		return nil, err
	}
	priceChange, err := paramFloat(params, paramPriceChangePct, 0.0)
	if err != nil {
		return nil, err
	}
	promoUplift, err := paramFloat(params, paramPromoUpliftOrders, 0.0)
	if err != nil {
		return nil, err
	}
	trafficChange, err := paramFloat(params, paramTrafficChangePct, 0.0)
	if err != nil {
		return nil, err
	}

	baseline, err := s.kpiRepo.GetByDateRange(ctx, input.TenantID, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar baseline: %w", err)
	}

	results := make([]*domain.ScenarioResultDaily, 0, len(baseline))
	for _, day := range baseline {
		results = append(results, simulateDay(scenarioID, day, elasticity, priceChange, promoUplift, trafficChange))
	}

	if err := s.scenarioRepo.ReplaceResults(ctx, scenarioID, input.TenantID, results); err != nil {
		return nil, fmt.Errorf("erro ao gravar resultados: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"tenant_id":   input.TenantID,
		"scenario_id": scenarioID,
		"row_count":   len(results),
	}).Info("simulação de cenário concluída")

	return &domain.SimulationSummary{
		ScenarioID: scenarioID,
		RowCount:   len(results),
	}, nil
}

// simulateDay aplica a fórmula a um dia da baseline. A receita escala
// proporcionalmente ao volume simulado de pedidos pelo preço médio da
// baseline; a variação de preço só afeta o volume via elasticidade.
func simulateDay(scenarioID int64, day *domain.KpiDailyRecord, elasticity, priceChange, promoUplift, trafficChange float64) *domain.ScenarioResultDaily {
	sessions := math.Round(float64(day.Sessions) * (1.0 + trafficChange))

	ordersAdj := float64(day.Orders) * (1.0 + promoUplift) * (1.0 + elasticity*priceChange)
	orders := math.Max(0, math.Round(ordersAdj))

	var grossRate, netRate float64
	if day.Orders > 0 {
		grossRate = float64(day.RevenueCentsGross) / float64(day.Orders)
		netRate = float64(day.RevenueCentsNet) / float64(day.Orders)
	}

	return &domain.ScenarioResultDaily{
		ScenarioID:        scenarioID,
		Date:              day.Date,
		Sessions:          int64(sessions),
		Orders:            int64(orders),
		RevenueCentsGross: int64(math.Round(grossRate * orders)),
		RevenueCentsNet:   int64(math.Round(netRate * orders)),
	}
}

func (s *service) CreateScenario(ctx context.Context, tenantID, name, kind string, params domain.ScenarioParams) (int64, error) {
	if strings.TrimSpace(name) == "" {
		name = "Ad-hoc"
	}
	if strings.TrimSpace(kind) == "" {
		kind = "custom"
	}

	return s.scenarioRepo.Create(ctx, tenantID, name, kind, params)
}

func (s *service) ListScenarios(ctx context.Context, tenantID string, limit uint64) ([]*domain.Scenario, error) {
	return s.scenarioRepo.ListByTenant(ctx, tenantID, limit)
}

func (s *service) ListResults(ctx context.Context, scenarioID int64, tenantID string) ([]*domain.ScenarioResultDaily, error) {
	scenario, err := s.scenarioRepo.Get(ctx, scenarioID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar cenário: %w", err)
	}
	if scenario == nil {
		return nil, ErrScenarioNotFound
	}

	return s.scenarioRepo.ListResults(ctx, scenarioID, tenantID)
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return parsed, nil
}

// paramFloat lê um parâmetro numérico do mapa, com default quando ausente.
// Valor presente mas não numérico é erro.
func paramFloat(params domain.ScenarioParams, name string, fallback float64) (float64, error) {
	value, ok := params[name]
	if !ok || value == nil {
		return fallback, nil
	}

	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, &ParameterError{Err: ErrInvalidParameter, Name: name}
		}
		return parsed, nil
	default:
		return 0, &ParameterError{Err: ErrInvalidParameter, Name: name}
	}
}
