package simulating

import (
	"context"
	"testing"
	"time"

	"github.com/futurewise/futurewise-api/infrastructure/repository/mocks"
	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSimulationService(t *testing.T) (*service, *mocks.MockScenarioRepository, *mocks.MockKpiRepository) {
	ctrl := gomock.NewController(t)

	mockScenarioRepo := mocks.NewMockScenarioRepository(ctrl)
	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)

	svc := &service{
		scenarioRepo: mockScenarioRepo,
		kpiRepo:      mockKpiRepo,
	}

	return svc, mockScenarioRepo, mockKpiRepo
}

func baselineDay(date string, sessions, orders, gross, net int64) *domain.KpiDailyRecord {
	return &domain.KpiDailyRecord{
		TenantID:          "t-1",
		Date:              date,
		Sessions:          sessions,
		Orders:            orders,
		RevenueCentsGross: gross,
		RevenueCentsNet:   net,
	}
}

func TestSimulate_ExactlyOneOfScenarioIDOrParams(t *testing.T) {
	svc, _, _ := newSimulationService(t)

	scenarioID := int64(3)
	tests := []struct {
		name  string
		input *SimulationInput
	}{
		{
			name: "Sem scenario_id e sem params",
			input: &SimulationInput{
				TenantID: "t-1",
				DateFrom: "2026-01-01",
				DateTo:   "2026-01-31",
			},
		},
		{
			name: "Com scenario_id e params ao mesmo tempo",
			input: &SimulationInput{
				TenantID:   "t-1",
				ScenarioID: &scenarioID,
				Params:     domain.ScenarioParams{"price_change_pct": 0.05},
				DateFrom:   "2026-01-01",
				DateTo:     "2026-01-31",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := svc.Simulate(context.Background(), tt.input)

			assert.Nil(t, summary)
			assert.ErrorIs(t, err, ErrMissingParameters)
		})
	}
}

func TestSimulate_InvalidDates(t *testing.T) {
	svc, _, _ := newSimulationService(t)

	summary, err := svc.Simulate(context.Background(), &SimulationInput{
		TenantID: "t-1",
		Params:   domain.ScenarioParams{"price_change_pct": 0.05},
		DateFrom: "01/01/2026",
		DateTo:   "2026-01-31",
	})

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSimulate_ScenarioNotFound(t *testing.T) {
	svc, mockScenarioRepo, _ := newSimulationService(t)

	scenarioID := int64(99)
	mockScenarioRepo.EXPECT().Get(gomock.Any(), int64(99), "t-1").Return(nil, nil)

	summary, err := svc.Simulate(context.Background(), &SimulationInput{
		TenantID:   "t-1",
		ScenarioID: &scenarioID,
		DateFrom:   "2026-01-01",
		DateTo:     "2026-01-31",
	})

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrScenarioNotFound)
}

func TestSimulate_AdHocParams(t *testing.T) {
	svc, mockScenarioRepo, mockKpiRepo := newSimulationService(t)

	params := domain.ScenarioParams{"price_change_pct": 0.05}
	baseline := []*domain.KpiDailyRecord{
		baselineDay("2026-01-15", 1200, 100, 200000, 168067),
	}

	mockScenarioRepo.EXPECT().
		Create(gomock.Any(), "t-1", "Ad-hoc", "custom", params).
		Return(int64(42), nil)
	mockKpiRepo.EXPECT().
		GetByDateRange(gomock.Any(), "t-1", gomock.Any(), gomock.Any()).
		Return(baseline, nil)

	var saved []*domain.ScenarioResultDaily
	mockScenarioRepo.EXPECT().
		ReplaceResults(gomock.Any(), int64(42), "t-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, results []*domain.ScenarioResultDaily) error {
			saved = results
			return nil
		})

	summary, err := svc.Simulate(context.Background(), &SimulationInput{
		TenantID: "t-1",
		Params:   params,
		DateFrom: "2026-01-01",
		DateTo:   "2026-01-31",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.ScenarioID)
	assert.Equal(t, 1, summary.RowCount)

	// Com elasticidade default -1.2 e alta de preço de 5%, o volume de
	// pedidos cai 6% e a receita escala pelo tíquete médio da baseline.
	require.Len(t, saved, 1)
	day := saved[0]
	assert.Equal(t, "2026-01-15", day.Date)
	assert.Equal(t, int64(1200), day.Sessions)
	assert.Equal(t, int64(94), day.Orders)
	assert.Equal(t, int64(188000), day.RevenueCentsGross)
	assert.Equal(t, int64(157983), day.RevenueCentsNet)
}

func TestSimulate_NamedScenario(t *testing.T) {
	svc, mockScenarioRepo, mockKpiRepo := newSimulationService(t)

	scenarioID := int64(7)
	scenario := &domain.Scenario{
		ScenarioID: scenarioID,
		TenantID:   "t-1",
		Name:       "Black Friday",
		Kind:       "promo",
		Params: domain.ScenarioParams{
			"promo_uplift_orders": 0.30,
			"traffic_change_pct":  0.10,
		},
	}
	baseline := []*domain.KpiDailyRecord{
		baselineDay("2026-01-15", 1000, 50, 100000, 84034),
	}

	mockScenarioRepo.EXPECT().Get(gomock.Any(), scenarioID, "t-1").Return(scenario, nil)
	mockKpiRepo.EXPECT().
		GetByDateRange(gomock.Any(), "t-1", gomock.Any(), gomock.Any()).
		Return(baseline, nil)

	var saved []*domain.ScenarioResultDaily
	mockScenarioRepo.EXPECT().
		ReplaceResults(gomock.Any(), scenarioID, "t-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, results []*domain.ScenarioResultDaily) error {
			saved = results
			return nil
		})

	summary, err := svc.Simulate(context.Background(), &SimulationInput{
		TenantID:   "t-1",
		ScenarioID: &scenarioID,
		DateFrom:   "2026-01-01",
		DateTo:     "2026-01-31",
	})

	require.NoError(t, err)
	assert.Equal(t, scenarioID, summary.ScenarioID)

	// Sem variação de preço a elasticidade não atua: 50 * 1.3 = 65 pedidos
	// e 1000 * 1.1 = 1100 sessões.
	require.Len(t, saved, 1)
	assert.Equal(t, int64(1100), saved[0].Sessions)
	assert.Equal(t, int64(65), saved[0].Orders)
	assert.Equal(t, int64(130000), saved[0].RevenueCentsGross)
}

func TestSimulate_InvalidParameter(t *testing.T) {
	svc, mockScenarioRepo, _ := newSimulationService(t)

	params := domain.ScenarioParams{"price_change_pct": "cinco por cento"}

	mockScenarioRepo.EXPECT().
		Create(gomock.Any(), "t-1", "Ad-hoc", "custom", params).
		Return(int64(42), nil)

	summary, err := svc.Simulate(context.Background(), &SimulationInput{
		TenantID: "t-1",
		Params:   params,
		DateFrom: "2026-01-01",
		DateTo:   "2026-01-31",
	})

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	var paramErr *ParameterError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "price_change_pct", paramErr.Name)
}

func TestSimulateDay(t *testing.T) {
	tests := []struct {
		name          string
		day           *domain.KpiDailyRecord
		elasticity    float64
		priceChange   float64
		promoUplift   float64
		trafficChange float64
		expected      *domain.ScenarioResultDaily
	}{
		{
			name:        "Alta de preço reduz o volume pela elasticidade",
			day:         baselineDay("2026-01-15", 1200, 100, 200000, 168067),
			elasticity:  -1.2,
			priceChange: 0.05,
			expected: &domain.ScenarioResultDaily{
				ScenarioID:        1,
				Date:              "2026-01-15",
				Sessions:          1200,
				Orders:            94,
				RevenueCentsGross: 188000,
				RevenueCentsNet:   157983,
			},
		},
		{
			name:        "Queda extrema de volume não deixa pedidos negativos",
			day:         baselineDay("2026-01-15", 1000, 10, 50000, 42017),
			elasticity:  -1.2,
			priceChange: 1.0,
			expected: &domain.ScenarioResultDaily{
				ScenarioID:        1,
				Date:              "2026-01-15",
				Sessions:          1000,
				Orders:            0,
				RevenueCentsGross: 0,
				RevenueCentsNet:   0,
			},
		},
		{
			name: "Baseline sem pedidos produz receita zero",
			day:  baselineDay("2026-01-15", 500, 0, 0, 0),
			expected: &domain.ScenarioResultDaily{
				ScenarioID:        1,
				Date:              "2026-01-15",
				Sessions:          500,
				Orders:            0,
				RevenueCentsGross: 0,
				RevenueCentsNet:   0,
			},
		},
		{
			name:          "Somente tráfego altera as sessões",
			day:           baselineDay("2026-01-15", 1000, 40, 80000, 67227),
			trafficChange: -0.25,
			expected: &domain.ScenarioResultDaily{
				ScenarioID:        1,
				Date:              "2026-01-15",
				Sessions:          750,
				Orders:            40,
				RevenueCentsGross: 80000,
				RevenueCentsNet:   67227,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := simulateDay(1, tt.day, tt.elasticity, tt.priceChange, tt.promoUplift, tt.trafficChange)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestListResults_ScenarioNotFound(t *testing.T) {
	svc, mockScenarioRepo, _ := newSimulationService(t)

	mockScenarioRepo.EXPECT().Get(gomock.Any(), int64(5), "t-1").Return(nil, nil)

	results, err := svc.ListResults(context.Background(), int64(5), "t-1")

	assert.Nil(t, results)
	assert.ErrorIs(t, err, ErrScenarioNotFound)
}

func TestListResults(t *testing.T) {
	svc, mockScenarioRepo, _ := newSimulationService(t)

	scenario := &domain.Scenario{ScenarioID: 5, TenantID: "t-1", CreatedAt: time.Now()}
	expected := []*domain.ScenarioResultDaily{
		{ScenarioID: 5, Date: "2026-01-15", Sessions: 1200},
	}

	mockScenarioRepo.EXPECT().Get(gomock.Any(), int64(5), "t-1").Return(scenario, nil)
	mockScenarioRepo.EXPECT().ListResults(gomock.Any(), int64(5), "t-1").Return(expected, nil)

	results, err := svc.ListResults(context.Background(), int64(5), "t-1")

	require.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestCreateScenario_Defaults(t *testing.T) {
	svc, mockScenarioRepo, _ := newSimulationService(t)

	params := domain.ScenarioParams{"traffic_change_pct": 0.1}
	mockScenarioRepo.EXPECT().
		Create(gomock.Any(), "t-1", "Ad-hoc", "custom", params).
		Return(int64(11), nil)

	scenarioID, err := svc.CreateScenario(context.Background(), "t-1", "  ", "", params)

	require.NoError(t, err)
	assert.Equal(t, int64(11), scenarioID)
}
