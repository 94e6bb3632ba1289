package domain

import "time"

// ScenarioParams é o conjunto opaco de parâmetros de um cenário,
// persistido como JSONB.
type ScenarioParams map[string]any

// Scenario é um conjunto nomeado de parâmetros de simulação de um tenant.
type Scenario struct {
	ScenarioID int64          `json:"scenario_id"`
	TenantID   string         `json:"tenant_id"`
	Name       string         `json:"name"`
	Kind       string         `json:"kind"`
	Params     ScenarioParams `json:"params"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ScenarioResultDaily é uma linha do resultado simulado, por dia.
// O conjunto inteiro é substituído (delete + insert) a cada simulação.
type ScenarioResultDaily struct {
	ScenarioID        int64  `json:"scenario_id,omitempty"`
	Date              string `json:"date"`
	Sessions          int64  `json:"sessions"`
	Orders            int64  `json:"orders"`
	RevenueCentsGross int64  `json:"revenue_cents_gross"`
	RevenueCentsNet   int64  `json:"revenue_cents_net"`
}

// SimulationSummary é o resultado agregado de uma simulação.
type SimulationSummary struct {
	ScenarioID int64 `json:"scenario_id"`
	RowCount   int   `json:"row_count"`
}
