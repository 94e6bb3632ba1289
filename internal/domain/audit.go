package domain

import "time"

// AuditEvent registra uma ação administrativa sobre uma entidade do sistema.
type AuditEvent struct {
	AuditID    int64          `json:"audit_id"`
	UserID     int            `json:"user_id"`
	ActionType string         `json:"action_type"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// SystemStats agrega contadores globais para o painel administrativo.
type SystemStats struct {
	TotalTenants    int   `json:"total_tenants"`
	TotalUsers      int   `json:"total_users"`
	SystemRevenue   int64 `json:"system_revenue"`
	ActiveScenarios int   `json:"active_scenarios"`
	TotalDataPoints int   `json:"total_data_points"`
}
