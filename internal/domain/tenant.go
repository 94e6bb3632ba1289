package domain

import "time"

// Valores de fallback do sistema quando o tenant não tem defaults configurados.
const (
	DefaultCurrency = "EUR"
	DefaultTaxRate  = 0.19
	DefaultChannel  = ChannelGeneral
)

type Tenant struct {
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TenantDefaults são os valores usados quando a linha importada omite o campo.
// Cadeia de fallback: valor da linha -> default do tenant -> default do sistema.
type TenantDefaults struct {
	Currency string  `json:"currency"`
	TaxRate  float64 `json:"tax_rate"`
	Channel  string  `json:"channel"`
}

// SystemDefaults retorna os defaults fixos do sistema (EUR, 0.19, general).
func SystemDefaults() *TenantDefaults {
	return &TenantDefaults{
		Currency: DefaultCurrency,
		TaxRate:  DefaultTaxRate,
		Channel:  DefaultChannel,
	}
}
