package domain

import (
	"regexp"
	"time"
)

// Canais de aquisição aceitos para um registro diário de KPI.
const (
	ChannelGeneral     = "general"
	ChannelSEO         = "seo"
	ChannelSEM         = "sem"
	ChannelEmail       = "email"
	ChannelSocial      = "social"
	ChannelAffiliate   = "affiliate"
	ChannelMarketplace = "marketplace"
	ChannelDirect      = "direct"
	ChannelOther       = "other"
)

var validChannels = map[string]struct{}{
	ChannelGeneral:     {},
	ChannelSEO:         {},
	ChannelSEM:         {},
	ChannelEmail:       {},
	ChannelSocial:      {},
	ChannelMarketplace: {},
	ChannelAffiliate:   {},
	ChannelDirect:      {},
	ChannelOther:       {},
}

// Apenas o formato é validado, não a lista real ISO-4217.
var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// IsValidChannel verifica se o canal (já normalizado para minúsculas) é aceito.
func IsValidChannel(channel string) bool {
	_, ok := validChannels[channel]
	return ok
}

// IsValidCurrency verifica o formato da moeda (3 letras maiúsculas).
func IsValidCurrency(currency string) bool {
	return currencyPattern.MatchString(currency)
}

// IsValidTaxRate verifica se a alíquota está no intervalo [0, 1].
func IsValidTaxRate(rate float64) bool {
	return rate >= 0.0 && rate <= 1.0
}

// RawRow é uma linha de importação ainda não validada, na forma
// campo -> valor bruto, independente da origem (JSON, CSV ou planilha).
type RawRow map[string]any

// KpiDailyRecord é o snapshot diário de métricas de um tenant.
// A chave (tenant_id, date) é única: importações posteriores sobrescrevem
// todas as colunas de valor (upsert, sem histórico).
type KpiDailyRecord struct {
	TenantID          string    `json:"tenant_id"`
	Date              string    `json:"date"`
	Sessions          int64     `json:"sessions"`
	Orders            int64     `json:"orders"`
	RevenueCents      int64     `json:"revenue_cents"`
	ConversionRate    float64   `json:"conversion_rate"`
	InventoryUnits    int64     `json:"inventory_units"`
	Channel           string    `json:"channel"`
	Currency          string    `json:"currency"`
	TaxRate           float64   `json:"tax_rate"`
	RevenueCentsGross int64     `json:"revenue_cents_gross"`
	RevenueCentsNet   int64     `json:"revenue_cents_net"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
	UpdatedAt         time.Time `json:"updated_at,omitempty"`
}
