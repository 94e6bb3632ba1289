package importing

import (
	"testing"

	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenantDefaults() *domain.TenantDefaults {
	return &domain.TenantDefaults{
		Currency: "BRL",
		TaxRate:  0.10,
		Channel:  domain.ChannelSEO,
	}
}

func TestBuildRecord_FallbackChain(t *testing.T) {
	tests := []struct {
		name             string
		row              domain.RawRow
		defaults         *domain.TenantDefaults
		expectedChannel  string
		expectedCurrency string
		expectedTaxRate  float64
	}{
		{
			name: "Valores da linha têm prioridade sobre os defaults",
			row: domain.RawRow{
				"date":     "2026-01-15",
				"channel":  "email",
				"currency": "usd",
				"tax_rate": 0.25,
			},
			defaults:         tenantDefaults(),
			expectedChannel:  "email",
			expectedCurrency: "USD",
			expectedTaxRate:  0.25,
		},
		{
			name: "Campos omitidos usam os defaults do tenant",
			row: domain.RawRow{
				"date": "2026-01-15",
			},
			defaults:         tenantDefaults(),
			expectedChannel:  "seo",
			expectedCurrency: "BRL",
			expectedTaxRate:  0.10,
		},
		{
			name: "Campos vazios também caem para os defaults",
			row: domain.RawRow{
				"date":     "2026-01-15",
				"channel":  "",
				"currency": "  ",
				"tax_rate": "",
			},
			defaults:         tenantDefaults(),
			expectedChannel:  "seo",
			expectedCurrency: "BRL",
			expectedTaxRate:  0.10,
		},
		{
			name: "Sem configuração do tenant, valem os defaults do sistema",
			row: domain.RawRow{
				"date": "2026-01-15",
			},
			defaults:         domain.SystemDefaults(),
			expectedChannel:  "general",
			expectedCurrency: "EUR",
			expectedTaxRate:  0.19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := buildRecord("t-1", tt.row, tt.defaults)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedChannel, record.Channel)
			assert.Equal(t, tt.expectedCurrency, record.Currency)
			assert.Equal(t, tt.expectedTaxRate, record.TaxRate)
		})
	}
}

func TestBuildRecord_Validation(t *testing.T) {
	tests := []struct {
		name          string
		row           domain.RawRow
		expectedErr   error
		expectedField string
	}{
		{
			name: "Canal desconhecido é rejeitado",
			row: domain.RawRow{
				"date":    "2026-01-15",
				"channel": "tiktok",
			},
			expectedErr:   ErrInvalidChannel,
			expectedField: "channel",
		},
		{
			name: "Moeda fora do formato de três letras é rejeitada",
			row: domain.RawRow{
				"date":     "2026-01-15",
				"currency": "EURO",
			},
			expectedErr:   ErrInvalidCurrency,
			expectedField: "currency",
		},
		{
			name: "Alíquota acima de 1 é rejeitada",
			row: domain.RawRow{
				"date":     "2026-01-15",
				"tax_rate": 1.5,
			},
			expectedErr:   ErrInvalidTaxRate,
			expectedField: "tax_rate",
		},
		{
			name: "Alíquota negativa é rejeitada",
			row: domain.RawRow{
				"date":     "2026-01-15",
				"tax_rate": -0.1,
			},
			expectedErr:   ErrInvalidTaxRate,
			expectedField: "tax_rate",
		},
		{
			name: "Alíquota não numérica é rejeitada",
			row: domain.RawRow{
				"date":     "2026-01-15",
				"tax_rate": "dezenove",
			},
			expectedErr:   ErrInvalidTaxRate,
			expectedField: "tax_rate",
		},
		{
			name: "Sessions não numérico é rejeitado",
			row: domain.RawRow{
				"date":     "2026-01-15",
				"sessions": "muitas",
			},
			expectedErr:   ErrInvalidRowValue,
			expectedField: "sessions",
		},
		{
			name: "Data ausente é rejeitada",
			row: domain.RawRow{
				"sessions": 10,
			},
			expectedErr:   ErrInvalidRowValue,
			expectedField: "date",
		},
		{
			name: "Data malformada é rejeitada",
			row: domain.RawRow{
				"date": "15/01/2026",
			},
			expectedErr:   ErrInvalidRowValue,
			expectedField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := buildRecord("t-1", tt.row, domain.SystemDefaults())

			require.Nil(t, record)
			assert.ErrorIs(t, err, tt.expectedErr)

			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tt.expectedField, rowErr.Field)
		})
	}
}

func TestBuildRecord_RevenueReconciliation(t *testing.T) {
	tests := []struct {
		name          string
		row           domain.RawRow
		expectedGross int64
		expectedNet   int64
	}{
		{
			name: "Sem bruto nem líquido, revenue_cents vira o bruto e o líquido é derivado",
			row: domain.RawRow{
				"date":          "2026-01-15",
				"revenue_cents": 200000,
			},
			expectedGross: 200000,
			expectedNet:   168067, // 200000 / 1.19
		},
		{
			name: "Só o líquido informado deriva o bruto pela alíquota",
			row: domain.RawRow{
				"date":              "2026-01-15",
				"revenue_cents_net": 168067,
			},
			expectedGross: 200000, // 168067 * 1.19
			expectedNet:   168067,
		},
		{
			name: "Só o bruto informado deriva o líquido pela alíquota",
			row: domain.RawRow{
				"date":                "2026-01-15",
				"revenue_cents_gross": 200000,
			},
			expectedGross: 200000,
			expectedNet:   168067,
		},
		{
			name: "Bruto e líquido informados são preservados sem reconciliação",
			row: domain.RawRow{
				"date":                "2026-01-15",
				"revenue_cents_gross": 300000,
				"revenue_cents_net":   100000,
			},
			expectedGross: 300000,
			expectedNet:   100000,
		},
		{
			name: "Alíquota zero mantém bruto e líquido iguais",
			row: domain.RawRow{
				"date":          "2026-01-15",
				"tax_rate":      0,
				"revenue_cents": 5000,
			},
			expectedGross: 5000,
			expectedNet:   5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := buildRecord("t-1", tt.row, domain.SystemDefaults())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedGross, record.RevenueCentsGross)
			assert.Equal(t, tt.expectedNet, record.RevenueCentsNet)
		})
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int64
		hasError bool
	}{
		{name: "Ausente vira zero", value: nil, expected: 0},
		{name: "String vazia vira zero", value: "  ", expected: 0},
		{name: "Inteiro passa direto", value: 42, expected: 42},
		{name: "Float positivo trunca em direção a zero", value: 12.9, expected: 12},
		{name: "Float negativo trunca em direção a zero", value: -3.7, expected: -3},
		{name: "String inteira é convertida", value: "1500", expected: 1500},
		{name: "String decimal é rejeitada", value: "12.5", hasError: true},
		{name: "String não numérica é rejeitada", value: "abc", hasError: true},
		{name: "Tipo não numérico é rejeitado", value: []string{"x"}, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := coerceInt(tt.value)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
		hasError bool
	}{
		{name: "Ausente vira zero", value: nil, expected: 0},
		{name: "String vazia vira zero", value: "", expected: 0},
		{name: "Float passa direto", value: 0.031, expected: 0.031},
		{name: "Inteiro é promovido", value: 3, expected: 3.0},
		{name: "String decimal é convertida", value: "0.25", expected: 0.25},
		{name: "String não numérica é rejeitada", value: "x", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := coerceFloat(tt.value)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
