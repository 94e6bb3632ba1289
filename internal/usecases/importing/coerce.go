package importing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/futurewise/futurewise-api/internal/domain"
)

// buildRecord valida e normaliza uma linha bruta em um registro canônico de
// KPI diário. Campos omitidos seguem a cadeia de fallback
// linha -> default do tenant -> default do sistema, e a receita bruta/líquida
// é reconciliada sob a alíquota resolvida.
func buildRecord(tenantID string, row domain.RawRow, defaults *domain.TenantDefaults) (*domain.KpiDailyRecord, error) {
	record := &domain.KpiDailyRecord{
		TenantID: tenantID,
	}

	channel := defaults.Channel
	if value, ok := fieldString(row, "channel"); ok {
		channel = value
	}
	channel = strings.ToLower(channel)
	if !domain.IsValidChannel(channel) {
		return nil, NewRowError(ErrInvalidChannel, "channel", channel)
	}
	record.Channel = channel

	currency := defaults.Currency
	if value, ok := fieldString(row, "currency"); ok {
		currency = value
	}
	currency = strings.ToUpper(currency)
	if !domain.IsValidCurrency(currency) {
		return nil, NewRowError(ErrInvalidCurrency, "currency", currency)
	}
	record.Currency = currency

	taxRate := defaults.TaxRate
	if value, ok := row["tax_rate"]; ok && !isEmpty(value) {
		parsed, err := coerceFloat(value)
		if err != nil {
			return nil, NewRowError(ErrInvalidTaxRate, "tax_rate", err.Error())
		}
		taxRate = parsed
	}
	if !domain.IsValidTaxRate(taxRate) {
		return nil, NewRowError(ErrInvalidTaxRate, "tax_rate", fmt.Sprintf("%v fora do intervalo [0, 1]", taxRate))
	}
	record.TaxRate = taxRate

	var err error
	if record.Sessions, err = coerceInt(row["sessions"]); err != nil {
		return nil, NewRowError(ErrInvalidRowValue, "sessions", err.Error())
	}
	if record.Orders, err = coerceInt(row["orders"]); err != nil {
		return nil, NewRowError(ErrInvalidRowValue, "orders", err.Error())
	}
	if record.InventoryUnits, err = coerceInt(row["inventory_units"]); err != nil {
		return nil, NewRowError(ErrInvalidRowValue, "inventory_units", err.Error())
	}
	if record.RevenueCents, err = coerceInt(row["revenue_cents"]); err != nil {
		return nil, NewRowError(ErrInvalidRowValue, "revenue_cents", err.Error())
	}
	if record.ConversionRate, err = coerceFloat(row["conversion_rate"]); err != nil {
		return nil, NewRowError(ErrInvalidRowValue, "conversion_rate", err.Error())
	}

	gross, err := coerceNullableInt(row, "revenue_cents_gross")
	if err != nil {
		return nil, NewRowError(ErrInvalidRowValue, "revenue_cents_gross", err.Error())
	}
	net, err := coerceNullableInt(row, "revenue_cents_net")
	if err != nil {
		return nil, NewRowError(ErrInvalidRowValue, "revenue_cents_net", err.Error())
	}
	record.RevenueCentsGross, record.RevenueCentsNet = reconcileRevenue(record.RevenueCents, gross, net, taxRate)

	// A data precisa ser validada antes do upsert: dentro da transação do
	// lote um erro do banco invalidaria a transação inteira, então uma data
	// malformada é tratada como erro de linha já na coerção.
	date, ok := fieldString(row, "date")
	if !ok {
		return nil, NewRowError(ErrInvalidRowValue, "date", "data ausente")
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, NewRowError(ErrInvalidRowValue, "date", fmt.Sprintf("data inválida: %q", date))
	}
	record.Date = date

	return record, nil
}

// reconcileRevenue deriva os valores ausentes de receita bruta/líquida.
// Sem nenhum dos dois, o revenue_cents legado vira a receita bruta; com
// apenas um deles, o outro é derivado pela alíquota. Arredondamento
// half-away-from-zero em todos os casos.
func reconcileRevenue(revenueCents int64, gross, net *int64, taxRate float64) (int64, int64) {
	factor := 1.0 + taxRate

	switch {
	case gross == nil && net == nil:
		g := revenueCents
		return g, int64(math.Round(float64(g) / factor))
	case gross == nil:
		return int64(math.Round(float64(*net) * factor)), *net
	case net == nil:
		return *gross, int64(math.Round(float64(*gross) / factor))
	default:
		return *gross, *net
	}
}

// fieldString devolve o campo como string normalizada, indicando se a linha
// realmente o preencheu (presente e não vazio).
func fieldString(row domain.RawRow, key string) (string, bool) {
	value, ok := row[key]
	if !ok || value == nil {
		return "", false
	}

	text := strings.TrimSpace(fmt.Sprintf("%v", value))
	return text, text != ""
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if text, ok := value.(string); ok {
		return strings.TrimSpace(text) == ""
	}
	return false
}

// coerceInt converte o valor bruto para inteiro. Ausente ou vazio vira zero;
// floats são truncados em direção a zero.
func coerceInt(value any) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("número não finito: %v", v)
		}
		return int64(v), nil
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("inteiro inválido: %q", text)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("tipo não numérico: %T", value)
	}
}

// coerceFloat converte o valor bruto para float. Ausente ou vazio vira zero.
func coerceFloat(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("número não finito: %v", v)
		}
		return v, nil
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("número inválido: %q", text)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("tipo não numérico: %T", value)
	}
}

// coerceNullableInt distingue campo ausente (nil) de campo preenchido.
func coerceNullableInt(row domain.RawRow, key string) (*int64, error) {
	value, ok := row[key]
	if !ok || isEmpty(value) {
		return nil, nil
	}

	parsed, err := coerceInt(value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
