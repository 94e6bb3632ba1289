package importing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsFromJSON(t *testing.T) {
	payload := []byte(`[
		{"date": "2026-01-15", "sessions": 1200, "conversion_rate": 0.031},
		{"date": "2026-01-16", "sessions": "1100"}
	]`)

	rows, err := RowsFromJSON(payload)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-01-15", rows[0]["date"])
	assert.Equal(t, float64(1200), rows[0]["sessions"])
	assert.Equal(t, 0.031, rows[0]["conversion_rate"])
	assert.Equal(t, "1100", rows[1]["sessions"])
}

func TestRowsFromJSON_InvalidPayload(t *testing.T) {
	rows, err := RowsFromJSON([]byte(`{"não": "é array"}`))

	assert.Nil(t, rows)
	assert.Error(t, err)
}

func TestRowsFromCSV(t *testing.T) {
	input := strings.Join([]string{
		"Date, Sessions ,orders,revenue_cents,conversion_rate,inventory_units,channel",
		"2026-01-15,1200,30,200000,0.025,500,seo",
		"2026-01-16,1100,25,180000,0.022,480,",
	}, "\n")

	rows, err := RowsFromCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)

	// O cabeçalho é normalizado para minúsculas sem espaços nas bordas.
	assert.Equal(t, "2026-01-15", rows[0]["date"])
	assert.Equal(t, "1200", rows[0]["sessions"])
	assert.Equal(t, "seo", rows[0]["channel"])
	assert.Equal(t, "", rows[1]["channel"])
}

func TestRowsFromCSV_MissingColumns(t *testing.T) {
	input := strings.Join([]string{
		"date,sessions,orders",
		"2026-01-15,1200,30",
	}, "\n")

	rows, err := RowsFromCSV(strings.NewReader(input))

	assert.Nil(t, rows)

	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Equal(t, []string{"revenue_cents", "conversion_rate", "inventory_units"}, missingErr.Columns)
}

func TestRowsFromCSV_EmptyInput(t *testing.T) {
	rows, err := RowsFromCSV(strings.NewReader(""))

	assert.Nil(t, rows)

	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, requiredColumns, missingErr.Columns)
}

func TestRowsFromCSV_HeaderOnly(t *testing.T) {
	input := "date,sessions,orders,revenue_cents,conversion_rate,inventory_units"

	rows, err := RowsFromCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRowFromValues(t *testing.T) {
	columns := []string{"date", "sessions", "", "orders"}
	values := []string{"2026-01-15", "1200", "ignorada"}

	row := rowFromValues(columns, values)

	// Coluna sem nome é descartada e célula ausente fica fora do mapa.
	assert.Equal(t, "2026-01-15", row["date"])
	assert.Equal(t, "1200", row["sessions"])
	_, hasOrders := row["orders"]
	assert.False(t, hasOrders)
	assert.Len(t, row, 2)
}
