package importing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/futurewise/futurewise-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/xuri/excelize/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Colunas mínimas exigidas de fontes tabulares (CSV e planilha).
var requiredColumns = []string{
	"date",
	"sessions",
	"orders",
	"revenue_cents",
	"conversion_rate",
	"inventory_units",
}

// RowsFromJSON materializa um payload JSON (array de objetos) em linhas brutas.
func RowsFromJSON(payload []byte) ([]domain.RawRow, error) {
	rows := make([]domain.RawRow, 0)
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("erro ao decodificar payload JSON: %w", err)
	}

	return rows, nil
}

// RowsFromCSV materializa um CSV com cabeçalho em linhas brutas. O cabeçalho
// precisa conter o conjunto mínimo de colunas, senão o lote inteiro é
// rejeitado com MissingColumns.
func RowsFromCSV(reader io.Reader) ([]domain.RawRow, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &MissingColumnsError{Columns: requiredColumns}
		}
		return nil, fmt.Errorf("erro ao ler cabeçalho do CSV: %w", err)
	}

	columns := normalizeHeader(header)
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	rows := make([]domain.RawRow, 0)
	for {
		values, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha do CSV: %w", err)
		}

		rows = append(rows, rowFromValues(columns, values))
	}

	return rows, nil
}

// RowsFromXLSX materializa a primeira planilha de um arquivo XLSX em linhas
// brutas, com a mesma exigência de colunas do CSV.
func RowsFromXLSX(reader io.Reader) ([]domain.RawRow, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, &MissingColumnsError{Columns: requiredColumns}
	}

	cells, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler planilha: %w", err)
	}
	if len(cells) == 0 {
		return nil, &MissingColumnsError{Columns: requiredColumns}
	}

	columns := normalizeHeader(cells[0])
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	rows := make([]domain.RawRow, 0, len(cells)-1)
	for _, values := range cells[1:] {
		rows = append(rows, rowFromValues(columns, values))
	}

	return rows, nil
}

func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return columns
}

func missingColumns(columns []string) []string {
	present := make(map[string]struct{}, len(columns))
	for _, name := range columns {
		present[name] = struct{}{}
	}

	missing := make([]string, 0)
	for _, name := range requiredColumns {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}

// rowFromValues monta a linha bruta posicional; células além do cabeçalho são
// ignoradas e células ausentes ficam de fora do mapa.
func rowFromValues(columns, values []string) domain.RawRow {
	row := make(domain.RawRow, len(columns))
	for i, name := range columns {
		if name == "" || i >= len(values) {
			continue
		}
		row[name] = values[i]
	}
	return row
}
