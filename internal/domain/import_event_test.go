package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportStatusFor(t *testing.T) {
	tests := []struct {
		name          string
		insertedCount int
		errorCount    int
		expected      string
	}{
		{name: "Sem erros é sucesso", insertedCount: 10, errorCount: 0, expected: ImportStatusSuccess},
		{name: "Lote vazio sem erros é sucesso", insertedCount: 0, errorCount: 0, expected: ImportStatusSuccess},
		{name: "Erros com alguma inserção é parcial", insertedCount: 7, errorCount: 3, expected: ImportStatusPartial},
		{name: "Só erros é falha", insertedCount: 0, errorCount: 5, expected: ImportStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImportStatusFor(tt.insertedCount, tt.errorCount))
		})
	}
}
