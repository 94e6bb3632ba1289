package importing

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos do pipeline de importação
var (
	// Erros fatais para o lote inteiro
	ErrUnknownTenant  = errors.New("tenant desconhecido")
	ErrMissingColumns = errors.New("colunas obrigatórias ausentes")

	// Erros fatais apenas para a linha
	ErrInvalidChannel  = errors.New("canal inválido")
	ErrInvalidCurrency = errors.New("moeda inválida")
	ErrInvalidTaxRate  = errors.New("alíquota de imposto inválida")
	ErrInvalidRowValue = errors.New("valor inválido na linha")
)

// RowError é um erro de linha com contexto adicional
type RowError struct {
	Err     error  // Erro base
	Field   string // Campo que causou o erro
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RowError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Field, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Field)
}

// Unwrap retorna o erro subjacente
func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError cria um novo erro de linha
func NewRowError(baseErr error, field string, details string) *RowError {
	return &RowError{
		Err:     baseErr,
		Field:   field,
		Details: details,
	}
}

// MissingColumnsError indica quais colunas obrigatórias faltam no cabeçalho
type MissingColumnsError struct {
	Columns []string
}

// Error implementa a interface error
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumns.Error(), strings.Join(e.Columns, ", "))
}

// Unwrap retorna o erro subjacente
func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}
