package simulating

import (
	"errors"
	"fmt"
)

// Erros específicos do motor de simulação
var (
	ErrMissingParameters = errors.New("informe scenario_id ou um conjunto de parâmetros, nunca ambos")
	ErrInvalidParameter  = errors.New("parâmetro de simulação inválido")
	ErrScenarioNotFound  = errors.New("cenário não encontrado")
	ErrInvalidDate       = errors.New("data inválida")
)

// ParameterError indica qual parâmetro não pôde ser interpretado
type ParameterError struct {
	Err  error
	Name string
}

// Error implementa a interface error
func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Name)
}

// Unwrap retorna o erro subjacente
func (e *ParameterError) Unwrap() error {
	return e.Err
}
