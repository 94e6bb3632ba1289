package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_007" // Usuário já existe

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de importação de KPIs
	ErrUnknownTenant  = "IMP_001" // Tenant inexistente
	ErrMissingColumns = "IMP_002" // Colunas obrigatórias ausentes no arquivo
	ErrInvalidPayload = "IMP_003" // Payload de importação ilegível

	// Erros de simulação
	ErrMissingParameters = "SIM_001" // Nem scenario_id nem params informados
	ErrInvalidParameter  = "SIM_002" // Parâmetro de simulação não numérico
	ErrScenarioNotFound  = "SIM_003" // Cenário inexistente para o tenant
	ErrInvalidDateRange  = "SIM_004" // Data malformada no intervalo

	// Erros de tenants
	ErrTenantNotFound      = "TEN_001" // Tenant não encontrado
	ErrInvalidTenantConfig = "TEN_002" // Defaults de tenant inválidos

	// Erros de cobrança
	ErrCheckoutFailed   = "BIL_001" // Falha ao criar sessão de checkout
	ErrInvalidSignature = "BIL_002" // Assinatura de webhook inválida

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUnknownTenant:         http.StatusNotFound,
	ErrMissingColumns:        http.StatusBadRequest,
	ErrInvalidPayload:        http.StatusBadRequest,
	ErrMissingParameters:     http.StatusBadRequest,
	ErrInvalidParameter:      http.StatusBadRequest,
	ErrScenarioNotFound:      http.StatusNotFound,
	ErrInvalidDateRange:      http.StatusBadRequest,
	ErrTenantNotFound:        http.StatusNotFound,
	ErrInvalidTenantConfig:   http.StatusBadRequest,
	ErrCheckoutFailed:        http.StatusBadGateway,
	ErrInvalidSignature:      http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
