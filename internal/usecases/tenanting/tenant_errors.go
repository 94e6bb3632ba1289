package tenanting

import "errors"

// Erros específicos do gerenciamento de tenants
var (
	ErrTenantNotFound  = errors.New("tenant não encontrado")
	ErrNameRequired    = errors.New("nome do tenant é obrigatório")
	ErrInvalidDefaults = errors.New("defaults de tenant inválidos")
	ErrGenerateID      = errors.New("erro ao gerar identificador do tenant")
)
