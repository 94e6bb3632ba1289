package billing

import "errors"

// Erros específicos de cobrança
var (
	ErrTenantRequired   = errors.New("tenant_id é obrigatório")
	ErrCheckoutFailed   = errors.New("erro ao criar sessão de checkout")
	ErrInvalidSignature = errors.New("assinatura de webhook inválida")
)
