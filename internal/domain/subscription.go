package domain

import "time"

// Subscription reflete o último estado conhecido da assinatura de um tenant,
// alimentado pelos webhooks do provedor de pagamento.
type Subscription struct {
	TenantID  string    `json:"tenant_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckoutSession é a resposta de criação de uma sessão de checkout.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
