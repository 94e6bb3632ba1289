package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/futurewise/futurewise-api/internal/usecases/billing"
	"github.com/futurewise/futurewise-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type CheckoutRequest struct {
	TenantID string `json:"tenant_id"`
}

// CreateCheckout abre uma sessão de checkout de assinatura para o tenant.
func CreateCheckout(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckoutRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		session, err := service.CreateCheckoutSession(r.Context(), req.TenantID)
		if err != nil {
			handleBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(session)
	}
}

// BillingWebhook recebe eventos do provedor de pagamento. A autenticação é
// feita pela assinatura do payload, não por JWT.
func BillingWebhook(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if err := service.HandleWebhook(r.Context(), payload, signature); err != nil {
			handleBillingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"received": "true"})
	}
}

// GetSubscription devolve o último status de assinatura conhecido do tenant.
func GetSubscription(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)
			return
		}

		subscription, err := service.GetSubscription(r.Context(), tenantID)
		if err != nil {
			handleBillingError(w, err)
			return
		}

		if subscription == nil {
			apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "Assinatura não encontrada para o tenant", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(subscription)
	}
}

// handleBillingError traduz erros de cobrança para a resposta padronizada
func handleBillingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, billing.ErrTenantRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)

	case errors.Is(err, billing.ErrInvalidSignature):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSignature, "Assinatura de webhook inválida", nil)

	case errors.Is(err, billing.ErrCheckoutFailed):
		apiErrors.WriteError(w, apiErrors.ErrCheckoutFailed, "Erro ao criar sessão de checkout", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar operação de cobrança", nil)
	}
}
