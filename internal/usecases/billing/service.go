package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/futurewise/futurewise-api/infrastructure/repository"
	"github.com/futurewise/futurewise-api/internal/config"
	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/futurewise/futurewise-api/pkg/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Biller integra o provedor de pagamento ao estado de assinatura dos tenants.
type Biller interface {
	CreateCheckoutSession(ctx context.Context, tenantID string) (*domain.CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	GetSubscription(ctx context.Context, tenantID string) (*domain.Subscription, error)
}

type service struct {
	subscriptionRepo repository.SubscriptionRepository
	cfg              *config.Config
}

// NewService cria o serviço de cobrança e configura a chave da API do Stripe
func NewService(subscriptionRepo repository.SubscriptionRepository, cfg *config.Config) Biller {
	stripe.Key = cfg.Stripe.SecretKey

	return &service{
		subscriptionRepo: subscriptionRepo,
		cfg:              cfg,
	}
}

// CreateCheckoutSession abre uma sessão de checkout de assinatura no Stripe
// com o tenant gravado nos metadados, para reconciliação via webhook.
func (s *service) CreateCheckoutSession(ctx context.Context, tenantID string) (*domain.CheckoutSession, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrTenantRequired
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.cfg.Stripe.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.cfg.Frontend.URL + "/billing/success"),
		CancelURL:  stripe.String(s.cfg.Frontend.URL + "/billing/cancel"),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{"tenant_id": tenantID},
		},
	}
	params.AddMetadata("tenant_id", tenantID)

	checkoutSession, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	return &domain.CheckoutSession{
		ID:  checkoutSession.ID,
		URL: checkoutSession.URL,
	}, nil
}

// HandleWebhook valida a assinatura do evento e projeta o status de
// assinatura correspondente sobre o tenant dos metadados. Eventos sem
// tenant_id ou de tipos não acompanhados são ignorados.
func (s *service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.Stripe.WebhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	logger := log.ForContext(ctx).WithField("event_type", string(event.Type))

	switch event.Type {
	case "checkout.session.completed":
		var checkoutSession stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
			return fmt.Errorf("erro ao decodificar evento de checkout: %w", err)
		}
		return s.upsertStatus(ctx, logger, checkoutSession.Metadata["tenant_id"], "active")

	case "customer.subscription.updated":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return fmt.Errorf("erro ao decodificar evento de assinatura: %w", err)
		}
		return s.upsertStatus(ctx, logger, subscription.Metadata["tenant_id"], string(subscription.Status))

	case "customer.subscription.deleted":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return fmt.Errorf("erro ao decodificar evento de assinatura: %w", err)
		}
		return s.upsertStatus(ctx, logger, subscription.Metadata["tenant_id"], "canceled")

	default:
		logger.Debug("evento de webhook ignorado")
		return nil
	}
}

func (s *service) upsertStatus(ctx context.Context, logger log.Logger, tenantID, status string) error {
	if tenantID == "" {
		logger.Warn("evento de webhook sem tenant_id nos metadados")
		return nil
	}

	if err := s.subscriptionRepo.UpsertStatus(ctx, tenantID, status); err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"tenant_id": tenantID,
		"status":    status,
	}).Info("status de assinatura atualizado")

	return nil
}

func (s *service) GetSubscription(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	return s.subscriptionRepo.GetByTenant(ctx, tenantID)
}
