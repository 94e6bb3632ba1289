package tenanting

import (
	"context"
	"fmt"
	"strings"

	"github.com/futurewise/futurewise-api/infrastructure/repository"
	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/futurewise/futurewise-api/pkg/log"
	"github.com/futurewise/futurewise-api/pkg/utils"
)

// TenantManager administra tenants e seus defaults de importação.
type TenantManager interface {
	ListTenants(ctx context.Context) ([]*domain.Tenant, error)
	CreateTenant(ctx context.Context, name string, actorID int) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, tenantID string, actorID int) error
	GetDefaults(ctx context.Context, tenantID string) (*domain.TenantDefaults, error)
	SaveDefaults(ctx context.Context, tenantID string, defaults *domain.TenantDefaults, actorID int) error
}

type service struct {
	tenantRepo repository.TenantRepository
	auditRepo  repository.AuditRepository
}

// NewService cria o serviço de gerenciamento de tenants
func NewService(tenantRepo repository.TenantRepository, auditRepo repository.AuditRepository) TenantManager {
	return &service{
		tenantRepo: tenantRepo,
		auditRepo:  auditRepo,
	}
}

func (s *service) ListTenants(ctx context.Context) ([]*domain.Tenant, error) {
	return s.tenantRepo.List(ctx)
}

func (s *service) CreateTenant(ctx context.Context, name string, actorID int) (*domain.Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	tenantID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerateID, err)
	}

	tenant := &domain.Tenant{
		TenantID: tenantID,
		Name:     name,
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, actorID, "tenant_created", tenant.TenantID, map[string]any{"name": name})

	return tenant, nil
}

func (s *service) DeleteTenant(ctx context.Context, tenantID string, actorID int) error {
	deleted, err := s.tenantRepo.Delete(ctx, tenantID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTenantNotFound
	}

	s.recordAudit(ctx, actorID, "tenant_deleted", tenantID, nil)

	return nil
}

func (s *service) GetDefaults(ctx context.Context, tenantID string) (*domain.TenantDefaults, error) {
	exists, err := s.tenantRepo.Exists(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTenantNotFound
	}

	return s.tenantRepo.GetDefaults(ctx, tenantID)
}

// SaveDefaults valida e grava os defaults usados na cadeia de fallback de
// importação do tenant.
func (s *service) SaveDefaults(ctx context.Context, tenantID string, defaults *domain.TenantDefaults, actorID int) error {
	exists, err := s.tenantRepo.Exists(ctx, tenantID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTenantNotFound
	}

	defaults.Currency = strings.ToUpper(strings.TrimSpace(defaults.Currency))
	defaults.Channel = strings.ToLower(strings.TrimSpace(defaults.Channel))

	if !domain.IsValidCurrency(defaults.Currency) {
		return fmt.Errorf("%w: moeda %q", ErrInvalidDefaults, defaults.Currency)
	}
	if !domain.IsValidChannel(defaults.Channel) {
		return fmt.Errorf("%w: canal %q", ErrInvalidDefaults, defaults.Channel)
	}
	if !domain.IsValidTaxRate(defaults.TaxRate) {
		return fmt.Errorf("%w: alíquota %v", ErrInvalidDefaults, defaults.TaxRate)
	}

	if err := s.tenantRepo.SaveDefaults(ctx, tenantID, defaults); err != nil {
		return err
	}

	s.recordAudit(ctx, actorID, "tenant_defaults_updated", tenantID, map[string]any{
		"currency": defaults.Currency,
		"tax_rate": defaults.TaxRate,
		"channel":  defaults.Channel,
	})

	return nil
}

// recordAudit registra a ação administrativa; falha de auditoria não derruba
// a operação principal.
func (s *service) recordAudit(ctx context.Context, actorID int, action, tenantID string, details map[string]any) {
	event := &domain.AuditEvent{
		UserID:     actorID,
		ActionType: action,
		EntityType: "tenant",
		EntityID:   tenantID,
		Details:    details,
	}

	if err := s.auditRepo.Record(ctx, event); err != nil {
		log.ForContext(ctx).WithError(err).Warn("falha ao registrar evento de auditoria")
	}
}
