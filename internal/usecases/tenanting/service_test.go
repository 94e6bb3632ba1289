package tenanting

import (
	"context"
	"testing"

	"github.com/futurewise/futurewise-api/infrastructure/repository/mocks"
	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTenantService(t *testing.T) (*service, *mocks.MockTenantRepository, *mocks.MockAuditRepository) {
	ctrl := gomock.NewController(t)

	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockAuditRepo := mocks.NewMockAuditRepository(ctrl)

	svc := &service{
		tenantRepo: mockTenantRepo,
		auditRepo:  mockAuditRepo,
	}

	return svc, mockTenantRepo, mockAuditRepo
}

func TestCreateTenant(t *testing.T) {
	svc, mockTenantRepo, mockAuditRepo := newTenantService(t)

	mockTenantRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenant *domain.Tenant) error {
			assert.NotEmpty(t, tenant.TenantID)
			assert.Equal(t, "Loja Aurora", tenant.Name)
			return nil
		})
	mockAuditRepo.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.AuditEvent) error {
			assert.Equal(t, 1, event.UserID)
			assert.Equal(t, "tenant_created", event.ActionType)
			return nil
		})

	tenant, err := svc.CreateTenant(context.Background(), "  Loja Aurora  ", 1)

	require.NoError(t, err)
	assert.Equal(t, "Loja Aurora", tenant.Name)
	assert.NotEmpty(t, tenant.TenantID)
}

func TestCreateTenant_NameRequired(t *testing.T) {
	svc, _, _ := newTenantService(t)

	tenant, err := svc.CreateTenant(context.Background(), "   ", 1)

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateTenant_AuditFailureDoesNotAbort(t *testing.T) {
	svc, mockTenantRepo, mockAuditRepo := newTenantService(t)

	mockTenantRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockAuditRepo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(assert.AnError)

	tenant, err := svc.CreateTenant(context.Background(), "Loja Aurora", 1)

	require.NoError(t, err)
	assert.NotNil(t, tenant)
}

func TestDeleteTenant_NotFound(t *testing.T) {
	svc, mockTenantRepo, _ := newTenantService(t)

	mockTenantRepo.EXPECT().Delete(gomock.Any(), "t-missing").Return(false, nil)

	err := svc.DeleteTenant(context.Background(), "t-missing", 1)

	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestGetDefaults_UnknownTenant(t *testing.T) {
	svc, mockTenantRepo, _ := newTenantService(t)

	mockTenantRepo.EXPECT().Exists(gomock.Any(), "t-missing").Return(false, nil)

	defaults, err := svc.GetDefaults(context.Background(), "t-missing")

	assert.Nil(t, defaults)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestSaveDefaults(t *testing.T) {
	svc, mockTenantRepo, mockAuditRepo := newTenantService(t)

	mockTenantRepo.EXPECT().Exists(gomock.Any(), "t-1").Return(true, nil)
	mockTenantRepo.EXPECT().
		SaveDefaults(gomock.Any(), "t-1", &domain.TenantDefaults{
			Currency: "BRL",
			TaxRate:  0.12,
			Channel:  "seo",
		}).
		Return(nil)
	mockAuditRepo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	// Moeda e canal são normalizados antes da validação e da gravação.
	err := svc.SaveDefaults(context.Background(), "t-1", &domain.TenantDefaults{
		Currency: " brl ",
		TaxRate:  0.12,
		Channel:  "SEO",
	}, 1)

	assert.NoError(t, err)
}

func TestSaveDefaults_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		defaults *domain.TenantDefaults
	}{
		{
			name:     "Moeda fora do formato",
			defaults: &domain.TenantDefaults{Currency: "REAL", TaxRate: 0.1, Channel: "seo"},
		},
		{
			name:     "Canal desconhecido",
			defaults: &domain.TenantDefaults{Currency: "BRL", TaxRate: 0.1, Channel: "tiktok"},
		},
		{
			name:     "Alíquota fora do intervalo",
			defaults: &domain.TenantDefaults{Currency: "BRL", TaxRate: 1.2, Channel: "seo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockTenantRepo, _ := newTenantService(t)
			mockTenantRepo.EXPECT().Exists(gomock.Any(), "t-1").Return(true, nil)

			err := svc.SaveDefaults(context.Background(), "t-1", tt.defaults, 1)

			assert.ErrorIs(t, err, ErrInvalidDefaults)
		})
	}
}
