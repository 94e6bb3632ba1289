package importing

import (
	"context"
	"testing"
	"time"

	"github.com/futurewise/futurewise-api/infrastructure/database/postgres"
	pgmocks "github.com/futurewise/futurewise-api/infrastructure/database/postgres/mocks"
	"github.com/futurewise/futurewise-api/infrastructure/repository/mocks"
	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newImportService(t *testing.T) (*service, *pgmocks.MockConn, *mocks.MockTenantRepository, *mocks.MockKpiRepository, *mocks.MockImportEventRepository) {
	ctrl := gomock.NewController(t)

	mockConn := pgmocks.NewMockConn(ctrl)
	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	mockEventRepo := mocks.NewMockImportEventRepository(ctrl)

	svc := &service{
		conn:       mockConn,
		tenantRepo: mockTenantRepo,
		kpiRepo:    mockKpiRepo,
		eventRepo:  mockEventRepo,
	}

	return svc, mockConn, mockTenantRepo, mockKpiRepo, mockEventRepo
}

// passthroughTransaction faz o mock da conexão executar a função transacional
// diretamente, sem banco de dados.
func passthroughTransaction(mockConn *pgmocks.MockConn) {
	mockConn.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(postgres.Queryer) error) error {
			return fn(nil)
		})
}

func TestImportBatch_UnknownTenant(t *testing.T) {
	svc, _, mockTenantRepo, _, _ := newImportService(t)

	mockTenantRepo.EXPECT().Exists(gomock.Any(), "t-missing").Return(false, nil)

	summary, err := svc.ImportBatch(context.Background(), "t-missing", domain.ImportSourceAPI, nil, nil)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrUnknownTenant)
}

func TestImportBatch_AllRowsValid(t *testing.T) {
	svc, mockConn, mockTenantRepo, mockKpiRepo, mockEventRepo := newImportService(t)

	rows := []domain.RawRow{
		{"date": "2026-01-15", "sessions": 1200, "orders": 30, "revenue_cents": 200000},
		{"date": "2026-01-16", "sessions": 1100, "orders": 25, "revenue_cents": 180000},
	}

	mockTenantRepo.EXPECT().Exists(gomock.Any(), "t-1").Return(true, nil)
	mockTenantRepo.EXPECT().GetDefaults(gomock.Any(), "t-1").Return(domain.SystemDefaults(), nil)
	passthroughTransaction(mockConn)

	mockEventRepo.EXPECT().
		Begin(gomock.Any(), gomock.Any(), "t-1", domain.ImportSourceAPI, nil).
		Return(int64(7), nil)
	mockKpiRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockEventRepo.EXPECT().Finish(gomock.Any(), gomock.Any(), int64(7), 2, 0).Return(nil)

	summary, err := svc.ImportBatch(context.Background(), "t-1", domain.ImportSourceAPI, rows, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(7), summary.EventID)
	assert.Equal(t, 2, summary.InsertedCount)
	assert.Equal(t, 0, summary.ErrorCount)
	assert.Equal(t, domain.ImportStatusSuccess, summary.Status)
}

func TestImportBatch_PartialBatch(t *testing.T) {
	svc, mockConn, mockTenantRepo, mockKpiRepo, mockEventRepo := newImportService(t)

	rows := []domain.RawRow{
		{"date": "2026-01-15", "sessions": 1200, "revenue_cents": 200000},
		{"date": "2026-01-16", "channel": "tiktok"},
		{"date": "2026-01-17", "sessions": "abc"},
	}

	mockTenantRepo.EXPECT().Exists(gomock.Any(), "t-1").Return(true, nil)
	mockTenantRepo.EXPECT().GetDefaults(gomock.Any(), "t-1").Return(domain.SystemDefaults(), nil)
	passthroughTransaction(mockConn)

	mockEventRepo.EXPECT().
		Begin(gomock.Any(), gomock.Any(), "t-1", domain.ImportSourceCSV, gomock.Any()).
		Return(int64(8), nil)
	mockKpiRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// As linhas inválidas entram no ledger de erros com o índice original.
	mockEventRepo.EXPECT().
		RecordError(gomock.Any(), gomock.Any(), int64(8), 1, gomock.Any(), rows[1]).
		Return(nil)
	mockEventRepo.EXPECT().
		RecordError(gomock.Any(), gomock.Any(), int64(8), 2, gomock.Any(), rows[2]).
		Return(nil)
	mockEventRepo.EXPECT().Finish(gomock.Any(), gomock.Any(), int64(8), 1, 2).Return(nil)

	filename := "kpis.csv"
	summary, err := svc.ImportBatch(context.Background(), "t-1", domain.ImportSourceCSV, rows, &filename)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.InsertedCount)
	assert.Equal(t, 2, summary.ErrorCount)
	assert.Equal(t, domain.ImportStatusPartial, summary.Status)
}

func TestImportBatch_AllRowsInvalid(t *testing.T) {
	svc, mockConn, mockTenantRepo, _, mockEventRepo := newImportService(t)

	rows := []domain.RawRow{
		{"date": "não é data"},
		{"date": "2026-01-16", "currency": "EURO"},
	}

	mockTenantRepo.EXPECT().Exists(gomock.Any(), "t-1").Return(true, nil)
	mockTenantRepo.EXPECT().GetDefaults(gomock.Any(), "t-1").Return(domain.SystemDefaults(), nil)
	passthroughTransaction(mockConn)

	mockEventRepo.EXPECT().
		Begin(gomock.Any(), gomock.Any(), "t-1", domain.ImportSourceWebhook, nil).
		Return(int64(9), nil)
	mockEventRepo.EXPECT().
		RecordError(gomock.Any(), gomock.Any(), int64(9), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)
	mockEventRepo.EXPECT().Finish(gomock.Any(), gomock.Any(), int64(9), 0, 2).Return(nil)

	summary, err := svc.ImportBatch(context.Background(), "t-1", domain.ImportSourceWebhook, rows, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.InsertedCount)
	assert.Equal(t, 2, summary.ErrorCount)
	assert.Equal(t, domain.ImportStatusFailed, summary.Status)
}

func TestImportBatch_DatabaseFaultAbortsBatch(t *testing.T) {
	svc, mockConn, mockTenantRepo, mockKpiRepo, mockEventRepo := newImportService(t)

	rows := []domain.RawRow{
		{"date": "2026-01-15", "revenue_cents": 200000},
	}

	mockTenantRepo.EXPECT().Exists(gomock.Any(), "t-1").Return(true, nil)
	mockTenantRepo.EXPECT().GetDefaults(gomock.Any(), "t-1").Return(domain.SystemDefaults(), nil)
	passthroughTransaction(mockConn)

	mockEventRepo.EXPECT().
		Begin(gomock.Any(), gomock.Any(), "t-1", domain.ImportSourceAPI, nil).
		Return(int64(10), nil)
	mockKpiRepo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	summary, err := svc.ImportBatch(context.Background(), "t-1", domain.ImportSourceAPI, rows, nil)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetKpiRange_UnknownTenant(t *testing.T) {
	svc, _, mockTenantRepo, _, _ := newImportService(t)

	mockTenantRepo.EXPECT().Exists(gomock.Any(), "t-missing").Return(false, nil)

	records, err := svc.GetKpiRange(context.Background(), "t-missing", testDate(t, "2026-01-01"), testDate(t, "2026-01-31"))

	assert.Nil(t, records)
	assert.ErrorIs(t, err, ErrUnknownTenant)
}

func testDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return date
}
