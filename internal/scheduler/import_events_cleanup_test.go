package scheduler

import (
	"context"
	"testing"

	"github.com/futurewise/futurewise-api/infrastructure/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCleanupService(t *testing.T, retentionDays int) (*ImportEventsCleanupService, *mocks.MockImportEventRepository) {
	ctrl := gomock.NewController(t)

	mockEventRepo := mocks.NewMockImportEventRepository(ctrl)
	svc := &ImportEventsCleanupService{
		eventRepo: mockEventRepo,
		config: ImportEventsCleanupConfig{
			CronSchedule:  "0 4 * * *",
			Enabled:       true,
			RetentionDays: retentionDays,
		},
	}

	return svc, mockEventRepo
}

func TestCleanupImportEvents(t *testing.T) {
	svc, mockEventRepo := newCleanupService(t, 90)

	mockEventRepo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(12), nil)

	err := svc.CleanupImportEvents(context.Background())

	require.NoError(t, err)

	status := svc.GetStatus()
	assert.Equal(t, int64(12), status["last_deleted_count"])
	assert.Equal(t, 90, status["retention_days"])
	assert.Equal(t, true, status["cleanup_enabled"])
}

func TestCleanupImportEvents_RepositoryError(t *testing.T) {
	svc, mockEventRepo := newCleanupService(t, 30)

	mockEventRepo.EXPECT().DeleteOlderThan(gomock.Any(), 30).Return(int64(0), assert.AnError)

	err := svc.CleanupImportEvents(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}

func TestCleanupImportEvents_SkipsConcurrentRun(t *testing.T) {
	svc, mockEventRepo := newCleanupService(t, 90)

	// Com uma execução marcada como em andamento, a segunda passada é
	// descartada sem tocar no repositório.
	svc.runRunning = true
	mockEventRepo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CleanupImportEvents(context.Background())

	assert.NoError(t, err)
}
