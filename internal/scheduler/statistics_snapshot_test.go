package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fruit-shop-api/infrastructure/repository/mocks"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	statisticsmocks "github.com/vfg2006/fruit-shop-api/internal/usecases/statistics/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Location = time.UTC
	cfg.StatisticsSnapshot = config.StatisticsSnapshot{
		CronSchedule:  "0 1 * * *",
		Enabled:       true,
		MonthSpan:     12,
		DaySpan:       31,
		RetentionDays: 90,
	}
	return cfg
}

func TestStatisticsSnapshotService_SnapshotStatistics(t *testing.T) {
	generatedAt := time.Date(2019, 3, 2, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setup     func(stats *statisticsmocks.MockStatisticsService, repo *mocks.MockStatisticsSnapshotRepository)
		wantError bool
	}{
		{
			name: "grava o snapshot do dia e remove os antigos",
			setup: func(stats *statisticsmocks.MockStatisticsService, repo *mocks.MockStatisticsSnapshotRepository) {
				stats.EXPECT().GetStatistics(12, 31).Return(&domain.SalesStatistics{GrandTotal: 350, GeneratedAt: generatedAt}, nil)
				repo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(snapshot *domain.StatisticsSnapshot) error {
					assert.Equal(t, time.Date(2019, 3, 2, 0, 0, 0, 0, time.UTC), snapshot.Date)
					assert.Equal(t, int64(350), snapshot.Statistics.GrandTotal)
					return nil
				})
				repo.EXPECT().DeleteOlderThan(90).Return(int64(2), nil)
			},
		},
		{
			name: "falha ao calcular não grava nada",
			setup: func(stats *statisticsmocks.MockStatisticsService, repo *mocks.MockStatisticsSnapshotRepository) {
				stats.EXPECT().GetStatistics(12, 31).Return(nil, errors.New("banco indisponível"))
			},
			wantError: true,
		},
		{
			name: "falha na limpeza não invalida o snapshot",
			setup: func(stats *statisticsmocks.MockStatisticsService, repo *mocks.MockStatisticsSnapshotRepository) {
				stats.EXPECT().GetStatistics(12, 31).Return(&domain.SalesStatistics{GeneratedAt: generatedAt}, nil)
				repo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
				repo.EXPECT().DeleteOlderThan(90).Return(int64(0), errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			stats := statisticsmocks.NewMockStatisticsService(ctrl)
			repo := mocks.NewMockStatisticsSnapshotRepository(ctrl)
			tt.setup(stats, repo)

			service := NewStatisticsSnapshotService(stats, repo, newTestConfig())
			ran := service.SnapshotStatistics()
			require.True(t, ran)

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			if tt.wantError {
				assert.NotEmpty(t, status["last_sync_error"])
			} else {
				assert.Empty(t, status["last_sync_error"])
			}
		})
	}
}

func TestStatisticsSnapshotService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewStatisticsSnapshotService(
		statisticsmocks.NewMockStatisticsService(ctrl),
		mocks.NewMockStatisticsSnapshotRepository(ctrl),
		newTestConfig(),
	)

	service.syncRunning = true
	assert.False(t, service.SnapshotStatistics())

	// solicitação manual também é ignorada sem chamar o serviço
	service.TriggerManualSync()
	assert.Equal(t, true, service.GetStatus()["sync_running"])
}

func TestStatisticsSnapshotService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig()
	cfg.StatisticsSnapshot.Enabled = false

	service := NewStatisticsSnapshotService(
		statisticsmocks.NewMockStatisticsService(ctrl),
		mocks.NewMockStatisticsSnapshotRepository(ctrl),
		cfg,
	)

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
