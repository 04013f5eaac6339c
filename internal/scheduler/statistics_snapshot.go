package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/infrastructure/repository"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/statistics"
)

// StatisticsSnapshotConfig representa a configuração do agendador de snapshots de estatísticas
type StatisticsSnapshotConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthSpan     int
	DaySpan       int
	RetentionDays int
}

// StatisticsSnapshotService grava periodicamente o relatório de estatísticas de vendas
type StatisticsSnapshotService struct {
	scheduler           *gocron.Scheduler
	config              StatisticsSnapshotConfig
	location            *time.Location
	statisticsService   statistics.StatisticsService
	snapshotRepo        repository.StatisticsSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewStatisticsSnapshotService(
	statisticsService statistics.StatisticsService,
	snapshotRepo repository.StatisticsSnapshotRepository,
	appConfig *config.Config,
) *StatisticsSnapshotService {
	snapshotConfig := StatisticsSnapshotConfig{
		CronSchedule:  appConfig.StatisticsSnapshot.CronSchedule,
		SyncEnabled:   appConfig.StatisticsSnapshot.Enabled,
		MonthSpan:     appConfig.StatisticsSnapshot.MonthSpan,
		DaySpan:       appConfig.StatisticsSnapshot.DaySpan,
		RetentionDays: appConfig.StatisticsSnapshot.RetentionDays,
	}

	location := time.Local
	if appConfig.App.Location != nil {
		location = appConfig.App.Location
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  snapshotConfig.CronSchedule,
		"sync_enabled":   snapshotConfig.SyncEnabled,
		"month_span":     snapshotConfig.MonthSpan,
		"day_span":       snapshotConfig.DaySpan,
		"retention_days": snapshotConfig.RetentionDays,
	}).Info("Configuração do agendador de snapshots de estatísticas carregada")

	return &StatisticsSnapshotService{
		scheduler:         gocron.NewScheduler(location),
		config:            snapshotConfig,
		location:          location,
		statisticsService: statisticsService,
		snapshotRepo:      snapshotRepo,
	}
}

// Start inicia o agendador
func (s *StatisticsSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot de estatísticas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de estatísticas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SnapshotStatistics()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de estatísticas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de estatísticas")
		s.scheduler.Stop()
	}()

	return nil
}

// SnapshotStatistics calcula o relatório e grava o snapshot do dia. Execuções
// concorrentes são ignoradas; retorna false quando outra execução já estava em andamento.
func (s *StatisticsSnapshotService) SnapshotStatistics() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de estatísticas já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	err := s.snapshot()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	return true
}

func (s *StatisticsSnapshotService) snapshot() error {
	startTime := time.Now()

	result, err := s.statisticsService.GetStatistics(s.config.MonthSpan, s.config.DaySpan)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular estatísticas para snapshot")
		return err
	}

	generatedAt := result.GeneratedAt.In(s.location)
	snapshot := &domain.StatisticsSnapshot{
		Date:       time.Date(generatedAt.Year(), generatedAt.Month(), generatedAt.Day(), 0, 0, 0, 0, s.location),
		Statistics: result,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshot de estatísticas")
		return err
	}

	if s.config.RetentionDays > 0 {
		removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			// o snapshot do dia já foi gravado; a limpeza fica para a próxima execução
			logrus.WithError(err).Warn("Erro ao remover snapshots antigos")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Snapshots antigos removidos")
		}
	}

	logrus.WithFields(logrus.Fields{
		"date":        snapshot.Date.Format(time.DateOnly),
		"grand_total": result.GrandTotal,
		"duration":    time.Since(startTime).String(),
	}).Info("Snapshot de estatísticas concluído")

	return nil
}

// TriggerManualSync executa o snapshot imediatamente em segundo plano
func (s *StatisticsSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de estatísticas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de estatísticas")
	go s.SnapshotStatistics()
}

// GetStatus retorna o status atual do agendador
func (s *StatisticsSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}

// GetLatestSnapshot retorna o snapshot mais recente, ou nil se nenhum foi gravado
func (s *StatisticsSnapshotService) GetLatestSnapshot() (*domain.StatisticsSnapshot, error) {
	return s.snapshotRepo.GetLatest()
}
