package repository

import (
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/fruit-shop-api/infrastructure/database/postgres"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	statisticsSnapshotsTable = "statistics_snapshots"
)

type StatisticsSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.StatisticsSnapshot) error
	GetLatest() (*domain.StatisticsSnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type statisticsSnapshotRepository struct {
	conn postgres.Queryer
}

func NewStatisticsSnapshotRepository(conn postgres.Queryer) StatisticsSnapshotRepository {
	return &statisticsSnapshotRepository{
		conn: conn,
	}
}

func (r *statisticsSnapshotRepository) SaveOrUpdate(snapshot *domain.StatisticsSnapshot) error {
	statisticsJSON, err := json.Marshal(snapshot.Statistics)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar estatísticas para JSON")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(statisticsSnapshotsTable).
		Columns("date", "statistics").
		Values(snapshot.Date.Format(time.DateOnly), statisticsJSON).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				statistics = EXCLUDED.statistics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(query, args...)
	return wrapDBError(err, "erro ao salvar snapshot de estatísticas")
}

func (r *statisticsSnapshotRepository) GetLatest() (*domain.StatisticsSnapshot, error) {
	query, args, err := squirrel.
		Select("id, date, statistics, created_at, updated_at").
		From(statisticsSnapshotsTable).
		OrderBy("date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	snapshot := &domain.StatisticsSnapshot{}
	var statisticsJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.Date,
		&statisticsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err, "erro ao buscar snapshot de estatísticas")
	}

	if statisticsJSON != nil {
		statistics := &domain.SalesStatistics{}
		if err := json.Unmarshal(statisticsJSON, statistics); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar JSON de statistics")
		}
		snapshot.Statistics = statistics
	}

	return snapshot, nil
}

func (r *statisticsSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(statisticsSnapshotsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, wrapDBError(err, "erro ao remover snapshots antigos")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}

	return rowsAffected, nil
}
