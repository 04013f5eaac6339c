package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/scheduler"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/statistics"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
	"github.com/vfg2006/fruit-shop-api/pkg/utils"
)

// GetStatistics retorna os relatórios mensal e diário (?months=&days=, padrão da configuração)
func GetStatistics(service statistics.StatisticsService, cfg config.Statistics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		monthSpan, err := utils.ParseOptionalInt(query.Get("months"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Quantidade de meses inválida", nil)
			return
		}
		if query.Get("months") == "" {
			monthSpan = cfg.DefaultMonthSpan
		}

		daySpan, err := utils.ParseOptionalInt(query.Get("days"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Quantidade de dias inválida", nil)
			return
		}
		if query.Get("days") == "" {
			daySpan = cfg.DefaultDaySpan
		}

		result, err := service.GetStatistics(monthSpan, daySpan)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// GetLatestStatisticsSnapshot retorna o último snapshot gravado pelo agendador
func GetLatestStatisticsSnapshot(service *scheduler.StatisticsSnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.GetLatestSnapshot()
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar snapshot de estatísticas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot de estatísticas", nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum snapshot de estatísticas encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
