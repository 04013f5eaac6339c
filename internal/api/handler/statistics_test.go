package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/statistics"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/statistics/mocks"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetStatistics(t *testing.T) {
	cfg := config.Statistics{DefaultMonthSpan: 3, DefaultDaySpan: 3}

	tests := []struct {
		name       string
		query      string
		setupMock  func(service *mocks.MockStatisticsService)
		wantStatus int
		wantCode   string
	}{
		{
			name:  "usa janelas padrão sem parâmetros",
			query: "",
			setupMock: func(service *mocks.MockStatisticsService) {
				service.EXPECT().GetStatistics(3, 3).Return(&domain.SalesStatistics{GrandTotal: 350, MonthSpan: 3, DaySpan: 3}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "repassa janelas informadas",
			query: "?months=12&days=7",
			setupMock: func(service *mocks.MockStatisticsService) {
				service.EXPECT().GetStatistics(12, 7).Return(&domain.SalesStatistics{MonthSpan: 12, DaySpan: 7}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "meses não numérico",
			query:      "?months=abc",
			setupMock:  func(service *mocks.MockStatisticsService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:  "janela zero rejeitada pelo serviço",
			query: "?days=0",
			setupMock: func(service *mocks.MockStatisticsService) {
				service.EXPECT().GetStatistics(3, 0).Return(nil, statistics.NewStatisticsError(statistics.ErrInvalidSpan, apiErrors.ErrInvalidFormat, "days"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockStatisticsService(ctrl)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodGet, "/v1/statistics"+tt.query, nil)
			rec := httptest.NewRecorder()
			GetStatistics(service, cfg)(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
				return
			}

			var result domain.SalesStatistics
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		})
	}
}
