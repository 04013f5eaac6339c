package statistics

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/infrastructure/repository"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
)

type StatisticsService interface {
	// GetStatistics calcula os relatórios dos últimos monthSpan meses e daySpan dias
	// relativos ao instante da chamada, além do total geral de todas as vendas
	GetStatistics(monthSpan, daySpan int) (*domain.SalesStatistics, error)
}

type Service struct {
	saleRepository repository.SaleRepository
	location       *time.Location
	now            func() time.Time
}

func NewService(saleRepository repository.SaleRepository, cfg *config.Config) *Service {
	location := time.Local
	if cfg != nil && cfg.App.Location != nil {
		location = cfg.App.Location
	}

	return &Service{
		saleRepository: saleRepository,
		location:       location,
		now:            time.Now,
	}
}

// WithClock substitui o relógio usado como âncora das janelas
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetStatistics(monthSpan, daySpan int) (*domain.SalesStatistics, error) {
	if monthSpan <= 0 || daySpan <= 0 {
		return nil, NewStatisticsError(ErrInvalidSpan, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("meses=%d, dias=%d", monthSpan, daySpan))
	}

	anchor := s.now().In(s.location)
	monthWindow := MonthWindow(anchor, monthSpan)
	dayWindow := DayWindow(anchor, daySpan)

	sales, err := s.saleRepository.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendas para estatísticas")
		return nil, NewStatisticsError(ErrFetchSales, apiErrors.ErrDatabaseOperation, err.Error())
	}

	monthly := Aggregate(monthWindow, sales, s.location)
	daily := Aggregate(dayWindow, sales, s.location)

	logrus.WithFields(logrus.Fields{
		"sales":       len(sales),
		"month_span":  monthSpan,
		"day_span":    daySpan,
		"grand_total": monthly.GrandTotal,
	}).Debug("Estatísticas de vendas calculadas")

	return &domain.SalesStatistics{
		GrandTotal:  monthly.GrandTotal,
		MonthSpan:   monthSpan,
		DaySpan:     daySpan,
		Monthly:     monthly.Reports,
		Daily:       daily.Reports,
		GeneratedAt: anchor,
	}, nil
}
