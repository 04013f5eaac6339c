package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/internal/api/handler"
	"github.com/vfg2006/fruit-shop-api/internal/api/handler/router"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/scheduler"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/authenticating"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/importing"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/inventory"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/selling"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/statistics"
	"github.com/vfg2006/fruit-shop-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator      authenticating.Authenticator
	Inventory          inventory.InventoryService
	Selling            selling.SellingService
	Importer           importing.SalesImporter
	Statistics         statistics.StatisticsService
	StatisticsSnapshot *scheduler.StatisticsSnapshotService
	Database           handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, errors.New("autenticador é obrigatório")
	}

	cronServices := handler.CronJobServices{
		StatisticsSnapshotService: services.StatisticsSnapshot,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Items(services.Inventory)...),
		router.WithRoutes(handler.Sales(services.Selling, services.Importer, cfg)...),
		router.WithRoutes(handler.Statistics(services.Statistics, services.StatisticsSnapshot, cfg)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
