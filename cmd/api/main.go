package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fruit-shop-api/infrastructure/database/postgres"
	"github.com/vfg2006/fruit-shop-api/infrastructure/repository"
	"github.com/vfg2006/fruit-shop-api/internal/api"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/scheduler"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/authenticating"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/importing"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/inventory"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/selling"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/statistics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.WithFields(logrus.Fields{
		"log_level": logLevel.String(),
		"time_zone": cfg.App.Location.String(),
	}).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	itemRepo := repository.NewItemRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn, cfg.App.Location)
	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewStatisticsSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	inventoryService := inventory.NewService(itemRepo)
	sellingService := selling.NewService(saleRepo, itemRepo)
	importer := importing.NewImporter(itemRepo, saleRepo, cfg)
	statisticsService := statistics.NewService(saleRepo, cfg)

	snapshotService := scheduler.NewStatisticsSnapshotService(statisticsService, snapshotRepo, cfg)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de estatísticas")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:      authenticator,
		Inventory:          inventoryService,
		Selling:            sellingService,
		Importer:           importer,
		Statistics:         statisticsService,
		StatisticsSnapshot: snapshotService,
		Database:           pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
