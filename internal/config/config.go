package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Statistics         Statistics         `mapstructure:",squash"`
	Import             Import             `mapstructure:",squash"`
	StatisticsSnapshot StatisticsSnapshot `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	TimeZone string         `mapstructure:"time_zone"`
	Location *time.Location `mapstructure:"-"`
}

type Statistics struct {
	DefaultMonthSpan int `mapstructure:"statistics_default_month_span"`
	DefaultDaySpan   int `mapstructure:"statistics_default_day_span"`
}

type Import struct {
	MaxUploadBytes int64 `mapstructure:"import_max_upload_bytes"`
}

type StatisticsSnapshot struct {
	CronSchedule  string `mapstructure:"statistics_snapshot_cron"`
	Enabled       bool   `mapstructure:"statistics_snapshot_enabled"`
	MonthSpan     int    `mapstructure:"statistics_snapshot_month_span"`
	DaySpan       int    `mapstructure:"statistics_snapshot_day_span"`
	RetentionDays int    `mapstructure:"statistics_snapshot_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/fruitshop?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIME_ZONE", "Local")

	// Janelas padrão do relatório de estatísticas
	viper.SetDefault("STATISTICS_DEFAULT_MONTH_SPAN", 3)
	viper.SetDefault("STATISTICS_DEFAULT_DAY_SPAN", 3)

	viper.SetDefault("IMPORT_MAX_UPLOAD_BYTES", 10<<20) // 10 MB

	// Defaults para o snapshot diário das estatísticas
	viper.SetDefault("STATISTICS_SNAPSHOT_CRON", "0 1 * * *")  // Todos os dias à 1h da manhã
	viper.SetDefault("STATISTICS_SNAPSHOT_ENABLED", false)     // Habilitar snapshot diário
	viper.SetDefault("STATISTICS_SNAPSHOT_MONTH_SPAN", 12)     // 12 meses no snapshot
	viper.SetDefault("STATISTICS_SNAPSHOT_DAY_SPAN", 31)       // 31 dias no snapshot
	viper.SetDefault("STATISTICS_SNAPSHOT_RETENTION_DAYS", 90) // Manter snapshots por 90 dias
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(config.App.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", config.App.TimeZone, err)
	}
	config.App.Location = location

	if config.Statistics.DefaultMonthSpan <= 0 || config.Statistics.DefaultDaySpan <= 0 {
		return nil, fmt.Errorf("janelas padrão de estatísticas devem ser positivas")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
