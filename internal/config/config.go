package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Thresholds        Thresholds        `mapstructure:",squash"`
	Advisory          Advisory          `mapstructure:",squash"`
	SnapshotSync      SnapshotSync      `mapstructure:",squash"`
	SellerRankingSync SellerRankingSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// SlowRequestMs é o limite para registrar uma requisição como lenta
	SlowRequestMs int `mapstructure:"slow_request_ms"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	// Enabled desligado usa os repositórios em memória
	Enabled bool `mapstructure:"database_enabled"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

// Thresholds são os limites de classificação da carteira e de alerta de custos
type Thresholds struct {
	StarMultiplier      float64 `mapstructure:"star_multiplier"`
	DeclineMultiplier   float64 `mapstructure:"decline_multiplier"`
	LogisticsWarningPct float64 `mapstructure:"logistics_warning_pct"`
	GoodsWarningPct     float64 `mapstructure:"goods_warning_pct"`
	// AnnualTarget zerado usa a soma da tabela de metas
	AnnualTarget float64 `mapstructure:"annual_target"`
}

type Advisory struct {
	URL            string `mapstructure:"advisory_url"`
	APIKey         string `mapstructure:"advisory_api_key"`
	Model          string `mapstructure:"advisory_model"`
	TimeoutSeconds int    `mapstructure:"advisory_timeout_seconds"`
	RetryMax       int    `mapstructure:"advisory_retry_max"`
	Enabled        bool   `mapstructure:"advisory_enabled"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

type SellerRankingSync struct {
	CronSchedule  string `mapstructure:"seller_ranking_sync_cron"`
	Enabled       bool   `mapstructure:"seller_ranking_sync_enabled"`
	MonthLookBack int    `mapstructure:"seller_ranking_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "") // vazio usa as origens padrão do painel
	viper.SetDefault("SLOW_REQUEST_MS", 500)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ENABLED", true)

	viper.SetDefault("STAR_MULTIPLIER", domain.DefaultStarMultiplier)
	viper.SetDefault("DECLINE_MULTIPLIER", domain.DefaultDeclineMultiplier)
	viper.SetDefault("LOGISTICS_WARNING_PCT", domain.DefaultLogisticsWarningPct)
	viper.SetDefault("GOODS_WARNING_PCT", domain.DefaultGoodsWarningPct)
	viper.SetDefault("ANNUAL_TARGET", 0) // 0 = soma das metas mensais

	viper.SetDefault("ADVISORY_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("ADVISORY_API_KEY", "")
	viper.SetDefault("ADVISORY_MODEL", "gemini-2.0-flash")
	viper.SetDefault("ADVISORY_TIMEOUT_SECONDS", 30)
	viper.SetDefault("ADVISORY_RETRY_MAX", 2)
	viper.SetDefault("ADVISORY_ENABLED", false)

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "*/1 * * * *") // A cada minuto
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", true)

	viper.SetDefault("SELLER_RANKING_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SELLER_RANKING_SYNC_ENABLED", false)
	viper.SetDefault("SELLER_RANKING_SYNC_MONTH_LOOKBACK", 1) // Recalcula também o mês anterior

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Domain converte os limites configurados; valores não positivos voltam ao padrão
func (t Thresholds) Domain(targets domain.TargetTable) domain.Thresholds {
	thresholds := domain.DefaultThresholds(targets)

	apply := func(name string, value float64, dst *float64) {
		if value > 0 {
			*dst = value
			return
		}
		logrus.WithFields(logrus.Fields{
			"threshold": name,
			"value":     value,
			"default":   *dst,
		}).Warn("config: limite inválido, usando valor padrão")
	}

	apply("star_multiplier", t.StarMultiplier, &thresholds.StarMultiplier)
	apply("decline_multiplier", t.DeclineMultiplier, &thresholds.DeclineMultiplier)
	apply("logistics_warning_pct", t.LogisticsWarningPct, &thresholds.LogisticsWarningPct)
	apply("goods_warning_pct", t.GoodsWarningPct, &thresholds.GoodsWarningPct)

	if t.AnnualTarget > 0 {
		thresholds.AnnualTarget = t.AnnualTarget
	}

	return thresholds
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
