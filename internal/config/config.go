package config

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/i18n"

	"github.com/spf13/viper"
)

// 開発用の署名シークレット（prodでは使えない）
const DevSessionSecret = "dev_session_secret_change_me"

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod

	LogLevel      string      // debug/info/warn/error
	DefaultLocale i18n.Locale // 翻訳のフォールバック言語

	PaymentDelay        time.Duration // 決済シミュレーションの待ち時間
	SuccessDisplayDelay time.Duration // 成功表示からリセットまで

	SessionSecret        string        // セッションcookieの署名
	SessionTTL           time.Duration // 無操作で破棄するまで
	SessionSweepInterval time.Duration // 掃除の間隔

	CatalogSource string // memory/postgres

	DatabaseURL      string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	KafkaBrokers     []string // 空ならKafka通知は無効
	KafkaNotifyTopic string

	FEURL string // フロントURL（CORSで使う）
}

const (
	CatalogMemory   = "memory"
	CatalogPostgres = "postgres"
)

func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}

// Loadは環境変数（.envはmainで読み込み済み）
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GO_ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_LOCALE", "en")
	v.SetDefault("PAYMENT_DELAY", "2s")
	v.SetDefault("SUCCESS_DISPLAY_DELAY", "2s")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "1m")
	v.SetDefault("CATALOG_SOURCE", CatalogMemory)
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_DB", "storefront")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("KAFKA_NOTIFY_TOPIC", "storefront.notifications")
	v.SetDefault("FE_URL", "http://localhost:5173")

	v.AutomaticEnv()

	locale, ok := i18n.ParseLocale(v.GetString("DEFAULT_LOCALE"))
	if !ok {
		return Config{}, fmt.Errorf("DEFAULT_LOCALE must be one of en/de/fr")
	}

	cfg := Config{
		Port:  strings.TrimPrefix(strings.TrimSpace(v.GetString("PORT")), ":"),
		GoEnv: strings.TrimSpace(v.GetString("GO_ENV")),

		LogLevel:      strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		DefaultLocale: locale,

		PaymentDelay:        v.GetDuration("PAYMENT_DELAY"),
		SuccessDisplayDelay: v.GetDuration("SUCCESS_DISPLAY_DELAY"),

		SessionSecret:        v.GetString("SESSION_SECRET"),
		SessionTTL:           v.GetDuration("SESSION_TTL"),
		SessionSweepInterval: v.GetDuration("SESSION_SWEEP_INTERVAL"),

		CatalogSource: strings.ToLower(strings.TrimSpace(v.GetString("CATALOG_SOURCE"))),

		DatabaseURL:      strings.TrimSpace(v.GetString("DATABASE_URL")),
		PostgresUser:     v.GetString("POSTGRES_USER"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
		PostgresHost:     v.GetString("POSTGRES_HOST"),
		PostgresPort:     v.GetInt("POSTGRES_PORT"),
		PostgresSSLMode:  v.GetString("POSTGRES_SSLMODE"),

		KafkaBrokers:     splitCSV(v.GetString("KAFKA_BROKERS")),
		KafkaNotifyTopic: strings.TrimSpace(v.GetString("KAFKA_NOTIFY_TOPIC")),

		FEURL: strings.TrimSpace(v.GetString("FE_URL")),
	}

	if cfg.SessionSecret == "" && !cfg.IsProd() {
		cfg.SessionSecret = DevSessionSecret
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// 必須チェック
func (c Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	switch c.GoEnv {
	case "dev", "prod", "test":
	default:
		return fmt.Errorf("GO_ENV must be dev/prod/test")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug/info/warn/error")
	}
	if c.PaymentDelay < 0 {
		return fmt.Errorf("PAYMENT_DELAY must be >= 0")
	}
	if c.SuccessDisplayDelay < 0 {
		return fmt.Errorf("SUCCESS_DISPLAY_DELAY must be >= 0")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.IsProd() && c.SessionSecret == DevSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be changed in prod")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be > 0")
	}

	switch c.CatalogSource {
	case CatalogMemory:
	case CatalogPostgres:
		if c.DatabaseURL == "" && (c.PostgresHost == "" || c.PostgresDB == "") {
			return fmt.Errorf("DATABASE_URL or POSTGRES_HOST/POSTGRES_DB is required for postgres catalog")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be memory/postgres")
	}

	if len(c.KafkaBrokers) > 0 && c.KafkaNotifyTopic == "" {
		return fmt.Errorf("KAFKA_NOTIFY_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

func splitCSV(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
