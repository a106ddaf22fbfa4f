package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	Platform PlatformConfig `mapstructure:"platform"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	UI       UIConfig       `mapstructure:"ui"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Log      LogConfig      `mapstructure:"log"`
}

// PlatformConfig describes where the platform web API lives and how to talk to it.
type PlatformConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	InitiatePath      string        `mapstructure:"initiate_path"`
	StatusPath        string        `mapstructure:"status_path"` // fmt pattern, %s = payload uuid
	LoginPath         string        `mapstructure:"login_path"`
	DataPath          string        `mapstructure:"data_path"`
	CSRFBootstrapPath string        `mapstructure:"csrf_bootstrap_path"`
	CSRFCookie        string        `mapstructure:"csrf_cookie"`
	CSRFHeader        string        `mapstructure:"csrf_header"`
	Timeout           time.Duration `mapstructure:"timeout"` // 0 = no client-side timeout
}

// StatusURLPath returns the status path for a payload uuid.
func (p PlatformConfig) StatusURLPath(uuid string) string {
	return fmt.Sprintf(p.StatusPath, uuid)
}

type PaymentConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Amount       string        `mapstructure:"amount"`   // optional, decimal string
	Currency     string        `mapstructure:"currency"` // optional
}

type UIConfig struct {
	QRPath string `mapstructure:"qr_path"`
	Color  bool   `mapstructure:"color"`
}

type RedisConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	CookieTTL time.Duration `mapstructure:"cookie_ttl"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"` // empty = metrics endpoint disabled
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: XPP_ (XRPL Payment Portal).
// Nested keys use underscore: XPP_PLATFORM_BASE_URL, XPP_PAYMENT_POLL_INTERVAL, etc.
func Load(path string) (*Config, error) {
	return LoadWith(viper.New(), path)
}

// LoadWith is Load on a caller-supplied viper instance, so command-line flags
// bound to v take precedence over env and file values.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("XPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional when env vars or flags suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Payment.PollInterval <= 0 {
		return nil, fmt.Errorf("payment.poll_interval must be positive, got %s", cfg.Payment.PollInterval)
	}
	cfg.Platform.BaseURL = strings.TrimRight(cfg.Platform.BaseURL, "/")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("platform.base_url", "http://localhost:8000")
	v.SetDefault("platform.initiate_path", "/api/v1/payments/initiate/")
	v.SetDefault("platform.status_path", "/api/v1/payments/status/%s/")
	v.SetDefault("platform.login_path", "/api/key-login/")
	v.SetDefault("platform.data_path", "/api/data/")
	v.SetDefault("platform.csrf_bootstrap_path", "/payment/")
	v.SetDefault("platform.csrf_cookie", "csrftoken")
	v.SetDefault("platform.csrf_header", "X-CSRFToken")
	v.SetDefault("platform.timeout", "0s")
	v.SetDefault("payment.poll_interval", "2s")
	v.SetDefault("payment.amount", "")
	v.SetDefault("payment.currency", "")
	v.SetDefault("ui.qr_path", "payment-qr.png")
	v.SetDefault("ui.color", true)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cookie_ttl", "24h")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "xrpl_portal")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}
