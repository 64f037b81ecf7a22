package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	App     AppConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Session SessionConfig
	Redis   RedisConfig
	Outbox  OutboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// AppConfig holds business settings. TimeZone decides what "today" means for date validation.
type AppConfig struct {
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Asia/Tokyo"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
	// File enables rotated file output in addition to stdout when set.
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"1h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type SessionConfig struct {
	// Store is "memory" or "redis".
	Store           string        `envconfig:"SEARCH_SESSION_STORE" default:"memory"`
	TTL             time.Duration `envconfig:"SEARCH_SESSION_TTL" default:"30m"`
	JanitorInterval time.Duration `envconfig:"SEARCH_SESSION_JANITOR_INTERVAL" default:"1m"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type OutboxConfig struct {
	Enabled      bool          `envconfig:"OUTBOX_RELAY_ENABLED" default:"false"`
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic        string        `envconfig:"KAFKA_RESERVATION_TOPIC" default:"reservation-events"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"20"`
	MaxAttempts  int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the zone database lacks the configured name.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Session.Store != SessionStoreMemory && cfg.Session.Store != SessionStoreRedis {
		return Config{}, fmt.Errorf("unsupported SEARCH_SESSION_STORE %q", cfg.Session.Store)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		App: AppConfig{
			TimeZone: "Asia/Tokyo",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 20,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-testing-only",
			AccessTokenDuration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Session: SessionConfig{
			Store:           SessionStoreMemory,
			TTL:             30 * time.Minute,
			JanitorInterval: time.Minute,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Outbox: OutboxConfig{
			Enabled:      false,
			Brokers:      []string{"localhost:9092"},
			Topic:        "reservation-events",
			PollInterval: time.Second,
			BatchSize:    20,
			MaxAttempts:  10,
		},
	}
}
