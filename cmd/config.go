package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"fooddelivery/internal/core/application/tracking"
	"fooddelivery/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EventsMemory = "memory"
	EventsRedis  = "redis"
)

// Config is read from the environment, optionally seeded from a .env file.
// Keys are the upper-cased mapstructure names, e.g. DB_HOST or
// TRACKING_QUEUE_SIZE.
type Config struct {
	HTTPPort        string        `mapstructure:"http_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	LogLevel        string        `mapstructure:"log_level"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`

	// EventsType selects how status changes reach watchers: "memory" keeps
	// them in this process, "redis" relays them through REDIS_URL so every
	// instance sees them.
	EventsType string `mapstructure:"events_type"`
	RedisURL   string `mapstructure:"redis_url"`

	TrackingQueueSize    int           `mapstructure:"tracking_queue_size"`
	TrackingWriteTimeout time.Duration `mapstructure:"tracking_write_timeout"`
	TrackingPingInterval time.Duration `mapstructure:"tracking_ping_interval"`
	TrackingIdleTimeout  time.Duration `mapstructure:"tracking_idle_timeout"`
	TrackingRequireAuth  bool          `mapstructure:"tracking_require_auth"`

	// AdminUsername and AdminPassword create a staff account at startup
	// when it does not exist yet.
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

// SetDefaults registers every key with viper so AutomaticEnv can find it.
func (c *Config) SetDefaults(v *viper.Viper) {
	v.SetDefault("http_port", "8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("log_level", "info")

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "delivery")
	v.SetDefault("db_sslmode", "disable")

	v.SetDefault("events_type", EventsMemory)
	v.SetDefault("redis_url", "redis://localhost:6379/0")

	defaults := tracking.DefaultConfig()
	v.SetDefault("tracking_queue_size", defaults.QueueSize)
	v.SetDefault("tracking_write_timeout", defaults.WriteTimeout.String())
	v.SetDefault("tracking_ping_interval", defaults.PingInterval.String())
	v.SetDefault("tracking_idle_timeout", defaults.IdleTimeout.String())
	v.SetDefault("tracking_require_auth", false)

	v.SetDefault("admin_username", "")
	v.SetDefault("admin_password", "")
}

// LoadConfig loads envFile into the process environment when it exists and
// reads the configuration from the environment.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	cfg := Config{}
	cfg.SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var eventsErr, redisErr, adminErr error
	switch c.EventsType {
	case EventsMemory:
	case EventsRedis:
		if c.RedisURL == "" {
			redisErr = errs.NewValueIsRequiredError("REDIS_URL")
		}
	default:
		eventsErr = errs.NewValueIsInvalidErrorWithCause("EVENTS_TYPE",
			fmt.Errorf("%q is neither %q nor %q", c.EventsType, EventsMemory, EventsRedis))
	}
	if (c.AdminUsername == "") != (c.AdminPassword == "") {
		adminErr = errs.NewValueIsRequiredErrorWithCause("ADMIN_USERNAME/ADMIN_PASSWORD",
			errors.New("set both or neither"))
	}

	return errors.Join(eventsErr, redisErr, adminErr, c.TrackingConfig().Validate())
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) TrackingConfig() tracking.Config {
	return tracking.Config{
		QueueSize:    c.TrackingQueueSize,
		WriteTimeout: c.TrackingWriteTimeout,
		PingInterval: c.TrackingPingInterval,
		IdleTimeout:  c.TrackingIdleTimeout,
	}
}

// SlogLevel parses LOG_LEVEL, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
