package config

import "fmt"

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Store         StoreConfig         `mapstructure:"store"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// StoreConfig selects the backing key-value store for record slots.
// Backend is one of "memory", "file", "redis".
type StoreConfig struct {
	Backend string          `mapstructure:"backend"`
	File    FileStoreConfig `mapstructure:"file"`
}

type FileStoreConfig struct {
	Dir string `mapstructure:"dir"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

// AuthConfig carries the static credential list. The login check is a plain
// credential match against this list; it is not a security boundary.
type AuthConfig struct {
	Users []UserCredential `mapstructure:"users"`
}

type UserCredential struct {
	ID        string `mapstructure:"id"`
	Role      string `mapstructure:"role"`
	Email     string `mapstructure:"email"`
	Password  string `mapstructure:"password"`
	Name      string `mapstructure:"name"`
	PatientID string `mapstructure:"patient_id"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/app.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	Username string `mapstructure:"username"` // for Grafana Cloud basic auth
	Password string `mapstructure:"password"`
}

type ObservabilityConfig struct {
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// DefaultUsers is the credential list used when the config supplies none.
// It mirrors the fixed accounts the seeded record set expects.
func DefaultUsers() []UserCredential {
	return []UserCredential{
		{ID: "1", Role: "Admin", Email: "admin@entnt.in", Password: "admin123", Name: "Dr. Admin"},
		{ID: "2", Role: "Patient", Email: "patient1@entnt.in", Password: "patient123", Name: "Patient 1", PatientID: "p1"},
	}
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "", "memory", "file", "redis":
	default:
		return fmt.Errorf("store.backend must be memory, file or redis, got %q", c.Store.Backend)
	}
	if c.Store.Backend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("store.backend is redis but redis.addr is empty")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	return nil
}
