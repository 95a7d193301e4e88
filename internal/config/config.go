package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Env     string        `mapstructure:"env"`
	Server  ServerConfig  `mapstructure:"http_server"`
	Storage StorageConfig `mapstructure:"storage"`
	Pg      PgConfig      `mapstructure:"postgres"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Gateway GatewayConfig `mapstructure:"admin_gateway"`
	Auth    AuthConfig    `mapstructure:"auth"`
}

type ServerConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type PgConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	Db             string `mapstructure:"db"`
	SSLMode        string `mapstructure:"sslmode"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

// DSN builds a postgres:// connection string
func (p PgConfig) DSN() string {
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     "/" + p.Db,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

type MongoConfig struct {
	URL            string        `mapstructure:"url"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	RetryAttempts  int           `mapstructure:"retry_attempts"`
	RetryInterval  time.Duration `mapstructure:"retry_interval"`
}

// GatewayConfig - admin gateway (car service) access
type GatewayConfig struct {
	URL        string        `mapstructure:"url"`
	Email      string        `mapstructure:"email"`
	Password   string        `mapstructure:"password"`
	AuthCookie string        `mapstructure:"auth_cookie"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type AuthConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"env":                      "APP_ENV",
	"http_server.port":         "PORT",
	"storage.driver":           "DB_DRIVER",
	"postgres.host":            "POSTGRES_HOST",
	"postgres.port":            "POSTGRES_PORT",
	"postgres.user":            "POSTGRES_USER",
	"postgres.password":        "POSTGRES_PASSWORD",
	"postgres.db":              "POSTGRES_DB",
	"postgres.auto_migrate":    "POSTGRES_AUTO_MIGRATE",
	"postgres.migrations_path": "POSTGRES_MIGRATIONS_PATH",
	"mongo.url":                "MONGODB_URL",
	"mongo.database":           "MONGODB_DATABASE",
	"admin_gateway.url":        "ADMIN_GATEWAY_URL",
	"admin_gateway.email":      "ADMIN_EMAIL",
	"admin_gateway.password":   "ADMIN_PASSWORD",
	"admin_gateway.timeout":    "ADMIN_GATEWAY_TIMEOUT",
	"auth.secret_key":          "SECRET_KEY",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("http_server.host", "0.0.0.0")
	v.SetDefault("http_server.port", 5006)
	v.SetDefault("http_server.timeout", 10*time.Second)
	v.SetDefault("storage.driver", DriverPostgres)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.migrations_path", "migrations")
	v.SetDefault("mongo.database", "car_subscriptions")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)
	v.SetDefault("mongo.retry_attempts", 3)
	v.SetDefault("mongo.retry_interval", 2*time.Second)
	v.SetDefault("admin_gateway.auth_cookie", "Authorization")
	v.SetDefault("admin_gateway.timeout", 10*time.Second)
}

func resolvePath(cwd, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	if up, ok := findUp(cwd, p, 8); ok {
		return up
	}
	return filepath.Join(cwd, p)
}

func findUp(start, rel string, max int) (string, bool) {
	dir := start
	for i := 0; i <= max; i++ {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// LoadConfig reads .env, then the YAML file with ${VAR} expansion, then env overrides.
// A missing YAML file is not an error: defaults and the environment are enough to run.
func LoadConfig() (*Config, error) {
	cwd, _ := os.Getwd()

	envPath := os.Getenv("CONFIG_ENV_PATH")
	if envPath == "" {
		if up, ok := findUp(cwd, ".env", 8); ok {
			if st, err := os.Stat(up); err == nil && !st.IsDir() {
				envPath = up
			}
		}
	} else {
		envPath = resolvePath(cwd, envPath)
	}
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if up, ok := findUp(cwd, "configs/local.yaml", 8); ok {
			path = up
		}
	} else {
		path = resolvePath(cwd, path)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigType("yaml")
		if err := v.ReadConfig(strings.NewReader(os.ExpandEnv(string(raw)))); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverPostgres
	}
	if cfg.Storage.Driver != DriverPostgres && cfg.Storage.Driver != DriverMongo {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("http port %d out of range 1..65535", cfg.Server.Port)
	}
	if cfg.Pg.MigrationsPath != "" {
		cfg.Pg.MigrationsPath = resolvePath(cwd, cfg.Pg.MigrationsPath)
	}
	return &cfg, nil
}
