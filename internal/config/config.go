package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Port string

	DbDriver    string // postgres|mongo
	DatabaseURL string
	DbHost      string
	DbPort      string
	DbUser      string
	DbPass      string
	DbName      string
	DbSSLMode   string
	MongoDB     string

	Log      string
	LogLevel string
	Env      string // dev|prod

	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	shutdown, err := time.ParseDuration(def(os.Getenv("SHUTDOWN_TIMEOUT"), "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		DbDriver:    strings.ToLower(def(os.Getenv("DB_DRIVER"), DriverPostgres)),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DbHost:      os.Getenv("DB_HOST"),
		DbPort:      def(os.Getenv("DB_PORT"), "5432"),
		DbUser:      os.Getenv("DB_USER"),
		DbPass:      os.Getenv("DB_PASSWORD"),
		DbName:      os.Getenv("DB_NAME"),
		DbSSLMode:   def(os.Getenv("DB_SSLMODE"), "disable"),
		MongoDB:     def(os.Getenv("MONGO_DB"), "blog"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		CORSOrigins:     splitList(def(os.Getenv("CORS_ORIGINS"), "*")),
		ShutdownTimeout: shutdown,
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	switch c.DbDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" && (c.DbHost == "" || c.DbUser == "" || c.DbName == "") {
			return nil, fmt.Errorf("incomplete DB config (DATABASE_URL or DB_HOST/DB_USER/DB_NAME)")
		}
	case DriverMongo:
		if c.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the mongo driver")
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", c.DbDriver)
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}
	for _, o := range c.CORSOrigins {
		if o == "*" && c.Env == "prod" {
			warnings = append(warnings, "CORS allows any origin in prod")
			break
		}
	}

	return warnings, nil
}

// GetDSN — строка подключения к хранилищу (DATABASE_URL имеет приоритет)
func (c *Config) GetDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	dsn := c.GetDSN()
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return dsn
	}
	creds, host, ok := strings.Cut(rest, "@")
	if !ok {
		return dsn
	}
	user, _, hasPass := strings.Cut(creds, ":")
	if !hasPass {
		return dsn
	}
	return scheme + "://" + user + ":***@" + host
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
