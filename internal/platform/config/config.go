package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store and numbering backends selectable at start-up.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	DBMaxConns    int32
	LogLevel      string
	JWTSecret     string

	StoreDriver     string
	NumberingDriver string
	RedisURL        string
	RabbitMQURL     string
	EventsExchange  string

	JournalNumberPrefix  string
	FiscalYearStartMonth time.Month
	PostingTimeout       time.Duration

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("STORE_DRIVER", DriverPostgres)
	v.SetDefault("NUMBERING_DRIVER", DriverPostgres)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EVENTS_EXCHANGE", "ledger.journals")
	v.SetDefault("JOURNAL_NUMBER_PREFIX", "JV")
	v.SetDefault("FISCAL_YEAR_START_MONTH", 1)
	v.SetDefault("POSTING_TIMEOUT", "10s")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		DBMaxConns:          v.GetInt32("DB_MAX_CONNS"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		StoreDriver:         strings.ToLower(v.GetString("STORE_DRIVER")),
		NumberingDriver:     strings.ToLower(v.GetString("NUMBERING_DRIVER")),
		RedisURL:            v.GetString("REDIS_URL"),
		RabbitMQURL:         v.GetString("RABBITMQ_URL"),
		EventsExchange:      v.GetString("EVENTS_EXCHANGE"),
		JournalNumberPrefix: v.GetString("JOURNAL_NUMBER_PREFIX"),
		RateLimit:           v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_DRIVER is %q", DriverPostgres)
		}
	case DriverMemory:
		log.Println("Warning: STORE_DRIVER=memory, ledger data is not persisted.")
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	switch cfg.NumberingDriver {
	case DriverPostgres:
		if cfg.StoreDriver != DriverPostgres {
			cfg.NumberingDriver = DriverMemory
			log.Println("Warning: postgres numbering needs the postgres store. Falling back to in-process numbering.")
		}
	case DriverRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required when NUMBERING_DRIVER is %q", DriverRedis)
		}
	case DriverMemory:
		// the in-process counter restarts at 1 and would collide with persisted journal numbers
		if cfg.StoreDriver == DriverPostgres {
			return nil, fmt.Errorf("NUMBERING_DRIVER %q cannot be used with STORE_DRIVER %q", DriverMemory, DriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported NUMBERING_DRIVER %q", cfg.NumberingDriver)
	}

	month := v.GetInt("FISCAL_YEAR_START_MONTH")
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("FISCAL_YEAR_START_MONTH must be between 1 and 12, got %d", month)
	}
	cfg.FiscalYearStartMonth = time.Month(month)

	timeoutStr := v.GetString("POSTING_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for POSTING_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.PostingTimeout = timeout

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET is the built-in default. Set a real secret in production.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o := strings.TrimSpace(origin); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}
