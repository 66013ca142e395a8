package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, limits)
// -----------------------------------------------------------------------------

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Oracle    OracleConfig
	Assistant AssistantConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Admin     AdminConfig
	Seed      SeedConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER"`
	Password    string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// OracleConfig points at an OpenAI-compatible chat completions endpoint.
type OracleConfig struct {
	BaseURL     string        `envconfig:"ORACLE_BASE_URL" default:"https://api.openai.com/v1"`
	APIKey      string        `envconfig:"ORACLE_API_KEY" required:"true"`
	Model       string        `envconfig:"ORACLE_MODEL" default:"gpt-4"`
	Temperature float64       `envconfig:"ORACLE_TEMPERATURE" default:"0.7"`
	Timeout     time.Duration `envconfig:"ORACLE_TIMEOUT" default:"60s"`
}

type AssistantConfig struct {
	ListingLimit   int           `envconfig:"ASSISTANT_LISTING_LIMIT" default:"20"`
	IntentCacheTTL time.Duration `envconfig:"ASSISTANT_INTENT_CACHE_TTL" default:"10m"`
}

// KafkaConfig is optional: without brokers, lifecycle events are not published.
type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	BookingTopic string        `envconfig:"KAFKA_BOOKING_TOPIC" default:"booking.lifecycle"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
	// a lone message is flushed after BatchTimeout; kafka-go's own default is 1s
	BatchTimeout time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms"`
	Async        bool          `envconfig:"KAFKA_ASYNC" default:"false"`
	Compression  string        `envconfig:"KAFKA_COMPRESSION" default:"snappy"` // none, gzip, snappy, lz4, zstd
	RequiredAcks int           `envconfig:"KAFKA_REQUIRED_ACKS" default:"-1"`   // -1 all, 0 none, 1 leader
	MaxAttempts  int           `envconfig:"KAFKA_MAX_ATTEMPTS" default:"3"`
}

// RedisConfig is optional: without an address, intent classification is not cached.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type AdminConfig struct {
	JWTSecret string `envconfig:"ADMIN_JWT_SECRET" required:"true"`
}

type SeedConfig struct {
	SampleEvents bool `envconfig:"SEED_SAMPLE_EVENTS" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory:
		return nil
	case StorageDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for the %s storage driver", StorageDriverPostgres)
		}
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Oracle: OracleConfig{
			BaseURL:     "http://localhost:0",
			APIKey:      "test-key",
			Model:       "gpt-4",
			Temperature: 0.7,
			Timeout:     2 * time.Second,
		},
		Assistant: AssistantConfig{
			ListingLimit:   20,
			IntentCacheTTL: time.Minute,
		},
		Kafka: KafkaConfig{
			BookingTopic: "booking.lifecycle",
			WriteTimeout: time.Second,
			BatchTimeout: 10 * time.Millisecond,
			Compression:  "none",
			RequiredAcks: -1,
			MaxAttempts:  3,
		},
		Admin: AdminConfig{
			JWTSecret: "test-admin-secret",
		},
	}
}
