package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
}

// HIU identifies this Health Information User towards the gateway.
type HIU struct {
	ID          string
	Name        string
	DataPushURL string
}

// Gateway captures the Consent Manager gateway boundary configuration.
type Gateway struct {
	BaseURL        string
	ClientID       string
	ClientSecret   string
	RequestTimeout time.Duration
}

// Consent captures consent listing and lifecycle configuration.
type Consent struct {
	DefaultPageSize int
}

// DataFlow captures data-flow key material configuration.
type DataFlow struct {
	KeyExpiryOffsetDays int
}

// Kafka captures broker and topic configuration for the queue boundary.
type Kafka struct {
	Brokers              string
	GroupID              string
	DataFlowRequestTopic string
	DataFlowDeleteTopic  string
	HealthInfoTopic      string
	MaxDeliveryAttempts  int
}

// Redis captures cache backend configuration. An empty URL selects the
// in-memory cache adapter.
type Redis struct {
	URL string
}

// Database captures PostgreSQL connection configuration.
type Database struct {
	URL string
}

// Config aggregates all sections so main stays lean.
type Config struct {
	Server   Server
	HIU      HIU
	Gateway  Gateway
	Consent  Consent
	DataFlow DataFlow
	Kafka    Kafka
	Redis    Redis
	Database Database
}

// CorrelationCacheTTL bounds memory held for gateway callbacks that may never
// arrive. Entries are written once at request creation and read at most once.
var CorrelationCacheTTL = 30 * time.Minute

// PatientCacheTTL enforces retention for patient display data.
var PatientCacheTTL = 5 * time.Minute

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := envOr("HIU_ADDR", ":8003")

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Config{
		Server: Server{
			Addr:          addr,
			JWTSigningKey: jwtSigningKey,
		},
		HIU: HIU{
			ID:          envOr("HIU_ID", "hiu-dev"),
			Name:        envOr("HIU_NAME", "Health Information User"),
			DataPushURL: envOr("HIU_DATA_PUSH_URL", "http://localhost:8003/data/notification"),
		},
		Gateway: Gateway{
			BaseURL:        envOr("GATEWAY_BASE_URL", "http://localhost:8000"),
			ClientID:       os.Getenv("GATEWAY_CLIENT_ID"),
			ClientSecret:   os.Getenv("GATEWAY_CLIENT_SECRET"),
			RequestTimeout: envDurationOr("GATEWAY_REQUEST_TIMEOUT", 10*time.Second),
		},
		Consent: Consent{
			DefaultPageSize: envIntOr("CONSENT_DEFAULT_PAGE_SIZE", 20),
		},
		DataFlow: DataFlow{
			KeyExpiryOffsetDays: envIntOr("DATAFLOW_KEY_EXPIRY_OFFSET_DAYS", 2),
		},
		Kafka: Kafka{
			Brokers:              envOr("KAFKA_BROKERS", "localhost:9092"),
			GroupID:              envOr("KAFKA_GROUP_ID", "hiu-dataflow"),
			DataFlowRequestTopic: envOr("KAFKA_DATAFLOW_REQUEST_TOPIC", "hiu.dataflow.request"),
			DataFlowDeleteTopic:  envOr("KAFKA_DATAFLOW_DELETE_TOPIC", "hiu.dataflow.delete"),
			HealthInfoTopic:      envOr("KAFKA_HEALTH_INFO_TOPIC", "hiu.healthinfo.retract"),
			MaxDeliveryAttempts:  envIntOr("KAFKA_MAX_DELIVERY_ATTEMPTS", 5),
		},
		Redis: Redis{
			URL: os.Getenv("REDIS_URL"),
		},
		Database: Database{
			URL: os.Getenv("DATABASE_URL"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
