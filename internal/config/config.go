package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every runtime setting. It is loaded once in main and passed
// to constructors; nothing reads the environment after Load returns.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	OSRMBaseURL    string
	RoutingTimeout time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int

	EnableMDNS  bool
	MDNSService string
}

// Load reads .env (if present at path, silently skipped otherwise) and the
// process environment.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "9000"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBUser:             os.Getenv("POSTGRES_USER"),
		DBPassword:         os.Getenv("POSTGRES_PASSWORD"),
		DBName:             os.Getenv("POSTGRES_DB"),
		OSRMBaseURL:        getEnv("OSRM_BASE_URL", "http://router.project-osrm.org"),
		KafkaTopic:         getEnv("KAFKA_TOPIC", "shipment_events"),
		MDNSService:        getEnv("MDNS_SERVICE_NAME", "FreightSystem"),
		RoutingTimeout:     getDuration("ROUTING_TIMEOUT", 5*time.Second),
		OutboxPollInterval: getDuration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		OutboxBatchSize:    getInt("OUTBOX_BATCH_SIZE", 50),
		OutboxMaxAttempts:  getInt("OUTBOX_MAX_ATTEMPTS", 5),
		EnableMDNS:         getEnv("ENABLE_MDNS", "true") != "false",
	}

	cfg.DBPort = getInt("DB_PORT", 5432)

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	} else {
		cfg.KafkaBrokers = []string{"localhost:9092"}
	}

	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("config: POSTGRES_USER and POSTGRES_DB must be set")
	}

	return cfg, nil
}

// DSN renders the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
