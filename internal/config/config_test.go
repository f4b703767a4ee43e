package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "freight")
	t.Setenv("POSTGRES_DB", "freight_db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "http://router.project-osrm.org", cfg.OSRMBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RoutingTimeout)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "shipment_events", cfg.KafkaTopic)
	assert.Equal(t, 2*time.Second, cfg.OutboxPollInterval)
	assert.Equal(t, 50, cfg.OutboxBatchSize)
	assert.Equal(t, 5, cfg.OutboxMaxAttempts)
	assert.True(t, cfg.EnableMDNS)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POSTGRES_USER", "freight")
	t.Setenv("POSTGRES_DB", "freight_db")
	t.Setenv("HTTP_PORT", "8088")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("ROUTING_TIMEOUT", "750ms")
	t.Setenv("ENABLE_MDNS", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.HTTPPort)
	assert.Equal(t, 6432, cfg.DBPort)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 750*time.Millisecond, cfg.RoutingTimeout)
	assert.False(t, cfg.EnableMDNS)
}

func TestLoadRequiresDatabaseIdentity(t *testing.T) {
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_DB", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("POSTGRES_USER", "freight")
	t.Setenv("POSTGRES_DB", "freight_db")
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("OUTBOX_POLL_INTERVAL", "soon")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, 2*time.Second, cfg.OutboxPollInterval)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     5432,
		DBUser:     "freight",
		DBPassword: "secret",
		DBName:     "freight_db",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=freight password=secret dbname=freight_db sslmode=disable",
		cfg.DSN())
}
