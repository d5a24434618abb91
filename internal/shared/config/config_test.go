package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	ctopics "github.com/radieske/sports-ledger/pkg/contracts/topics"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVICE_NAME", "sport-classifier-service")

	cfg := Load()
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "9095", cfg.MetricsPort)
	assert.Equal(t, "3", cfg.SportsDBAPIKey)
	assert.Equal(t, 3*time.Second, cfg.SportsDBLookupTimeout)
	assert.Equal(t, 5*time.Second, cfg.SportsDBSearchTimeout)
	assert.Equal(t, LookupCacheMemory, cfg.LookupCache)
	assert.Equal(t, 24*time.Hour, cfg.TeamSearchCacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.LookupNegativeTTL)
	assert.Equal(t, 60*time.Second, cfg.ClassifyBatchTimeout)
	assert.Equal(t, ctopics.BetImported, cfg.TopicBetImported)
	assert.Equal(t, ctopics.BetClassified, cfg.TopicBetClassified)
	assert.Equal(t, ctopics.BetImportedDLQ, cfg.TopicBetImportedDLQ)
}

func TestLoadPortsPerService(t *testing.T) {
	testCases := []struct {
		service     string
		httpPort    string
		metricsPort string
		description string
	}{
		{"sport-classifier-service", "8080", "9095", "api"},
		{"bet-import-classifier-worker", "", "9097", "worker has no public port"},
		{"sportsdb-simulator", "8081", "9094", "simulator"},
		{"", "8080", "9095", "unknown service falls back"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			t.Setenv("SERVICE_NAME", tc.service)
			cfg := Load()
			assert.Equal(t, tc.httpPort, cfg.HTTPPort)
			assert.Equal(t, tc.metricsPort, cfg.MetricsPort)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SPORTSDB_LOOKUP_TIMEOUT", "750ms")
	t.Setenv("TEAM_SEARCH_CACHE_TTL", "not-a-duration")
	t.Setenv("SIMULATOR_FAILURE_RATE", "0.25")
	t.Setenv("SIMULATOR_LATENCY", "-1s")
	t.Setenv("LOOKUP_CACHE", LookupCacheRedis)
	t.Setenv("LOOKUP_NEGATIVE_TTL", "1h")
	t.Setenv("CLASSIFY_BATCH_TIMEOUT", "5s")

	cfg := Load()
	assert.Equal(t, 750*time.Millisecond, cfg.SportsDBLookupTimeout)
	assert.Equal(t, 24*time.Hour, cfg.TeamSearchCacheTTL, "invalid value keeps default")
	assert.Equal(t, 0.25, cfg.SimulatorFailureRate)
	assert.Equal(t, time.Duration(0), cfg.SimulatorLatency, "negative value keeps default")
	assert.Equal(t, LookupCacheRedis, cfg.LookupCache)
	assert.Equal(t, time.Hour, cfg.LookupNegativeTTL)
	assert.Equal(t, 5*time.Second, cfg.ClassifyBatchTimeout)
}
