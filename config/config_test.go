package config_test

import (
	"testing"
	"time"

	"github.com/lshigami/assessflow/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaultsAndEnv(t *testing.T) {
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8081/api/v1", cfg.Gradebook.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Gradebook.Timeout)
	assert.Equal(t, 1.0, cfg.Flow.SubmissionWeight)
	assert.Equal(t, 250*time.Millisecond, cfg.Flow.TickInterval)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Redis.QuestionCacheTTL)
	assert.Equal(t, "assessflow.events", cfg.RabbitMQ.Exchange)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "info", cfg.Log.Level)
}
