package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Setenv("ISBNDB_ACCESS_KEY", "K1")
	t.Setenv("ISBNDB_HTTP_PORT", "9090")
	t.Setenv("ISBNDB_RPS", "2.5")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")

	cfg, err := Load(WithLogLevel(zapcore.DebugLevel), WithWriteTimeout(time.Minute))
	require.NoError(t, err)

	require.Equal(t, "K1", cfg.ISBNdb.AccessKey)
	require.Empty(t, cfg.ISBNdb.DefaultAccessKey)
	require.Equal(t, "https://api2.isbndb.com", cfg.ISBNdb.BaseURL)
	require.Equal(t, 30*time.Second, cfg.ISBNdb.Timeout)
	require.Equal(t, 2.5, cfg.ISBNdb.RPS)
	require.Equal(t, 20, cfg.ISBNdb.PageSize)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)

	require.True(t, cfg.Kafka.Enabled())
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
	require.Equal(t, "isbndb.lookups", cfg.Kafka.LookupTopic)

	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
}
