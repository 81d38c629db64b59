package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	assert.Equal(t, 1, cfg.GetInt("crawler.max_depth"))
	assert.Equal(t, 4, cfg.GetInt("crawler.max_pages"))
	assert.Equal(t, 2.0, cfg.GetFloat64("crawler.requests_per_second"))
	assert.Contains(t, cfg.GetStringSlice("crawler.priority_keywords"), "attorney")

	assert.Equal(t, 20, cfg.GetInt("dns.max_workers"))
	assert.Equal(t, 20, cfg.GetInt("extractor.min_score"))
	assert.Equal(t, []string{"high", "medium"}, cfg.GetStringSlice("extractor.keep_confidence"))

	assert.Equal(t, "localhost:6379", cfg.GetString("queue.redis_addr"))
	assert.Equal(t, 3, cfg.GetInt("queue.max_retries"))
	assert.Equal(t, "sqlite", cfg.GetString("store.type"))
}

func TestGetDuration(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	timeout, err := cfg.GetDuration("dns.lookup_timeout")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, timeout)

	delay, err := cfg.GetDuration("queue.retry_delay")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, delay)

	_, err = cfg.GetDuration("logging.level")
	assert.Error(t, err)
}

func TestOverridesWinOverDefaults(t *testing.T) {
	v := NewEmptyViper()
	v.Set("extractor.min_score", 35)
	cfg := NewFromViper(v)

	assert.Equal(t, 35, cfg.GetInt("extractor.min_score"))
}

func TestTypedSections(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	crawlerCfg, err := cfg.GetCrawler()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, crawlerCfg.RequestTimeout)

	dnsCfg, err := cfg.GetDNS()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, dnsCfg.LookupTimeout)
	assert.Equal(t, 20, dnsCfg.MaxWorkers)

	queueCfg, err := cfg.GetQueue()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, queueCfg.RetryDelay)
}
