package config

import "time"

// CrawlerConfig represents the configuration for the site crawler
type CrawlerConfig struct {
	MaxDepth          int
	MaxPages          int
	MaxConcurrency    int
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	UserAgent         string
	PriorityKeywords  []string
}

// DNSConfig represents the configuration for deliverability lookups
type DNSConfig struct {
	LookupTimeout time.Duration
	MaxWorkers    int
}

// ExtractorConfig represents the configuration for the extraction pipeline
type ExtractorConfig struct {
	MinScore       int
	KeepConfidence []string
}

// QueueConfig represents the configuration for the Redis task queue
type QueueConfig struct {
	RedisAddr   string
	RedisDB     int
	Key         string
	MaxRetries  int
	RetryDelay  time.Duration
	Concurrency int
}

// StoreConfig represents the configuration for lead persistence
type StoreConfig struct {
	Type       string
	SQLitePath string
	MySQLDSN   string
}

// GetCrawler returns the crawler configuration
func (c *Config) GetCrawler() (CrawlerConfig, error) {
	timeout, err := c.GetDuration("crawler.request_timeout")
	if err != nil {
		return CrawlerConfig{}, err
	}
	return CrawlerConfig{
		MaxDepth:          c.GetInt("crawler.max_depth"),
		MaxPages:          c.GetInt("crawler.max_pages"),
		MaxConcurrency:    c.GetInt("crawler.max_concurrency"),
		RequestTimeout:    timeout,
		RequestsPerSecond: c.GetFloat64("crawler.requests_per_second"),
		UserAgent:         c.GetString("crawler.user_agent"),
		PriorityKeywords:  c.GetStringSlice("crawler.priority_keywords"),
	}, nil
}

// GetDNS returns the DNS configuration
func (c *Config) GetDNS() (DNSConfig, error) {
	timeout, err := c.GetDuration("dns.lookup_timeout")
	if err != nil {
		return DNSConfig{}, err
	}
	return DNSConfig{
		LookupTimeout: timeout,
		MaxWorkers:    c.GetInt("dns.max_workers"),
	}, nil
}

// GetExtractor returns the extractor configuration
func (c *Config) GetExtractor() ExtractorConfig {
	return ExtractorConfig{
		MinScore:       c.GetInt("extractor.min_score"),
		KeepConfidence: c.GetStringSlice("extractor.keep_confidence"),
	}
}

// GetQueue returns the queue configuration
func (c *Config) GetQueue() (QueueConfig, error) {
	delay, err := c.GetDuration("queue.retry_delay")
	if err != nil {
		return QueueConfig{}, err
	}
	return QueueConfig{
		RedisAddr:   c.GetString("queue.redis_addr"),
		RedisDB:     c.GetInt("queue.redis_db"),
		Key:         c.GetString("queue.key"),
		MaxRetries:  c.GetInt("queue.max_retries"),
		RetryDelay:  delay,
		Concurrency: c.GetInt("queue.concurrency"),
	}, nil
}

// GetStore returns the store configuration
func (c *Config) GetStore() StoreConfig {
	return StoreConfig{
		Type:       c.GetString("store.type"),
		SQLitePath: c.GetString("store.sqlite_path"),
		MySQLDSN:   c.GetString("store.mysql_dsn"),
	}
}
