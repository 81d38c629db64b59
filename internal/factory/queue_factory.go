package factory

import (
	"fmt"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/adapters/queue"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/config"
	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/ports"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// QueueFactory creates task queues based on configuration
type QueueFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewQueueFactory creates a new queue factory
func NewQueueFactory(cfg *config.Config, logger *zap.Logger) *QueueFactory {
	return &QueueFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateTaskQueue creates a Redis-backed task queue from the configuration
func (f *QueueFactory) CreateTaskQueue() (ports.TaskQueue, error) {
	queueCfg, err := f.cfg.GetQueue()
	if err != nil {
		return nil, fmt.Errorf("invalid queue configuration: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: queueCfg.RedisAddr,
		DB:   queueCfg.RedisDB,
	})

	return queue.NewRedisQueue(rdb, f.logger, queueCfg.Key, queueCfg.MaxRetries, queueCfg.RetryDelay), nil
}
