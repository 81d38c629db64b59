package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/ports"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// popTimeout bounds each blocking pop so consumers can promote due
// retries and notice context cancellation.
const popTimeout = 5 * time.Second

// Job is one unit of harvesting work as it travels through Redis.
type Job struct {
	URL     string `json:"url"`
	Attempt int    `json:"attempt"`
}

// RedisQueue is a Redis-list backed implementation of the
// ports.TaskQueue interface with at-least-once delivery. Failed jobs are
// parked on a delayed sorted set and re-enqueued after a fixed backoff,
// up to a bounded number of attempts; exhausted jobs land on a
// dead-letter list for inspection.
type RedisQueue struct {
	rdb        *redis.Client
	logger     *zap.Logger
	key        string
	delayedKey string
	deadKey    string
	maxRetries int
	retryDelay time.Duration
}

// NewRedisQueue creates a new Redis task queue
func NewRedisQueue(rdb *redis.Client, logger *zap.Logger, key string, maxRetries int, retryDelay time.Duration) *RedisQueue {
	return &RedisQueue{
		rdb:        rdb,
		logger:     logger,
		key:        key,
		delayedKey: key + ":delayed",
		deadKey:    key + ":dead",
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

// Enqueue schedules one harvesting job for a website URL
func (q *RedisQueue) Enqueue(ctx context.Context, url string) error {
	return q.push(ctx, Job{URL: url})
}

// Consume blocks on the queue and feeds jobs to the handler until the
// context is cancelled. A handler error schedules a retry; a handler
// success acknowledges the job by virtue of it having been popped.
func (q *RedisQueue) Consume(ctx context.Context, handler ports.JobHandler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		q.promoteDue(ctx)

		res, err := q.rdb.BRPop(ctx, popTimeout, q.key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("pop job: %w", err)
		}

		var job Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			q.logger.Error("Dropping malformed job payload",
				zap.String("payload", res[1]),
				zap.Error(err))
			continue
		}

		if err := handler(ctx, job.URL); err != nil {
			q.retry(ctx, job, err)
		}
	}
}

func (q *RedisQueue) push(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	if err := q.rdb.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("enqueue job: %w", err)
	}
	return nil
}

// retry re-schedules a failed job after the backoff delay, or parks it
// on the dead-letter list once the attempt budget is spent.
func (q *RedisQueue) retry(ctx context.Context, job Job, cause error) {
	job.Attempt++
	payload, err := json.Marshal(job)
	if err != nil {
		q.logger.Error("Failed to marshal job for retry", zap.Error(err))
		return
	}

	if job.Attempt >= q.maxRetries {
		q.logger.Error("Job exhausted retries",
			zap.String("url", job.URL),
			zap.Int("attempts", job.Attempt),
			zap.Error(cause))
		if err := q.rdb.LPush(ctx, q.deadKey, payload).Err(); err != nil {
			q.logger.Error("Failed to dead-letter job", zap.Error(err))
		}
		return
	}

	q.logger.Warn("Job failed, scheduling retry",
		zap.String("url", job.URL),
		zap.Int("attempt", job.Attempt),
		zap.Duration("delay", q.retryDelay),
		zap.Error(cause))

	readyAt := time.Now().Add(q.retryDelay)
	if err := q.rdb.ZAdd(ctx, q.delayedKey, redis.Z{
		Score:  float64(readyAt.Unix()),
		Member: payload,
	}).Err(); err != nil {
		q.logger.Error("Failed to schedule retry", zap.Error(err))
	}
}

// promoteDue moves delayed retries whose backoff has elapsed back onto
// the ready list. The ZRem guards against another consumer promoting the
// same payload.
func (q *RedisQueue) promoteDue(ctx context.Context) {
	now := strconv.FormatInt(time.Now().Unix(), 10)
	payloads, err := q.rdb.ZRangeByScore(ctx, q.delayedKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: now,
	}).Result()
	if err != nil || len(payloads) == 0 {
		return
	}

	for _, payload := range payloads {
		removed, err := q.rdb.ZRem(ctx, q.delayedKey, payload).Result()
		if err != nil || removed == 0 {
			continue
		}
		if err := q.rdb.LPush(ctx, q.key, payload).Err(); err != nil {
			q.logger.Error("Failed to promote delayed job", zap.Error(err))
		}
	}
}
