package ports

import "context"

// JobHandler processes one harvesting job. Returning an error schedules
// a retry; returning nil acknowledges the job.
type JobHandler func(ctx context.Context, url string) error

// TaskQueue defines the interface for dispatching harvesting work
type TaskQueue interface {
	// Enqueue schedules one harvesting job for a website URL
	Enqueue(ctx context.Context, url string) error

	// Consume blocks feeding jobs to the handler until the context ends
	Consume(ctx context.Context, handler JobHandler) error
}
