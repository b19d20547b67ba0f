package port

import "context"

// TaskDispatcher enqueues asynchronous ingestion work.
type TaskDispatcher interface {
	EnqueueIngestReport(ctx context.Context, report Report) error
}
