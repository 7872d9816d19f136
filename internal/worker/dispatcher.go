package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const QueueErrorReports = "jobs:error-reports"

// ReportKind classifies an error report for the monitoring service.
type ReportKind string

const (
	ReportGeneric  ReportKind = "error"
	ReportPayment  ReportKind = "payment_error"
	ReportUPP      ReportKind = "upp_error"
	ReportDatabase ReportKind = "database_error"
)

// ErrorReport is the payload forwarded to the external AI monitoring
// endpoint. Reporting is strictly one-way: nothing in the ledger's
// outcome depends on whether a report arrives.
type ErrorReport struct {
	Kind      ReportKind `json:"kind"`
	Message   string     `json:"message"`
	Operation string     `json:"operation,omitempty"`
	Reference string     `json:"reference,omitempty"` // transaction/order id when relevant
	Timestamp time.Time  `json:"timestamp"`
}

// Job is the generic envelope for queued async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueErrorReport pushes an error report onto the queue. Callers
// treat a failed enqueue as log-and-continue; reports are best-effort.
func (d *Dispatcher) EnqueueErrorReport(ctx context.Context, report ErrorReport) error {
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now()
	}
	return d.enqueue(ctx, QueueErrorReports, "error-report", report)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}
