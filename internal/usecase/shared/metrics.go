package shared

import "time"

// Metrics is implemented by the Prometheus recorder; NopMetrics serves tests and tools.
type Metrics interface {
	ObserveSearch(elapsed time.Duration, offers int, outcome string)
	RecordConfirmation(outcome string)
	RecordSessionOp(op, result string)
	RecordOutboxPublish(result string)
}

const (
	OutcomeSuccess      = "success"
	OutcomeEmpty        = "empty"
	OutcomeConflict     = "conflict"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
	OutcomeInvalidInput = "invalid_input"
)

type NopMetrics struct{}

func (NopMetrics) ObserveSearch(time.Duration, int, string) {}
func (NopMetrics) RecordConfirmation(string)                {}
func (NopMetrics) RecordSessionOp(string, string)           {}
func (NopMetrics) RecordOutboxPublish(string)               {}
