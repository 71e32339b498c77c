package metrics

import "time"

// OutcomeLabel enumerates the final status of a generation run.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for one generation run.
type Recorder interface {
	ObserveGenerationDuration(d time.Duration)
	SetPageCounts(total, posts int)
	SetOutcome(outcome OutcomeLabel, at time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerationDuration(time.Duration) {}
func (NoopRecorder) SetPageCounts(int, int)                  {}
func (NoopRecorder) SetOutcome(OutcomeLabel, time.Time)      {}
