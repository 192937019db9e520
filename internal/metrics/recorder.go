package metrics

import "time"

// Outcome enumerates render result categories for counters.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for configuration runs.
type Recorder interface {
	ObserveResolveDuration(resolver string, d time.Duration, success bool)
	IncRender(format string, outcome Outcome)
	SetVersionEntries(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveResolveDuration(string, time.Duration, bool) {}
func (NoopRecorder) IncRender(string, Outcome)                          {}
func (NoopRecorder) SetVersionEntries(int)                              {}
