package metrics

import "time"

// Latency captures how long the stages of one assessment took.
type Latency struct {
	InferenceMicros int64 `json:"inferenceMicros"`
	TotalMs         int64 `json:"totalMs"`
}

// NewLatency converts measured durations into the serialized shape.
func NewLatency(inference, total time.Duration) Latency {
	return Latency{InferenceMicros: inference.Microseconds(), TotalMs: total.Milliseconds()}
}
