package log

// Policy decides whether an entry proceeds to a channel's drivers.
// A policy must not modify the entry. Stateless policies may be shared
// freely across channels.
type Policy interface {
	// TransformEntry reports whether the entry should be submitted.
	TransformEntry(e *Entry) bool
}

// SeverityPolicy passes entries at or above a threshold level, using
// the ascending Trace < Debug < Info < Warn < Error < Fatal order.
type SeverityPolicy struct {
	Threshold Level
}

// NewSeverityPolicy creates a severity policy with the given threshold.
func NewSeverityPolicy(threshold Level) *SeverityPolicy {
	return &SeverityPolicy{Threshold: threshold}
}

// TransformEntry reports whether the entry meets the threshold.
func (p *SeverityPolicy) TransformEntry(e *Entry) bool {
	return e.Level >= p.Threshold
}
