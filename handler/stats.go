package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts entries written successfully
	ProcessedTotal uint64
	// ErrorTotal counts write attempts that returned an error
	ErrorTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementError atomically increments the error counter
func (s *Stats) IncrementError() {
	atomic.AddUint64(&s.ErrorTotal, 1)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetErrors returns the error count
func (s *Stats) GetErrors() uint64 {
	return atomic.LoadUint64(&s.ErrorTotal)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	ProcessedTotal uint64
	ErrorTotal     uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.GetProcessed(),
		ErrorTotal:     s.GetErrors(),
	}
}
