package handler

import (
	"sync/atomic"

	"github.com/hushlog/hush/core"
)

// Stats tracks handler delivery statistics. Drops only occur after shutdown
// has begun (the queue is unbounded, so a live pipeline never drops);
// write errors count console writes that failed and were skipped.
type Stats struct {
	dropped     [core.NumLevels]atomic.Uint64
	writeErrors atomic.Uint64
	processed   atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	if level < core.TraceLevel || level > core.ErrorLevel {
		return
	}
	s.dropped[level].Add(1)
}

// IncrementWriteError atomically increments the write-error counter
func (s *Stats) IncrementWriteError() {
	s.writeErrors.Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	if level < core.TraceLevel || level > core.ErrorLevel {
		return 0
	}
	return s.dropped[level].Load()
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// GetWriteErrors returns the write-error count
func (s *Stats) GetWriteErrors() uint64 {
	return s.writeErrors.Load()
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return s.processed.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.writeErrors.Store(0)
	s.processed.Store(0)
}

// Snapshot is a point-in-time copy of current stats
type Snapshot struct {
	DroppedTotal     map[core.Level]uint64
	WriteErrorsTotal uint64
	ProcessedTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, core.NumLevels)
	for l := core.TraceLevel; l <= core.ErrorLevel; l++ {
		dropped[l] = s.GetDropped(l)
	}
	return Snapshot{
		DroppedTotal:     dropped,
		WriteErrorsTotal: s.GetWriteErrors(),
		ProcessedTotal:   s.GetProcessed(),
	}
}
