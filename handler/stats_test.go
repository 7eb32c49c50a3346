package handler

import (
	"sync"
	"testing"

	"github.com/hushlog/hush/core"
)

func TestStats_Counters(t *testing.T) {
	s := NewStats()

	s.IncrementDropped(core.InfoLevel)
	s.IncrementDropped(core.InfoLevel)
	s.IncrementDropped(core.ErrorLevel)
	s.IncrementWriteError()
	s.IncrementProcessed()

	if got := s.GetDropped(core.InfoLevel); got != 2 {
		t.Errorf("GetDropped(Info) = %d, want 2", got)
	}
	if got := s.GetTotalDropped(); got != 3 {
		t.Errorf("GetTotalDropped() = %d, want 3", got)
	}
	if got := s.GetWriteErrors(); got != 1 {
		t.Errorf("GetWriteErrors() = %d, want 1", got)
	}
	if got := s.GetProcessed(); got != 1 {
		t.Errorf("GetProcessed() = %d, want 1", got)
	}

	s.Reset()
	if s.GetTotalDropped() != 0 || s.GetWriteErrors() != 0 || s.GetProcessed() != 0 {
		t.Error("Reset() did not zero all counters")
	}
}

func TestStats_OutOfRangeLevel(t *testing.T) {
	s := NewStats()
	s.IncrementDropped(core.Level(99))
	if got := s.GetTotalDropped(); got != 0 {
		t.Errorf("GetTotalDropped() = %d, want 0", got)
	}
	if got := s.GetDropped(core.Level(-5)); got != 0 {
		t.Errorf("GetDropped(-5) = %d, want 0", got)
	}
}

func TestStats_Concurrent(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 1000; n++ {
				s.IncrementProcessed()
			}
		}()
	}
	wg.Wait()

	if got := s.GetProcessed(); got != 8000 {
		t.Errorf("GetProcessed() = %d, want 8000", got)
	}
}

func TestStats_Snapshot(t *testing.T) {
	s := NewStats()
	s.IncrementDropped(core.WarnLevel)
	s.IncrementProcessed()

	snap := s.GetSnapshot()
	if snap.DroppedTotal[core.WarnLevel] != 1 {
		t.Errorf("snapshot dropped[warn] = %d, want 1", snap.DroppedTotal[core.WarnLevel])
	}
	if snap.ProcessedTotal != 1 {
		t.Errorf("snapshot processed = %d, want 1", snap.ProcessedTotal)
	}

	// Snapshot is detached from later updates
	s.IncrementProcessed()
	if snap.ProcessedTotal != 1 {
		t.Error("snapshot mutated by later increment")
	}
}
