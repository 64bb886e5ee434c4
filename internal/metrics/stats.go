package metrics

import (
	"sync/atomic"
	"time"
)

// Stats is shared with the progress goroutine, so every field is atomic.
type Stats struct {
	Chunks        int64
	BytesCompared int64

	// unix nanoseconds, zero until set
	started  atomic.Int64
	finished atomic.Int64
}

func (s *Stats) Start() { s.started.Store(time.Now().UnixNano()) }
func (s *Stats) Stop()  { s.finished.Store(time.Now().UnixNano()) }
func (s *Stats) Duration() time.Duration {
	started := s.started.Load()
	if started == 0 {
		return 0
	}
	finished := s.finished.Load()
	if finished == 0 {
		return time.Duration(time.Now().UnixNano() - started)
	}
	return time.Duration(finished - started)
}

// AddChunk records one matched chunk of n bytes.
func (s *Stats) AddChunk(n int64) {
	atomic.AddInt64(&s.Chunks, 1)
	atomic.AddInt64(&s.BytesCompared, n)
}
