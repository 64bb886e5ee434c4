package metrics

import (
	"fmt"
	"io"
	"sync/atomic"
)

type Snapshot struct {
	DurationMs    int64
	Chunks        int64
	BytesCompared int64
}

func (s *Stats) Snapshot() Snapshot {
	dur := s.Duration()

	return Snapshot{
		DurationMs:    dur.Milliseconds(),
		Chunks:        atomic.LoadInt64(&s.Chunks),
		BytesCompared: atomic.LoadInt64(&s.BytesCompared),
	}
}

func Print(w io.Writer, s *Stats, strategy string) {
	snap := s.Snapshot()

	fmt.Fprintln(w, "--- stats ---")
	fmt.Fprintln(w, "lane_strategy:", strategy)
	fmt.Fprintln(w, "duration_ms:", snap.DurationMs)
	fmt.Fprintln(w, "chunks:", snap.Chunks)
	fmt.Fprintln(w, "bytes_compared:", snap.BytesCompared)

	if snap.DurationMs > 0 {
		secs := float64(snap.DurationMs) / 1000.0
		bps := float64(snap.BytesCompared) / secs
		fmt.Fprintln(w, "throughput_bytes_per_sec:", bps)
		fmt.Fprintln(w, "throughput_mb_per_sec:", bps/1_000_000.0)
	}
}
