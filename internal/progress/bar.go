package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// SnapshotFn reports how far the comparison has got: matched chunks and
// the byte offset reached in both files.
type SnapshotFn func() (chunks, offset int64)

// Bar renders comparison progress. Matched byte counts go through a channel
// drained by one goroutine; a second goroutine refreshes the description.
// Close stops both and returns only once neither can touch Bar or the
// SnapshotFn again.
type Bar struct {
	bar   *progressbar.ProgressBar
	total int64
	snap  SnapshotFn

	matched chan int64
	stop    chan struct{}
	wg      sync.WaitGroup

	prevOffset int64
	prevAt     time.Time
}

// New starts a bar over totalBytes, the overlap of the two files.
func New(w io.Writer, totalBytes int64, snap SnapshotFn) *Bar {
	b := &Bar{
		total:   totalBytes,
		snap:    snap,
		matched: make(chan int64, 1024),
		stop:    make(chan struct{}),
		prevAt:  time.Now(),
	}

	b.bar = progressbar.NewOptions64(
		totalBytes,
		progressbar.OptionSetWriter(w),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionSetDescription(describe(0, totalBytes, 0, 0)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(120*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	_ = b.bar.RenderBlank()

	b.wg.Add(2)
	go b.drain()
	go b.refresh()

	return b
}

func (b *Bar) drain() {
	defer b.wg.Done()
	for n := range b.matched {
		_ = b.bar.Add64(n)
	}
	_ = b.bar.Finish()
}

func (b *Bar) refresh() {
	defer b.wg.Done()
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			b.updateDescription()
		case <-b.stop:
			return
		}
	}
}

// AddBytes advances the bar by one matched chunk.
func (b *Bar) AddBytes(n int64) {
	if n <= 0 {
		return
	}
	b.matched <- n
}

// Close must be called once, after the last AddBytes.
func (b *Bar) Close() {
	close(b.stop)
	close(b.matched)
	b.wg.Wait()
}

func (b *Bar) updateDescription() {
	if b.snap == nil {
		return
	}
	chunks, offset := b.snap()

	now := time.Now()
	mbps := 0.0
	if dt := now.Sub(b.prevAt).Seconds(); dt > 0 {
		mbps = float64(offset-b.prevOffset) / 1_000_000.0 / dt
	}
	b.prevOffset = offset
	b.prevAt = now

	b.bar.Describe(describe(offset, b.total, chunks, mbps))
}

func describe(offset, total, chunks int64, mbps float64) string {
	pct := 100.0
	if total > 0 {
		pct = float64(offset) * 100 / float64(total)
	}
	return fmt.Sprintf("offset %.1f/%.1f MB (%.0f%%) | %d chunks matched | %.1f MB/s",
		float64(offset)/1_000_000.0, float64(total)/1_000_000.0, pct, chunks, mbps)
}
