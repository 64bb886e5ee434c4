package compare

import (
	"FileCompare/internal/lane"
	"io"
)

// DefaultBufferSize is the per-file chunk capacity used when Options leaves it unset.
const DefaultBufferSize = 4096

// Kind classifies a finished comparison.
type Kind int

const (
	Identical Kind = iota
	ContentMismatch
	LengthMismatch
)

func (k Kind) String() string {
	switch k {
	case Identical:
		return "identical"
	case ContentMismatch:
		return "content mismatch"
	case LengthMismatch:
		return "length mismatch"
	default:
		return "unknown"
	}
}

// Result is the terminal state of a comparison that did not fail with an I/O error.
type Result struct {
	Kind Kind

	// Offset is the 0-based index of the first differing byte (ContentMismatch).
	Offset int64
	ByteA  byte
	ByteB  byte

	// ShorterName names the input that reached end of file first (LengthMismatch).
	ShorterName string
}

// Position is the 1-based byte position shown to users.
func (r Result) Position() int64 { return r.Offset + 1 }

// ExitCode is 0 for Identical and 1 for any mismatch.
func (r Result) ExitCode() int {
	if r.Kind == Identical {
		return 0
	}
	return 1
}

// Source is a named input stream.
type Source struct {
	Name string
	R    io.Reader
}

// Options configures a comparison session.
type Options struct {
	BufferSize int
	OnChunk    func(n int64)
}

// ChunkSize is the capacity both buffers get for a requested size n.
func ChunkSize(n int) int {
	if n <= 0 {
		return DefaultBufferSize
	}
	return lane.RoundUp(n)
}
