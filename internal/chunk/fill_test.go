package chunk

import (
	"bytes"
	"errors"
	"io"
	"os"
	"syscall"
	"testing"
	"testing/iotest"
)

// interruptingReader returns err on every other call.
type interruptingReader struct {
	r     io.Reader
	err   error
	calls int
}

func (ir *interruptingReader) Read(p []byte) (int, error) {
	ir.calls++
	if ir.calls%2 == 1 {
		return 0, ir.err
	}
	return ir.r.Read(p)
}

func TestFill_TableDriven(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 64) // 1 KiB
	boom := errors.New("device error")

	tests := []struct {
		name    string
		reader  func() io.Reader
		bufSize int
		want    int
		wantErr error
	}{
		{"exact buffer", func() io.Reader { return bytes.NewReader(data) }, len(data), len(data), nil},
		{"short final chunk", func() io.Reader { return bytes.NewReader(data[:100]) }, 256, 100, nil},
		{"empty source", func() io.Reader { return bytes.NewReader(nil) }, 256, 0, nil},
		{"one byte reads coalesced", func() io.Reader { return iotest.OneByteReader(bytes.NewReader(data)) }, 512, 512, nil},
		{"half reads coalesced", func() io.Reader { return iotest.HalfReader(bytes.NewReader(data)) }, 512, 512, nil},
		{"data with eof", func() io.Reader { return iotest.DataErrReader(bytes.NewReader(data[:77])) }, 256, 77, nil},
		{"eintr retried", func() io.Reader {
			return &interruptingReader{r: bytes.NewReader(data), err: syscall.EINTR}
		}, 512, 512, nil},
		{"sentinel retried", func() io.Reader {
			return &interruptingReader{r: bytes.NewReader(data), err: ErrInterrupted}
		}, 512, 512, nil},
		{"hard error", func() io.Reader { return iotest.ErrReader(boom) }, 256, 0, boom},
		{"error after data", func() io.Reader {
			return io.MultiReader(bytes.NewReader(data[:10]), iotest.ErrReader(boom))
		}, 256, 10, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.bufSize)
			n, err := Fill(tt.reader(), buf)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if n != tt.want {
				t.Fatalf("n = %d, want %d", n, tt.want)
			}
			if !bytes.Equal(buf[:n], data[:n]) {
				t.Fatalf("buffer contents do not match source")
			}
		})
	}
}

func TestFill_ExhaustedFileReturnsZero(t *testing.T) {
	p := t.TempDir() + "/f.bin"
	if err := os.WriteFile(p, []byte("abc"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := os.Open(p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 8)
	if n, err := Fill(f, buf); n != 3 || err != nil {
		t.Fatalf("first fill = (%d, %v), want (3, nil)", n, err)
	}
	if n, err := Fill(f, buf); n != 0 || err != nil {
		t.Fatalf("second fill = (%d, %v), want (0, nil)", n, err)
	}
}
