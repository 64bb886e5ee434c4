package chunk

import (
	"errors"
	"io"
	"syscall"
)

// ErrInterrupted may be returned by a Reader to ask Fill to retry the read.
var ErrInterrupted = errors.New("read interrupted")

// Fill reads from r until buf is full or r reports end of stream.
// It returns the number of bytes placed in buf. Interrupted reads are
// retried; any other error aborts with the bytes read so far.
func Fill(r io.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n

		if err == nil {
			if n == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if isTransient(err) {
			continue
		}
		return total, err
	}
	return total, nil
}

func isTransient(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, syscall.EINTR)
}
