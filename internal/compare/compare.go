package compare

import (
	"FileCompare/internal/chunk"
	"FileCompare/internal/lane"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Files compares the contents of two files on disk. Both files stay open for
// the whole session and are closed on return.
func Files(pathA, pathB string, opts Options) (res Result, err error) {
	fa, err := os.Open(pathA) // #nosec G304
	if err != nil {
		return Result{}, err
	}
	defer func() {
		err = errors.Join(err, closeErr(fa))
	}()

	fb, err := os.Open(pathB) // #nosec G304
	if err != nil {
		return Result{}, err
	}
	defer func() {
		err = errors.Join(err, closeErr(fb))
	}()

	return Readers(Source{Name: pathA, R: fa}, Source{Name: pathB, R: fb}, opts)
}

func closeErr(f *os.File) error {
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.Name(), err)
	}
	return nil
}

// readErr names the source unless the error already carries a path.
func readErr(name string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return fmt.Errorf("read %s: %w", name, err)
}

// Readers streams a and b in lockstep and stops at the first difference.
func Readers(a, b Source, opts Options) (Result, error) {
	size := ChunkSize(opts.BufferSize)
	bufA := make([]byte, size)
	bufB := make([]byte, size)

	var offset int64
	for {
		na, err := chunk.Fill(a.R, bufA)
		if err != nil {
			return Result{}, readErr(a.Name, err)
		}
		nb, err := chunk.Fill(b.R, bufB)
		if err != nil {
			return Result{}, readErr(b.Name, err)
		}

		if na == 0 && nb == 0 {
			return Result{Kind: Identical}, nil
		}
		if na != nb {
			res := Result{Kind: LengthMismatch, ShorterName: a.Name}
			if nb < na {
				res.ShorterName = b.Name
			}
			return res, nil
		}

		if p, ok := lane.FirstDifference(bufA[:na], bufB[:nb]); ok {
			return Result{
				Kind:   ContentMismatch,
				Offset: offset + int64(p),
				ByteA:  bufA[p],
				ByteB:  bufB[p],
			}, nil
		}

		offset += int64(na)
		if opts.OnChunk != nil {
			opts.OnChunk(int64(na))
		}
	}
}
