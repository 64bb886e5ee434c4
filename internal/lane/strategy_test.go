//go:build !purego

package lane

import (
	"bytes"
	"testing"
)

func TestLanePredicates(t *testing.T) {
	preds := map[string]func(a, b []byte) bool{
		"vector": vectorEqual,
		"words":  wordsEqual,
	}

	base := bytes.Repeat([]byte{0x00}, Width)
	for name, eq := range preds {
		t.Run(name, func(t *testing.T) {
			if !eq(base, bytes.Clone(base)) {
				t.Fatalf("identical lanes reported unequal")
			}
			for i := 0; i < Width; i++ {
				other := bytes.Clone(base)
				other[i] = 0x80
				if eq(base, other) {
					t.Fatalf("difference at %d not detected", i)
				}
			}
		})
	}
}
