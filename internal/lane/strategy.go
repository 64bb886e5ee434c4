//go:build !purego

package lane

import (
	"bytes"
	"encoding/binary"
	"strings"

	"golang.org/x/sys/cpu"
)

func init() {
	if hasVector() {
		laneEqual = vectorEqual
		strategy = "vector"
		return
	}
	laneEqual = wordsEqual
	strategy = "words"
}

func hasVector() bool {
	return cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}

// vectorEqual defers to the runtime memequal, which uses AVX2/NEON loads
// on the machines hasVector accepts.
func vectorEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// wordsEqual folds the lane into four 64-bit xors and tests them at once.
func wordsEqual(a, b []byte) bool {
	_ = a[Width-1]
	_ = b[Width-1]
	d := binary.LittleEndian.Uint64(a[0:]) ^ binary.LittleEndian.Uint64(b[0:])
	d |= binary.LittleEndian.Uint64(a[8:]) ^ binary.LittleEndian.Uint64(b[8:])
	d |= binary.LittleEndian.Uint64(a[16:]) ^ binary.LittleEndian.Uint64(b[16:])
	d |= binary.LittleEndian.Uint64(a[24:]) ^ binary.LittleEndian.Uint64(b[24:])
	return d == 0
}

// Features lists the vector capabilities reported by the CPU.
func Features() string {
	var f []string
	if cpu.X86.HasSSE2 {
		f = append(f, "sse2")
	}
	if cpu.X86.HasSSE42 {
		f = append(f, "sse4.2")
	}
	if cpu.X86.HasAVX2 {
		f = append(f, "avx2")
	}
	if cpu.X86.HasAVX512BW {
		f = append(f, "avx512bw")
	}
	if cpu.ARM64.HasASIMD {
		f = append(f, "asimd")
	}
	if len(f) == 0 {
		return "none"
	}
	return strings.Join(f, ",")
}
