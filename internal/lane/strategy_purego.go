//go:build purego

package lane

func init() {
	laneEqual = scalarEqual
	strategy = "scalar"
}

func scalarEqual(a, b []byte) bool {
	_, ok := scan(a, b)
	return !ok
}

// Features always reports none; purego builds never consult the CPU.
func Features() string { return "none" }
