package level

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Checksum returns a stable FNV-1a digest of a layout's bricks. Two layouts
// generated from the same spec, options and seed hash identically, which is
// what the archive and replay tooling compare.
func Checksum(l Layout) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	writeInt(len(l.Bricks))
	writeInt(l.BreakableCount)
	for _, b := range l.Bricks {
		writeInt(b.Row)
		writeInt(b.Col)
		writeFloat(b.X)
		writeFloat(b.Y)
		writeInt(b.HP)
		writeInt(int(b.Traits))
		writeInt(int(b.Form))
		flags := 0
		if b.Breakable {
			flags |= 1
		}
		if b.Sensor {
			flags |= 2
		}
		writeInt(flags)
	}
	return h.Sum64()
}
