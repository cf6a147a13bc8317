package pattern_int

import (
	"encoding/binary"
)

import (
	"github.com/timtadh/sgfilter/types/pattern"
)

// SerializePattern writes the ids big endian so that byte order is pattern
// order within one arity.
func SerializePattern(p pattern.Pattern) []byte {
	bytes := make([]byte, 8*p.Len())
	for i := 0; i < p.Len(); i++ {
		binary.BigEndian.PutUint64(bytes[8*i:], uint64(p.Get(i)))
	}
	return bytes
}

func DeserializePattern(bytes []byte) pattern.Pattern {
	ids := make([]int, len(bytes)/8)
	for i := range ids {
		ids[i] = int(binary.BigEndian.Uint64(bytes[8*i:]))
	}
	return pattern.New(ids...)
}

func SerializeInt32(i int32) []byte {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(i))
	return bytes
}

func DeserializeInt32(bytes []byte) int32 {
	return int32(binary.BigEndian.Uint32(bytes))
}
