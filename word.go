package ddgen

import "encoding/binary"

// Value is the word written for a counter at offset. Offsets past the
// 32-bit range wrap around.
func Value(offset int64) uint32 {
	return uint32(offset)
}

// PutWord encodes v into the first WordSize bytes of b, least-significant
// byte first. It panics if b is too short.
func PutWord(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// Word decodes the little-endian word at the start of b.
func Word(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func AppendWord(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}
