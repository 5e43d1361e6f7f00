// Package ddgen writes address-word fixtures: binary files in which every
// 4-byte word holds the little-endian encoding of its own byte offset,
// shifted by StartOffset. The content can be checked by eye with
// `xxd -e test.dd`.
package ddgen

const (
	// WordSize is the width of one encoded word, in bytes.
	WordSize = 4

	// StartOffset is the first value written to the file. Word k holds
	// StartOffset + WordSize*k.
	StartOffset = 3

	Mebibyte = 1 << 20
)

// TargetSize converts a size in mebibytes to bytes.
func TargetSize(sizeMB int64) int64 {
	return sizeMB * Mebibyte
}

// WordCount reports how many words a generator with the given target
// writes. The counter starts at StartOffset and advances by WordSize
// while it stays strictly below target.
func WordCount(target int64) int64 {
	if target <= StartOffset {
		return 0
	}

	return (target - StartOffset + WordSize - 1) / WordSize
}

// FileSize is the exact number of bytes written for target. It never
// exceeds target and no padding follows the last word.
func FileSize(target int64) int64 {
	return WordCount(target) * WordSize
}
