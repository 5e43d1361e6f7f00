package ddgen

import (
	"io"

	"github.com/pkg/errors"
)

// chunkSize must stay a multiple of WordSize.
const chunkSize = 64 * 1024

// Generator produces the fixture content for a file of Target bytes.
type Generator struct {
	Target int64
}

// WriteTo writes every word of the fixture to w, in order. It stops at
// the first failed write and reports the file offset where it happened.
func (g Generator) WriteTo(w io.Writer) (n int64, err error) {
	buf := make([]byte, 0, chunkSize)
	for i := int64(StartOffset); i < g.Target; i += WordSize {
		buf = AppendWord(buf, Value(i))
		if len(buf) < cap(buf) {
			continue
		}

		if err = flush(w, buf, &n); err != nil {
			return
		}
		buf = buf[:0]
	}

	if len(buf) > 0 {
		err = flush(w, buf, &n)
	}

	return
}

func flush(w io.Writer, b []byte, n *int64) error {
	m, err := w.Write(b)
	if err == nil && m < len(b) {
		err = io.ErrShortWrite
	}

	off := *n
	*n += int64(m)
	return errors.Wrapf(err, "write at offset %d", off)
}
