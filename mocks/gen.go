//go:generate mockgen -source=gen.go -destination=mock_writer.go -package=mocks

package mocks

import "io"

// Writer embeds io.Writer so that fixture sinks can be mocked.
type Writer interface {
	io.Writer
}
