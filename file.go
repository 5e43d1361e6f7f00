package ddgen

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type Config struct {
	Path   string
	SizeMB int64
}

// DefaultConfig writes a 1 MiB fixture to test.dd in the working directory.
func DefaultConfig() Config {
	return Config{
		Path:   DefaultPath,
		SizeMB: DefaultSizeMB,
	}
}

const (
	DefaultPath   = "test.dd"
	DefaultSizeMB = 1
)

func (c Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	if c.SizeMB < 0 {
		return errors.Wrapf(ErrNegativeSize, "%d MiB", c.SizeMB)
	}

	return nil
}

func (c Config) WriteFile() error {
	if err := c.Validate(); err != nil {
		return err
	}

	return WriteFile(c.Path, TargetSize(c.SizeMB))
}

// WriteFile creates or truncates path and fills it with the fixture for
// target. The file is synced before it is closed. On failure the file
// is closed but left on disk, possibly truncated.
func WriteFile(path string, target int64) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "open fixture")
	}
	defer func() {
		err = multierr.Append(err, errors.Wrap(f.Close(), "close fixture"))
	}()

	n, err := Generator{Target: target}.WriteTo(f)
	if err != nil {
		return err
	}

	if err = f.Sync(); err != nil {
		return errors.Wrap(err, "sync fixture")
	}

	slog.Debug("fixture written",
		"path", path,
		"bytes", n)
	return nil
}
