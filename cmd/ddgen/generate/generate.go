package generate

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"
	"github.com/wetware/ddgen"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "write the address-word fixture to test.dd",
		Description: `Write a 1 MiB fixture to test.dd in the working directory.

Every 4-byte word holds its own byte offset plus 3, little-endian.
An existing test.dd is overwritten.

Verify with:
  xxd -e test.dd`,
		Action: Main,
	}
}

func Main(c *cli.Context) error {
	config := ddgen.DefaultConfig()

	slog.DebugContext(c.Context, "generating fixture",
		"path", config.Path,
		"size_mb", config.SizeMB)

	if err := config.WriteFile(); err != nil {
		return fmt.Errorf("failed to generate %s: %w", config.Path, err)
	}

	return nil
}
