package ddgen

import "github.com/pkg/errors"

var (
	ErrEmptyPath    = errors.New("empty fixture path")
	ErrNegativeSize = errors.New("negative fixture size")
)
