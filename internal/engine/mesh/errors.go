package mesh

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange reports a face corner that points past the position list.
var ErrIndexOutOfRange = errors.New("vertex index out of range")

// ErrUnsupportedFormat is returned for scene files that are neither OBJ nor glTF.
var ErrUnsupportedFormat = errors.New("unsupported scene format")

// LoadError is a fatal scene loading failure.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load scene: %v", e.Err)
	}
	return fmt.Sprintf("load scene %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
