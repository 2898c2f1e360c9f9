package mesh

import (
	"errors"
	"path/filepath"
	"strings"
)

// Load decodes an OBJ, glTF or GLB file and builds its deduplicated buffer.
// Every failure is returned as a *LoadError carrying the path.
func Load(path string) (*Buffer, error) {
	var (
		src Source
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		src, err = DecodeOBJ(path)
	case ".gltf", ".glb":
		src, err = DecodeGLTF(path)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, withPath(path, err)
	}

	buf, err := Build(src)
	if err != nil {
		return nil, withPath(path, err)
	}
	return buf, nil
}

func withPath(path string, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		le.Path = path
		return le
	}
	return &LoadError{Path: path, Err: err}
}
