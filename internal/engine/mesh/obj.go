package mesh

import (
	"fmt"
	"io"
	"os"

	"github.com/g3n/engine/loader/obj"
)

// DecodeOBJ reads a Wavefront OBJ file. Materials are ignored.
func DecodeOBJ(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()

	return DecodeOBJReader(f)
}

// DecodeOBJReader reads OBJ data from r.
func DecodeOBJReader(r io.Reader) (Source, error) {
	dec, err := obj.DecodeReader(r, nil)
	if err != nil {
		return Source{}, fmt.Errorf("decode obj: %w", err)
	}
	return fromDecoder(dec), nil
}

// fromDecoder converts decoded objects into shapes. Polygons are split into
// triangle fans around their first corner.
func fromDecoder(dec *obj.Decoder) Source {
	src := Source{Positions: []float32(dec.Vertices)}

	for _, o := range dec.Objects {
		shape := Shape{Name: o.Name}
		for _, face := range o.Faces {
			vs := face.Vertices
			for i := 1; i+1 < len(vs); i++ {
				shape.Corners = append(shape.Corners, vs[0], vs[i], vs[i+1])
			}
		}
		src.Shapes = append(src.Shapes, shape)
	}
	return src
}
