package mesh

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// DecodeGLTF reads positions and triangle indices from every mesh primitive
// in a .gltf or .glb file. Node transforms are not applied; the scene is
// expected to be authored in world space.
func DecodeGLTF(path string) (Source, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("open gltf: %w", err)
	}
	return fromDocument(doc)
}

func fromDocument(doc *gltf.Document) (Source, error) {
	var src Source

	for mi, m := range doc.Meshes {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("mesh%d", mi)
		}

		for pi, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return Source{}, fmt.Errorf("mesh %q primitive %d positions: %w", name, pi, err)
			}

			base := len(src.Positions) / 3
			for _, p := range positions {
				src.Positions = append(src.Positions, p[0], p[1], p[2])
			}

			shape := Shape{Name: fmt.Sprintf("%s/%d", name, pi)}
			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return Source{}, fmt.Errorf("mesh %q primitive %d indices: %w", name, pi, err)
				}
				shape.Corners = make([]int, 0, len(indices))
				for _, i := range indices {
					shape.Corners = append(shape.Corners, base+int(i))
				}
			} else {
				shape.Corners = make([]int, 0, len(positions))
				for i := range positions {
					shape.Corners = append(shape.Corners, base+i)
				}
			}
			src.Shapes = append(src.Shapes, shape)
		}
	}

	return src, nil
}
