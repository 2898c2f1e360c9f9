// Package mesh builds indexed triangle buffers for the scene geometry.
package mesh

import "fmt"

// Vertex is a unique scene vertex. Two vertices are equal when their
// positions are bitwise-comparable equal, which is the dedup key.
type Vertex struct {
	Position [3]float32
}

// Shape is one named group of triangles. Corners holds three position
// indices per triangle; a trailing partial triangle is kept in the index
// list and left for the draw call to skip.
type Shape struct {
	Name    string
	Corners []int
}

// Source is decoded geometry before deduplication.
type Source struct {
	Positions []float32 // x, y, z triplets
	Shapes    []Shape
}

// Buffer is the indexed mesh uploaded to the GPU.
type Buffer struct {
	Vertices []Vertex
	Indices  []uint32
}

// Build flattens every shape into one buffer, merging corners that share a
// position. Vertices keep the order of their first occurrence.
func Build(src Source) (*Buffer, error) {
	count := len(src.Positions) / 3
	buf := &Buffer{}
	seen := make(map[Vertex]uint32)

	for _, shape := range src.Shapes {
		for _, c := range shape.Corners {
			if c < 0 || c >= count {
				return nil, &LoadError{Err: fmt.Errorf("shape %q: %w: %d (have %d positions)", shape.Name, ErrIndexOutOfRange, c, count)}
			}
			v := Vertex{Position: [3]float32{
				src.Positions[3*c],
				src.Positions[3*c+1],
				src.Positions[3*c+2],
			}}
			idx, ok := seen[v]
			if !ok {
				idx = uint32(len(buf.Vertices))
				seen[v] = idx
				buf.Vertices = append(buf.Vertices, v)
			}
			buf.Indices = append(buf.Indices, idx)
		}
	}

	return buf, nil
}

// Triangles returns the number of triangles in the buffer.
func (b *Buffer) Triangles() int {
	return len(b.Indices) / 3
}

// Positions returns the vertex positions packed for a GL array buffer.
func (b *Buffer) Positions() []float32 {
	out := make([]float32, 0, len(b.Vertices)*3)
	for _, v := range b.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
	}
	return out
}

// Bounds returns the axis-aligned extent of the vertices.
func (b *Buffer) Bounds() (lo, hi [3]float32) {
	if len(b.Vertices) == 0 {
		return lo, hi
	}
	lo = b.Vertices[0].Position
	hi = lo
	for _, v := range b.Vertices[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return lo, hi
}
