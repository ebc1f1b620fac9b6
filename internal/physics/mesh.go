package physics

import (
	"errors"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrEmptyMesh is returned when a collision mesh ends up with no usable triangles.
var ErrEmptyMesh = errors.New("physics: collision mesh has no triangles")

// Triangle represents a single world-space triangle with precomputed normal
type Triangle struct {
	V0, V1, V2 rl.Vector3
	Normal     rl.Vector3
}

// NewTriangle builds a triangle and its geometric normal, cross(v1-v0, v2-v0).
// ok is false for zero-area triangles.
func NewTriangle(v0, v1, v2 rl.Vector3) (Triangle, bool) {
	edge1 := rl.Vector3Subtract(v1, v0)
	edge2 := rl.Vector3Subtract(v2, v0)
	normal, ok := SafeNormalize(rl.Vector3CrossProduct(edge1, edge2))
	if !ok {
		return Triangle{}, false
	}
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: normal}, true
}

// Submesh is one constituent mesh of a level model with its own BVH.
type Submesh struct {
	Triangles []Triangle
	root      *bvhNode
}

// Mesh is static level geometry used for collision queries.
// It is immutable once built and safe to share between readers.
type Mesh struct {
	Transform rl.Matrix
	Submeshes []Submesh
}

// NewMesh transforms local-space triangles into world space and builds one BVH
// per submesh. Submesh order is preserved and decides ties between equal hits.
func NewMesh(transform rl.Matrix, submeshes ...[]Triangle) (*Mesh, error) {
	m := &Mesh{Transform: transform}
	for _, local := range submeshes {
		tris := make([]Triangle, 0, len(local))
		for _, t := range local {
			world, ok := NewTriangle(
				rl.Vector3Transform(t.V0, transform),
				rl.Vector3Transform(t.V1, transform),
				rl.Vector3Transform(t.V2, transform),
			)
			if !ok {
				continue
			}
			tris = append(tris, world)
		}
		m.Submeshes = append(m.Submeshes, newSubmesh(tris))
	}
	if m.TriangleCount() == 0 {
		return nil, ErrEmptyMesh
	}
	return m, nil
}

// MeshFromModel extracts triangles from every mesh of a raylib Model.
// The model must stay loaded for the duration of the call only.
func MeshFromModel(model rl.Model, transform rl.Matrix) (*Mesh, error) {
	if model.MeshCount == 0 || model.Meshes == nil {
		return nil, ErrEmptyMesh
	}

	meshes := unsafe.Slice(model.Meshes, model.MeshCount)
	local := make([][]Triangle, 0, len(meshes))

	for _, mesh := range meshes {
		if mesh.Vertices == nil {
			local = append(local, nil)
			continue
		}
		vertices := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
		vertex := func(i int32) rl.Vector3 {
			return rl.Vector3{X: vertices[i*3+0], Y: vertices[i*3+1], Z: vertices[i*3+2]}
		}

		var tris []Triangle
		if mesh.Indices != nil {
			// Indexed mesh
			indices := unsafe.Slice(mesh.Indices, mesh.TriangleCount*3)
			for i := int32(0); i < mesh.TriangleCount; i++ {
				tris = append(tris, Triangle{
					V0: vertex(int32(indices[i*3+0])),
					V1: vertex(int32(indices[i*3+1])),
					V2: vertex(int32(indices[i*3+2])),
				})
			}
		} else {
			// Non-indexed mesh (every 3 vertices = 1 triangle)
			for i := int32(0); i < mesh.VertexCount/3; i++ {
				tris = append(tris, Triangle{V0: vertex(i*3 + 0), V1: vertex(i*3 + 1), V2: vertex(i*3 + 2)})
			}
		}
		local = append(local, tris)
	}

	return NewMesh(transform, local...)
}

func newSubmesh(tris []Triangle) Submesh {
	s := Submesh{Triangles: tris}
	s.root = buildBVH(tris)
	return s
}

// TriangleCount returns the number of triangles across all submeshes
func (m *Mesh) TriangleCount() int {
	n := 0
	for i := range m.Submeshes {
		n += len(m.Submeshes[i].Triangles)
	}
	return n
}

func (m *Mesh) SubmeshCount() int {
	return len(m.Submeshes)
}

// Bounds returns the world-space AABB of the whole mesh
func (m *Mesh) Bounds() AABB {
	bounds := emptyAABB()
	for i := range m.Submeshes {
		if root := m.Submeshes[i].root; root != nil {
			bounds = bounds.Union(root.bounds)
		}
	}
	return bounds
}
