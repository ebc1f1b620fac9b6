package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Unlimited can be passed as maxDistance to cast an unbounded ray.
var Unlimited = math32.Inf(1)

const triangleEpsilon = 1e-6

// Ray is an origin and a unit direction.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// NewRay normalizes direction. A zero direction produces a ray that never hits.
func NewRay(origin, direction rl.Vector3) Ray {
	dir, _ := SafeNormalize(direction)
	return Ray{Origin: origin, Direction: dir}
}

// Hit describes the nearest intersection of a ray with a mesh.
// Distance, Point, Normal, Submesh and Triangle are only meaningful when Hit is true.
type Hit struct {
	Hit      bool
	Distance float32
	Point    rl.Vector3
	Normal   rl.Vector3
	Submesh  int
	Triangle int
}

// Raycast returns the nearest intersection across every submesh within maxDistance.
func (m *Mesh) Raycast(ray Ray, maxDistance float32) Hit {
	return m.RaycastFunc(ray, maxDistance, nil)
}

// RaycastFunc is Raycast restricted to hits for which accept returns true.
// Rejected surfaces do not occlude surfaces behind them. A nil accept takes every hit.
//
// Submeshes are scanned in order and a later submesh only wins with a strictly
// smaller distance, so equal hits resolve to the first submesh encountered.
func (m *Mesh) RaycastFunc(ray Ray, maxDistance float32, accept func(Hit) bool) Hit {
	var closest Hit
	if m == nil || ray.Direction == (rl.Vector3{}) {
		return closest
	}

	limit := maxDistance
	for i := range m.Submeshes {
		hit := m.Submeshes[i].raycast(ray, limit, accept)
		if !hit.Hit {
			continue
		}
		if !closest.Hit || hit.Distance < closest.Distance {
			hit.Submesh = i
			closest = hit
			limit = hit.Distance
		}
	}

	return closest
}

func (s *Submesh) raycast(ray Ray, maxDistance float32, accept func(Hit) bool) Hit {
	q := bvhQuery{
		tris:   s.Triangles,
		ray:    ray,
		limit:  maxDistance,
		accept: accept,
	}
	q.visit(s.root)
	return q.best
}

type bvhQuery struct {
	tris   []Triangle
	ray    Ray
	limit  float32
	accept func(Hit) bool
	best   Hit
}

func (q *bvhQuery) visit(node *bvhNode) {
	if node == nil {
		return
	}
	if _, ok := node.bounds.RayEntry(q.ray.Origin, q.ray.Direction, q.limit); !ok {
		return
	}

	if !node.leaf() {
		q.visit(node.left)
		q.visit(node.right)
		return
	}

	for _, idx := range node.triangles {
		t := &q.tris[idx]
		dist, ok := rayTriangle(q.ray, t)
		if !ok || dist > q.limit {
			continue
		}
		// Equal distances keep the lowest triangle index so results do not
		// depend on BVH traversal order.
		if q.best.Hit && (dist > q.best.Distance || (dist == q.best.Distance && idx > q.best.Triangle)) {
			continue
		}

		hit := Hit{
			Hit:      true,
			Distance: dist,
			Point:    rl.Vector3Add(q.ray.Origin, rl.Vector3Scale(q.ray.Direction, dist)),
			Normal:   t.Normal,
			Triangle: idx,
		}
		if q.accept != nil && !q.accept(hit) {
			continue
		}
		q.best = hit
		q.limit = dist
	}
}

// rayTriangle is a double-sided Möller–Trumbore intersection test.
func rayTriangle(ray Ray, t *Triangle) (float32, bool) {
	edge1 := rl.Vector3Subtract(t.V1, t.V0)
	edge2 := rl.Vector3Subtract(t.V2, t.V0)

	p := rl.Vector3CrossProduct(ray.Direction, edge2)
	det := rl.Vector3DotProduct(edge1, p)
	if math32.Abs(det) < triangleEpsilon {
		return 0, false
	}
	invDet := 1 / det

	tv := rl.Vector3Subtract(ray.Origin, t.V0)
	u := rl.Vector3DotProduct(tv, p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qv := rl.Vector3CrossProduct(tv, edge1)
	v := rl.Vector3DotProduct(ray.Direction, qv) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	dist := rl.Vector3DotProduct(edge2, qv) * invDet
	if dist <= triangleEpsilon {
		return 0, false
	}
	return dist, true
}
