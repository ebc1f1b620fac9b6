package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// maxTrianglesPerLeaf is the threshold for splitting BVH nodes.
const maxTrianglesPerLeaf = 4

const maxBVHDepth = 24

// bvhPadding inflates node bounds so rays grazing a triangle edge are not
// culled by float rounding in the slab test.
const bvhPadding = 1e-5

// bvhNode is a node in the bounding volume hierarchy.
// Leaves hold indices into the submesh triangle slice.
type bvhNode struct {
	bounds    AABB
	left      *bvhNode
	right     *bvhNode
	triangles []int
}

func (n *bvhNode) leaf() bool {
	return n.left == nil && n.right == nil
}

// buildBVH constructs a bounding volume hierarchy for fast ray queries
func buildBVH(tris []Triangle) *bvhNode {
	if len(tris) == 0 {
		return nil
	}

	indices := make([]int, len(tris))
	for i := range indices {
		indices[i] = i
	}
	return buildBVHNode(tris, indices, 0)
}

func buildBVHNode(tris []Triangle, indices []int, depth int) *bvhNode {
	bounds := triangleBounds(tris, indices)
	pad := rl.Vector3{X: bvhPadding, Y: bvhPadding, Z: bvhPadding}
	node := &bvhNode{bounds: AABB{
		Min: rl.Vector3Subtract(bounds.Min, pad),
		Max: rl.Vector3Add(bounds.Max, pad),
	}}

	if len(indices) <= maxTrianglesPerLeaf || depth >= maxBVHDepth {
		node.triangles = indices
		return node
	}

	// Split on the longest axis
	size := node.bounds.Size()
	axis := 0
	if size.Y > size.X {
		axis = 1
	}
	if size.Z > axisValue(size, axis) {
		axis = 2
	}

	mid := partitionTriangles(tris, indices, axis)
	if mid == 0 || mid == len(indices) {
		// Couldn't split, make leaf
		node.triangles = indices
		return node
	}

	node.left = buildBVHNode(tris, indices[:mid], depth+1)
	node.right = buildBVHNode(tris, indices[mid:], depth+1)
	return node
}

func triangleBounds(tris []Triangle, indices []int) AABB {
	bounds := emptyAABB()
	for _, idx := range indices {
		t := &tris[idx]
		bounds = bounds.Extend(t.V0).Extend(t.V1).Extend(t.V2)
	}
	return bounds
}

// partitionTriangles splits indices around the mean centroid on axis and
// returns the index of the first element of the upper half.
func partitionTriangles(tris []Triangle, indices []int, axis int) int {
	center := float32(0)
	for _, idx := range indices {
		center += axisValue(centroid(&tris[idx]), axis)
	}
	center /= float32(len(indices))

	left := 0
	right := len(indices) - 1
	for left <= right {
		if axisValue(centroid(&tris[indices[left]]), axis) < center {
			left++
		} else {
			indices[left], indices[right] = indices[right], indices[left]
			right--
		}
	}
	return left
}
