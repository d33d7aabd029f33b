package metrics

// TriangleResult is node-aligned: Triangles[i] is the number of distinct
// triangles through NodeIDs[i].
type TriangleResult struct {
	NodeIDs   []int64
	Triangles []int64
}
