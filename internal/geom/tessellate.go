package geom

// Mesh is a tessellated filled shape: a flat vertex buffer and a
// triangle index list (three indices per triangle) into it, ready for
// the rasterizer's per-triangle coverage test.
type Mesh struct {
	Vertices []Point
	Indices  []uint32
}

// Tessellate fan-triangulates each subpath's polygon (closed or not;
// subpaths with fewer than three points are skipped) about its first
// vertex. This is exact for convex and star-convex polygons
// (the common case for Lottie shape outlines) and degrades gracefully
// — some coverage may be missed or doubled — for pathological
// concave/self-intersecting ones, which spec-level documents using a
// nonzero or even-odd fill rule are not expected to rely on for exact
// coverage.
func Tessellate(subpaths [][]Point) Mesh {
	var mesh Mesh
	for _, poly := range subpaths {
		if len(poly) < 3 {
			continue
		}
		base := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, poly...)
		for i := 1; i < len(poly)-1; i++ {
			mesh.Indices = append(mesh.Indices,
				base, base+uint32(i), base+uint32(i+1))
		}
	}
	return mesh
}
