package geom

// ArcLength computes cumulative arc length at each vertex of a
// flattened polyline: cumulative[0] is always 0, cumulative[i] is the
// total polyline length from the first point through point i.
func ArcLength(poly []Point) []float32 {
	cumulative := make([]float32, len(poly))
	for i := 1; i < len(poly); i++ {
		cumulative[i] = cumulative[i-1] + poly[i].Distance(poly[i-1])
	}
	return cumulative
}

// TotalLength returns the total length of a flattened polyline.
func TotalLength(poly []Point) float32 {
	if len(poly) == 0 {
		return 0
	}
	cum := ArcLength(poly)
	return cum[len(cum)-1]
}

// PointAtLength returns the point on the polyline at the given arc
// length, clamping to the polyline's endpoints outside [0, total].
func PointAtLength(poly []Point, cumulative []float32, length float32) Point {
	if len(poly) == 0 {
		return Point{}
	}
	if length <= 0 {
		return poly[0]
	}
	total := cumulative[len(cumulative)-1]
	if length >= total {
		return poly[len(poly)-1]
	}
	for i := 1; i < len(cumulative); i++ {
		if cumulative[i] >= length {
			segLen := cumulative[i] - cumulative[i-1]
			if segLen <= 0 {
				return poly[i-1]
			}
			t := (length - cumulative[i-1]) / segLen
			return poly[i-1].Lerp(poly[i], t)
		}
	}
	return poly[len(poly)-1]
}
