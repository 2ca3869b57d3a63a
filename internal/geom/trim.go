package geom

// Trim extracts the portion of a flattened (closed or open) polyline
// between start and end, given as fractions of total arc length in
// [0,1]. When start > end the extraction wraps around the polyline's
// end back to its beginning, matching a trim-path shape whose offset
// has pushed its working range past the seam. offset shifts both
// start and end before wrapping, matching the trim-path "offset"
// property (also a fraction of total length, but unbounded).
func Trim(poly []Point, start, end, offset float32) []Point {
	if len(poly) < 2 {
		return nil
	}
	total := TotalLength(poly)
	if total <= 0 {
		return nil
	}
	if end-start >= 1 {
		out := make([]Point, len(poly))
		copy(out, poly)
		return out
	}
	cumulative := ArcLength(poly)

	s := wrapFraction(start + offset)
	e := wrapFraction(end + offset)

	if s == e {
		return nil
	}
	if s < e {
		return sliceByLength(poly, cumulative, s*total, e*total)
	}
	// Wraps past the seam: the tail from s to 1, then the head from 0 to e.
	tail := sliceByLength(poly, cumulative, s*total, total)
	head := sliceByLength(poly, cumulative, 0, e*total)
	if len(tail) == 0 {
		return head
	}
	if len(head) == 0 {
		return tail
	}
	return append(tail, head...)
}

func wrapFraction(f float32) float32 {
	f -= float32(int(f))
	if f < 0 {
		f++
	}
	return f
}

func sliceByLength(poly []Point, cumulative []float32, from, to float32) []Point {
	if to <= from {
		return nil
	}
	var out []Point
	out = append(out, PointAtLength(poly, cumulative, from))
	for i, l := range cumulative {
		if l > from && l < to {
			out = append(out, poly[i])
		}
	}
	out = append(out, PointAtLength(poly, cumulative, to))
	return out
}
