package geom

// Outline builds the closed outlines of the area between lower and
// upper, both sampled at the positions pos along the value axis.
// Consecutive samples with zero width (upper == lower) separate the
// area into independent polygons; a run of zero width samples produces
// no polygon. Each polygon walks the lower boundary forward, then the
// upper boundary backwards, and includes the zero width samples
// adjacent to the run so the area tapers off. With vertical set the
// value axis is the y-axis.
func Outline(pos, lower, upper []float64, vertical bool) []Polygon {
	n := len(pos)
	if len(lower) < n || len(upper) < n {
		return nil
	}
	pt := func(along, across float64) Point {
		if vertical {
			return Point{X: across, Y: along}
		}
		return Point{X: along, Y: across}
	}

	var polys []Polygon
	for j := 0; j < n; {
		if upper[j] == lower[j] {
			j++
			continue
		}
		first := j
		for j < n && upper[j] != lower[j] {
			j++
		}
		last := j - 1
		if first > 0 {
			first--
		}
		if last < n-1 {
			last++
		}

		poly := make(Polygon, 0, 2*(last-first+1))
		for k := first; k <= last; k++ {
			poly = append(poly, pt(pos[k], lower[k]))
		}
		for k := last; k >= first; k-- {
			poly = append(poly, pt(pos[k], upper[k]))
		}
		polys = append(polys, poly)
	}
	return polys
}
