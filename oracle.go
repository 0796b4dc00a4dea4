package poisson

// isValid reports whether sample is at least 2r from every point in
// outside, the prefilled samples that fell beyond the grid's boundary.
func isValid(sample Sample, outside []Sample, radius float32, t Type) bool {
	sqRadius := (2 * radius) * (2 * radius)
	for _, o := range outside {
		if sqDist(o, sample, t) < sqRadius {
			return false
		}
	}
	return true
}

// isDiskFree is the shared validity predicate: sample is accepted at
// index (ix,iy) of subdivision level iff no previously accepted sample
// within the 5x5 window of level-0 parent cells is closer than 2r, and
// sample also clears isValid against the outside list.
//
// The window is centered on the level-0 parent because two samples
// closer than 2r must share a parent cell within an L∞ distance of 2
// (cell ≤ r√2, exclusion radius 2r); a 3x3 window would under-check. The
// corners of the 5x5 window are geometrically unreachable, but scanning
// them anyway keeps this code free of per-axis special-casing.
func isDiskFree(g *Grid, ix, iy, level int, sample Sample, outside []Sample, radius float32, t Type) bool {
	px, py := parentIndex(ix, iy, level)
	sqRadius := (2 * radius) * (2 * radius)

	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			bucket, ok := g.get(px+dx, py+dy)
			if !ok {
				continue
			}
			for _, v := range bucket {
				if sqDist(v, sample, t) < sqRadius {
					return false
				}
			}
		}
	}
	return isValid(sample, outside, radius, t)
}

// covered reports whether a child cell at (level+1) can be pruned: every
// one of its four corners lies within 2r of some accepted sample (or is
// already excluded by the outside list), so no point inside the cell
// could ever satisfy the minimum-distance constraint.
func covered(g *Grid, ix, iy, level int, radius float32, outside []Sample, t Type) bool {
	side := 1 << uint(level)
	spacing := g.cellWidth() / float32(side)
	sqRadius := (2 * radius) * (2 * radius)
	px, py := parentIndex(ix, iy, level)

	for cx := 0; cx <= 1; cx++ {
		for cy := 0; cy <= 1; cy++ {
			corner := Sample{
				(float32(ix) + float32(cx)) * spacing,
				(float32(iy) + float32(cy)) * spacing,
			}

			near := false
			for dx := -2; dx <= 2 && !near; dx++ {
				for dy := -2; dy <= 2 && !near; dy++ {
					bucket, ok := g.get(px+dx, py+dy)
					if !ok {
						continue
					}
					for _, v := range bucket {
						if sqDist(v, corner, t) < sqRadius {
							near = true
							break
						}
					}
				}
			}
			if !near && isValid(corner, outside, radius, t) {
				return false
			}
		}
	}
	return true
}
