package poisson

import "math"

// Sample is a point in the unit square [0,1)², or in the outside list
// when supplied via Restrict with coordinates beyond it.
type Sample [2]float32

// add returns the component-wise sum of s and o.
func (s Sample) add(o Sample) Sample {
	return Sample{s[0] + o[0], s[1] + o[1]}
}

// scale returns s with both components multiplied by f.
func (s Sample) scale(f float32) Sample {
	return Sample{s[0] * f, s[1] * f}
}

// inUnitSquare reports whether both components of s lie in [0, 1).
func (s Sample) inUnitSquare() bool {
	return s[0] >= 0 && s[0] < 1 && s[1] >= 0 && s[1] < 1
}

// sqDist returns the squared distance between v1 and v2. Under Periodic
// it is the minimum over the nine toroidal offsets, so that samples near
// opposite edges of the unit square are recognized as close.
func sqDist(v1, v2 Sample, t Type) float32 {
	dx := v2[0] - v1[0]
	dy := v2[1] - v1[1]
	if t == Normal {
		return dx*dx + dy*dy
	}

	best := float32(math.MaxFloat32)
	for ox := float32(-1); ox <= 1; ox++ {
		for oy := float32(-1); oy <= 1; oy++ {
			ddx := dx + ox
			ddy := dy + oy
			if d := ddx*ddx + ddy*ddy; d < best {
				best = d
			}
		}
	}
	return best
}

// randomAnnulus draws an offset from the annulus {v : min ≤ |v| ≤ max}: a
// normalized Gaussian direction scaled by a radius drawn uniformly from
// [0, max), rejecting radii below min. The radius is uniform over
// [min, max), so offsets are not uniform by area: they are denser near
// the inner edge.
func randomAnnulus(rng Source, min, max float32) Sample {
	for {
		x := float32(rng.NormFloat64())
		y := float32(rng.NormFloat64())
		length := float32(math.Sqrt(float64(x*x + y*y)))
		if length == 0 {
			continue
		}
		x /= length
		y /= length

		r := rng.Float32() * max
		result := Sample{x * r, y * r}
		if d := float32(math.Sqrt(float64(result[0]*result[0] + result[1]*result[1]))); d >= min {
			return result
		}
	}
}

// randomInCell draws a uniform point within the sub-cell ind at the given
// subdivision level, where each base cell has been split 2^level times per
// axis. The spacing is the base cell width divided by 2^level.
func randomInCell(rng Source, ind [2]int, level int, baseCell float32) Sample {
	side := float32(uint(1) << uint(level))
	spacing := baseCell / side
	return Sample{
		(float32(ind[0]) + rng.Float32()) * spacing,
		(float32(ind[1]) + rng.Float32()) * spacing,
	}
}
