package poisson

import "math"

// ebeidaDartFraction (α in the paper) is the share of remaining candidate
// cells thrown as darts before a level is subdivided. Calibrated from
// Ebeida et al. to amortise to O(n) dart throws across all levels.
const ebeidaDartFraction = 0.3

// mantissaDigits caps subdivision depth at the float32 mantissa width:
// below this, a sub-cell's center is numerically indistinguishable from
// its corner, so further subdivision is not meaningful.
const mantissaDigits = 23

// ebeidaAlgo is the maximal-sampling engine (Ebeida et al., "A Simple
// Algorithm for Maximal Poisson-Disk Sampling in High Dimensions").
// It produces a maximal sampling: no further point can be inserted
// anywhere once it terminates.
type ebeidaAlgo struct {
	grid    *Grid
	indices [][2]int
	level   int
	throws  int
	success int
	outside []Sample

	radius  float32
	poisson Type
}

func newEbeida(radius float32, t Type) *ebeidaAlgo {
	grid := newGrid(radius, t)
	side := grid.sideLen()

	indices := make([][2]int, 0, side*side)
	for ix := 0; ix < side; ix++ {
		for iy := 0; iy < side; iy++ {
			indices = append(indices, [2]int{ix, iy})
		}
	}

	return &ebeidaAlgo{
		grid:    grid,
		indices: indices,
		throws:  dartBudget(len(indices)),
		radius:  radius,
		poisson: t,
	}
}

func dartBudget(n int) int {
	return int(math.Ceil(ebeidaDartFraction * float64(n)))
}

func (a *ebeidaAlgo) next(rng Source) (Sample, bool) {
	if len(a.indices) == 0 {
		return Sample{}, false
	}

	for a.level < mantissaDigits {
		for a.throws > 0 && len(a.indices) > 0 {
			a.throws--
			pick := rng.Intn(len(a.indices))
			cur := a.indices[pick]
			px, py := parentIndex(cur[0], cur[1], a.level)

			if a.grid.occupied(px, py) {
				a.swapRemove(pick)
				continue
			}

			sample := randomInCell(rng, cur, a.level, a.grid.cellWidth())
			if isDiskFree(a.grid, cur[0], cur[1], a.level, sample, a.outside, a.radius, a.poisson) {
				a.grid.push(px, py, sample)
				a.swapRemove(pick)
				a.success++
				return sample, true
			}
			// The dart is consumed; cur remains a live candidate.
		}

		if len(a.indices) == 0 {
			return Sample{}, false
		}
		a.subdivide()
		a.level++
		a.throws = dartBudget(len(a.indices))
		if len(a.indices) == 0 {
			return Sample{}, false
		}
	}

	// Mantissa floor reached: remaining candidates become forced picks.
	last := len(a.indices) - 1
	cur := a.indices[last]
	a.indices = a.indices[:last]

	spacing := a.grid.cellWidth() / float32(uint(1)<<uint(a.level))
	sample := Sample{float32(cur[0]) * spacing, float32(cur[1]) * spacing}
	if isDiskFree(a.grid, cur[0], cur[1], a.level, sample, a.outside, a.radius, a.poisson) {
		px, py := parentIndex(cur[0], cur[1], a.level)
		a.grid.push(px, py, sample)
		a.success++
		return sample, true
	}
	return Sample{}, false
}

// swapRemove drops indices[i] without preserving order, avoiding a shift.
func (a *ebeidaAlgo) swapRemove(i int) {
	last := len(a.indices) - 1
	a.indices[i] = a.indices[last]
	a.indices = a.indices[:last]
}

// subdivide replaces every surviving candidate with its four children,
// dropping any child that is provably covered.
func (a *ebeidaAlgo) subdivide() {
	next := make([][2]int, 0, len(a.indices)*4)
	childLevel := a.level + 1
	for _, cur := range a.indices {
		for dx := 0; dx <= 1; dx++ {
			for dy := 0; dy <= 1; dy++ {
				child := [2]int{2*cur[0] + dx, 2*cur[1] + dy}
				if !covered(a.grid, child[0], child[1], childLevel, a.radius, a.outside, a.poisson) {
					next = append(next, child)
				}
			}
		}
	}
	a.indices = next
}

func (a *ebeidaAlgo) sizeHint() (lo, hi int) {
	side := float32(uint(1) << uint(a.level))
	spacing := a.grid.cellWidth() / side
	gridVolume := float32(len(a.indices)) * spacing * spacing
	sphereVolume := float32(math.Pi) * (2 * a.radius) * (2 * a.radius)

	lowF := gridVolume / sphereVolume
	low := int(math.Floor(float64(lowF)))
	if low > 0 {
		low--
	}

	high := a.grid.cells() - a.success
	if high < 0 {
		high = 0
	}
	return low, high
}

func (a *ebeidaAlgo) restrict(sample Sample) {
	a.success++
	ix, iy := sampleToIndex(sample, a.grid.sideLen())
	if !a.grid.push(ix, iy, sample) {
		a.outside = append(a.outside, sample)
	}
}

// staysLegal always queries level 0: accepted samples only ever live in
// the base grid, so the 5x5 base-grid window is level-agnostic even
// while the engine is subdivided past level 0.
func (a *ebeidaAlgo) staysLegal(sample Sample) bool {
	ix, iy := sampleToIndex(sample, a.grid.sideLen())
	return isDiskFree(a.grid, ix, iy, 0, sample, a.outside, a.radius, a.poisson)
}
