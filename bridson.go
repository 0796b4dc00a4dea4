package poisson

import "math"

// bridsonMaxAttempts bounds the number of annulus throws from a single
// active sample before it is dropped from the active front.
const bridsonMaxAttempts = 30

// bridsonAlgo is the active-front engine (Bridson, "Fast Poisson disk
// sampling in arbitrary dimensions", SIGGRAPH Sketches 2007). It produces
// an approximately uniform but not necessarily maximal sampling, faster
// than the Ebeida engine.
type bridsonAlgo struct {
	grid    *Grid
	active  []Sample
	outside []Sample
	success int

	// seedBudget caps the otherwise-unbounded seed phase so that full
	// prefill coverage of the domain terminates instead of looping
	// forever.
	seedBudget int

	radius  float32
	poisson Type
}

func newBridson(radius float32, t Type) *bridsonAlgo {
	grid := newGrid(radius, t)
	return &bridsonAlgo{
		grid:       grid,
		seedBudget: grid.cells() * bridsonMaxAttempts,
		radius:     radius,
		poisson:    t,
	}
}

func (a *bridsonAlgo) next(rng Source) (Sample, bool) {
	for len(a.active) > 0 {
		pick := rng.Intn(len(a.active))
		cur := a.active[pick]

		for attempt := 0; attempt < bridsonMaxAttempts; attempt++ {
			offset := randomAnnulus(rng, 2*a.radius, 4*a.radius)
			sample := cur.add(offset)
			if !sample.inUnitSquare() {
				continue
			}

			ix, iy := sampleToIndex(sample, a.grid.sideLen())
			if isDiskFree(a.grid, ix, iy, 0, sample, a.outside, a.radius, a.poisson) {
				if !a.grid.push(ix, iy, sample) {
					a.outside = append(a.outside, sample)
				}
				a.active = append(a.active, sample)
				a.success++
				return sample, true
			}
		}

		// All attempts exhausted: cur can no longer spawn candidates.
		last := len(a.active) - 1
		a.active[pick] = a.active[last]
		a.active = a.active[:last]
	}

	if a.success == 0 {
		for a.seedBudget > 0 {
			a.seedBudget--
			cell := rng.Intn(a.grid.cells())
			ix, iy, ok := a.grid.decode(cell)
			if !ok {
				continue
			}

			sample := randomInCell(rng, [2]int{ix, iy}, 0, a.grid.cellWidth())
			if isDiskFree(a.grid, ix, iy, 0, sample, a.outside, a.radius, a.poisson) {
				if !a.grid.push(ix, iy, sample) {
					a.outside = append(a.outside, sample)
				}
				a.active = append(a.active, sample)
				a.success++
				return sample, true
			}
		}
	}

	return Sample{}, false
}

func (a *bridsonAlgo) sizeHint() (lo, hi int) {
	high := a.grid.cells() - a.success
	if high < 0 {
		high = 0
	}

	spacing := a.grid.cellWidth()
	gridVolume := float32(high) * spacing * spacing
	sphereVolume := float32(math.Pi) * a.radius * a.radius

	lowF := gridVolume / sphereVolume
	low := int(math.Floor(float64(lowF)))
	if low > 0 {
		low--
	}
	return low, high
}

func (a *bridsonAlgo) restrict(sample Sample) {
	a.success++
	ix, iy := sampleToIndex(sample, a.grid.sideLen())
	if !a.grid.push(ix, iy, sample) {
		a.outside = append(a.outside, sample)
	}
}

func (a *bridsonAlgo) staysLegal(sample Sample) bool {
	ix, iy := sampleToIndex(sample, a.grid.sideLen())
	return isDiskFree(a.grid, ix, iy, 0, sample, a.outside, a.radius, a.poisson)
}
