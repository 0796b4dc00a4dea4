package poisson

import (
	"math"

	"github.com/kelindar/bitmap"
)

// Grid is a uniform spatial hash over [0,1)², sized so that a cell's
// diagonal equals the exclusion diameter 2r: at most one accepted sample
// can ever occupy a single bucket.
type Grid struct {
	data    [][]Sample
	occ     bitmap.Bitmap // bit i set iff data[i] is non-empty
	side    int
	cell    float32
	poisson Type
}

// newGrid builds an empty Grid for the given radius and boundary type.
func newGrid(radius float32, t Type) *Grid {
	cell := radius * 2 / float32(math.Sqrt2)
	side := int(1 / cell)
	if side < 1 {
		side = 1
	}

	g := &Grid{
		data:    make([][]Sample, side*side),
		side:    side,
		cell:    cell,
		poisson: t,
	}
	g.occ.Grow(uint32(side * side))
	return g
}

// cells returns the total number of buckets in the grid, side².
func (g *Grid) cells() int {
	return len(g.data)
}

// sideLen returns the grid width in cells.
func (g *Grid) sideLen() int {
	return g.side
}

// cellWidth returns the cell's side length.
func (g *Grid) cellWidth() float32 {
	return g.cell
}

// get returns the bucket at ix,iy, or (nil, false) if the index is out of
// range under Normal boundary semantics.
func (g *Grid) get(ix, iy int) ([]Sample, bool) {
	code, ok := g.encode(ix, iy)
	if !ok {
		return nil, false
	}
	return g.data[code], true
}

// occupied reports whether the bucket at ix,iy holds at least one sample.
// Backed by a bitmap so the maximal engine's dart phase can test
// occupancy in O(1) without touching the backing slice.
func (g *Grid) occupied(ix, iy int) bool {
	code, ok := g.encode(ix, iy)
	if !ok {
		return false
	}
	return g.occ.Contains(uint32(code))
}

// push inserts sample into the bucket at ix,iy. It reports false if the
// index is out of range; the caller is then responsible for appending to
// the outside list instead.
func (g *Grid) push(ix, iy int, sample Sample) bool {
	code, ok := g.encode(ix, iy)
	if !ok {
		return false
	}
	g.data[code] = append(g.data[code], sample)
	g.occ.Set(uint32(code))
	return true
}

// decode converts a flat bucket index back into a 2D grid coordinate.
func (g *Grid) decode(code int) (ix, iy int, ok bool) {
	if code < 0 || code >= g.side*g.side {
		return 0, 0, false
	}
	return code / g.side, code % g.side, true
}

// encode packs a 2D index into a flat bucket offset. Under Normal,
// out-of-range indices report ok=false. Under Periodic, each coordinate
// is reduced modulo side with Euclidean semantics (negatives wrap).
func (g *Grid) encode(ix, iy int) (code int, ok bool) {
	if g.poisson == Periodic {
		ix = euclidMod(ix, g.side)
		iy = euclidMod(iy, g.side)
	} else if ix < 0 || ix >= g.side || iy < 0 || iy >= g.side {
		return 0, false
	}
	return ix*g.side + iy, true
}

// euclidMod returns n modulo m with a non-negative result, for any sign
// of n.
func euclidMod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// sampleToIndex maps an absolute coordinate to its base-grid cell index:
// floor(value * side). Indexing by side rather than by cell width keeps
// every coordinate in [0,1) within [0, side-1], since side == floor(1/cell)
// can be strictly less than 1/cell.
func sampleToIndex(s Sample, side int) (ix, iy int) {
	return int(math.Floor(float64(s[0]) * float64(side))), int(math.Floor(float64(s[1]) * float64(side)))
}

// parentIndex returns the level-0 ancestor of a level-ℓ subdivision index:
// component-wise floor(index / 2^level).
func parentIndex(ix, iy, level int) (px, py int) {
	split := 1 << uint(level)
	return floorDiv(ix, split), floorDiv(iy, split)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
