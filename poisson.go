// Package poisson generates Poisson-disk distributions of points in
// [0, 1)²: a set of samples such that every pair is separated by at
// least a given minimum distance, and the points fill the square
// uniformly (blue-noise spectrum).
//
// Two algorithms are available. Ebeida produces a maximal sampling (no
// further point can be inserted anywhere once it terminates), with
// O(n·2^d) time and space relative to the sample count. Bridson produces
// an approximately uniform, non-maximal sampling faster, in O(n) time
// and space.
//
// Generate a non-tiling distribution with disk radius 0.1 using the
// slower but maximal algorithm:
//
//	gen := poisson.WithRadius(0.1, poisson.Normal).
//		Build(poisson.NewSource(1), poisson.Ebeida)
//	samples := gen.Generate()
//
// Generate a tiling distribution with approximately 100 samples using
// the faster algorithm:
//
//	gen := poisson.WithSamples(100, 0.9, poisson.Periodic).
//		Build(poisson.NewSource(1), poisson.Bridson)
//	for sample := range gen.Seq() {
//		fmt.Println(sample)
//	}
package poisson

import (
	"iter"
	"math"
)

// Type selects the boundary semantics of the sampling domain.
type Type int

const (
	// Normal acts like there is void all around the space, placing no
	// restrictions at the edges.
	Normal Type = iota
	// Periodic makes the space wrap around at the edges, so the
	// generated distribution tiles.
	Periodic
)

// AlgorithmTag selects which generation strategy Build uses. It carries
// no behaviour of its own beyond selecting the engine.
type AlgorithmTag int

const (
	// Ebeida selects the maximal, quad-subdivision engine.
	Ebeida AlgorithmTag = iota
	// Bridson selects the faster, non-maximal active-front engine.
	Bridson
)

// maxRadius is the largest radius that fits a single cell spanning the
// whole unit square: √2/2.
var maxRadius = float32(math.Sqrt2) / 2

// algorithm is the surface both generation engines implement. It is
// deliberately unexported: callers select an engine via AlgorithmTag,
// not by naming a type.
type algorithm interface {
	next(rng Source) (Sample, bool)
	sizeHint() (lo, hi int)
	restrict(sample Sample)
	staysLegal(sample Sample) bool
}

// Builder holds the immutable configuration a Generator is built from.
type Builder struct {
	radius  float32
	poisson Type
}

// WithRadius builds a Builder with an explicit disk radius. radius must
// be in (0, √2/2].
func WithRadius(radius float32, t Type) Builder {
	if !(radius > 0 && radius <= maxRadius) {
		panic("poisson: radius must be in (0, sqrt(2)/2]")
	}
	return Builder{radius: radius, poisson: t}
}

// WithRelativeRadius builds a Builder from a radius relative to the
// largest possible one. relative must be in (0, 1].
func WithRelativeRadius(relative float32, t Type) Builder {
	if !(relative > 0 && relative <= 1) {
		panic("poisson: relative radius must be in (0, 1]")
	}
	return Builder{radius: relative * maxRadius, poisson: t}
}

// WithSamples builds a Builder whose radius is calibrated so that
// roughly samples points are produced. samples must be > 0 and relative
// must be in (0, 1].
func WithSamples(samples int, relative float32, t Type) Builder {
	return Builder{radius: calcRadius(samples, relative, t), poisson: t}
}

// Radius returns the configured disk radius.
func (b Builder) Radius() float32 {
	return b.radius
}

// PoissonType returns the configured boundary semantics.
func (b Builder) PoissonType() Type {
	return b.poisson
}

// Build constructs a Generator that draws randomness from rng and
// advances via the selected algorithm. rng must not be shared with any
// other generator: the generator takes exclusive ownership of it.
func (b Builder) Build(rng Source, tag AlgorithmTag) *Generator {
	var algo algorithm
	switch tag {
	case Bridson:
		algo = newBridson(b.radius, b.poisson)
	default:
		algo = newEbeida(b.radius, b.poisson)
	}
	return &Generator{builder: b, rng: rng, algo: algo}
}

// Generator produces a stream of Poisson-disk samples, pulled one at a
// time via Next or Seq. It is not safe for concurrent use.
type Generator struct {
	builder Builder
	rng     Source
	algo    algorithm
}

// Next advances the generator and returns its next sample, or
// ok=false once the generator is terminal.
func (g *Generator) Next() (sample Sample, ok bool) {
	return g.algo.next(g.rng)
}

// Seq returns the generator's remaining samples as a range-over-func
// sequence. It stops once the generator is terminal or the loop body
// returns false.
func (g *Generator) Seq() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for {
			sample, ok := g.Next()
			if !ok {
				return
			}
			if !yield(sample) {
				return
			}
		}
	}
}

// Generate drains the generator and returns every sample it produces.
func (g *Generator) Generate() []Sample {
	var out []Sample
	for sample := range g.Seq() {
		out = append(out, sample)
	}
	return out
}

// SizeHint returns a conservative, monotone (lower, upper) bound on the
// number of samples still to be produced.
func (g *Generator) SizeHint() (lo, hi int) {
	return g.algo.sizeHint()
}

// Restrict injects an externally supplied sample as an exclusion zone.
// It is honoured even if it violates the minimum-distance constraint
// against already-accepted samples: the generator keeps both rather
// than retroactively removing either.
func (g *Generator) Restrict(sample Sample) {
	g.algo.restrict(sample)
}

// StaysLegal reports whether calling Restrict(sample) right now would
// keep the sampling's minimum-distance invariant intact. It does not
// mutate the generator.
func (g *Generator) StaysLegal(sample Sample) bool {
	return g.algo.staysLegal(sample)
}

// Radius returns the generator's disk radius.
func (g *Generator) Radius() float32 {
	return g.builder.radius
}

// PoissonType returns the generator's boundary semantics.
func (g *Generator) PoissonType() Type {
	return g.builder.poisson
}
