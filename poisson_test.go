package poisson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertLegalPoisson checks (P1): every pair of distinct samples is
// separated by at least 2*radius. Under Periodic it also checks (P3):
// the set tiled across the 3x3 neighborhood of tiles satisfies the same
// bound, since wraparound neighbors must respect the exclusion radius
// too.
func assertLegalPoisson(t *testing.T, samples []Sample, radius float32, poisson Type) {
	t.Helper()

	pts := samples
	if poisson == Periodic {
		pts = nil
		for ox := -1; ox <= 1; ox++ {
			for oy := -1; oy <= 1; oy++ {
				for _, s := range samples {
					pts = append(pts, Sample{s[0] + float32(ox), s[1] + float32(oy)})
				}
			}
		}
	}

	sqRadius := (2 * radius) * (2 * radius)
	for i := range pts {
		for j := range pts {
			if i == j {
				continue
			}
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			d := dx*dx + dy*dy
			assert.GreaterOrEqual(t, d, sqRadius,
				"samples %v and %v are closer than 2r", pts[i], pts[j])
		}
	}
}

func generateAll(t *testing.T, b Builder, rng Source, tag AlgorithmTag) ([]Sample, []struct{ lo, hi int }) {
	t.Helper()

	gen := b.Build(rng, tag)
	var samples []Sample
	var hints []struct{ lo, hi int }
	for {
		lo, hi := gen.SizeHint()
		hints = append(hints, struct{ lo, hi int }{lo, hi})
		sample, ok := gen.Next()
		if !ok {
			hints = hints[:len(hints)-1]
			break
		}
		samples = append(samples, sample)
	}
	return samples, hints
}

// TestS1RadiusDistributionIsLegalAndDeterministic covers scenario S1:
// fixed seed, Normal type, Ebeida algorithm - every sample satisfies
// (P1)/(P2), the size hint is monotone, and the sequence is
// deterministic under the seed.
func TestS1RadiusDistributionIsLegalAndDeterministic(t *testing.T) {
	b := WithRadius(0.1, Normal)

	samples1, hints := generateAll(t, b, NewSource(1), Ebeida)
	samples2, _ := generateAll(t, b, NewSource(1), Ebeida)

	require.Equal(t, samples1, samples2, "same seed must produce an identical sequence")
	assertLegalPoisson(t, samples1, b.Radius(), Normal)

	for _, s := range samples1 {
		assert.GreaterOrEqual(t, s[0], float32(0))
		assert.Less(t, s[0], float32(1))
		assert.GreaterOrEqual(t, s[1], float32(0))
		assert.Less(t, s[1], float32(1))
	}

	total := len(hints)
	for n, h := range hints {
		remaining := total - n
		assert.LessOrEqual(t, h.lo, remaining)
		assert.GreaterOrEqual(t, h.hi, remaining)
	}
}

// TestS2PeriodicSamplesWithBridson covers scenario S2: ~100 target
// samples, relative radius 0.9, Periodic, Bridson algorithm.
func TestS2PeriodicSamplesWithBridson(t *testing.T) {
	b := WithSamples(100, 0.9, Periodic)
	samples, _ := generateAll(t, b, NewSource(7), Bridson)

	assert.GreaterOrEqual(t, len(samples), 50)
	assertLegalPoisson(t, samples, b.Radius(), Periodic)
}

// TestS4PrefillFromAnotherRunStaysLegal covers scenario S4: prefilling
// the first 25 points of one run into a second run must be accepted by
// stays_legal, and the final set remains legal.
func TestS4PrefillFromAnotherRunStaysLegal(t *testing.T) {
	b := WithSamples(100, 0.8, Normal)

	seed := b.Build(NewSource(3), Ebeida)
	var prefill []Sample
	for i := 0; i < 25; i++ {
		s, ok := seed.Next()
		if !ok {
			break
		}
		prefill = append(prefill, s)
	}

	gen := b.Build(NewSource(9), Ebeida)
	var final []Sample
	for _, p := range prefill {
		require.True(t, gen.StaysLegal(p), "prefilled sample %v should stay legal", p)
		gen.Restrict(p)
		final = append(final, p)
	}
	for s := range gen.Seq() {
		final = append(final, s)
	}

	assertLegalPoisson(t, final, b.Radius(), Normal)
}

// TestS5PrefillBoundaryPointsAccepted covers scenario S5: the eight
// boundary points of the unit square (excluding the center) are all
// in-range and must be accepted, with later samples respecting them.
func TestS5PrefillBoundaryPointsAccepted(t *testing.T) {
	b := WithSamples(100, 0.8, Normal)
	gen := b.Build(NewSource(5), Ebeida)

	boundary := []Sample{
		{0, 0}, {0, 0.5}, {0, 1 - 1e-6},
		{0.5, 0}, {1 - 1e-6, 0},
		{0.5, 1 - 1e-6}, {1 - 1e-6, 0.5}, {1 - 1e-6, 1 - 1e-6},
	}
	for _, p := range boundary {
		require.True(t, gen.StaysLegal(p))
		gen.Restrict(p)
	}

	final := append([]Sample{}, boundary...)
	final = append(final, gen.Generate()...)
	assertLegalPoisson(t, final, b.Radius(), Normal)
}

// TestS6PrefillOutsideUnitSquareGoesToOutsideList covers scenario S6:
// points outside [0,1)^2 are retained in the outside list (not dropped)
// and still constrain later samples via isValid.
func TestS6PrefillOutsideUnitSquareGoesToOutsideList(t *testing.T) {
	b := WithSamples(100, 0.8, Normal)
	gen := b.Build(NewSource(11), Ebeida)

	outside := []Sample{
		{-0.1, -0.1}, {-0.1, 0.5}, {-0.1, 1.1},
		{0.5, -0.1}, {1.1, -0.1},
		{0.5, 1.1}, {1.1, 0.5}, {1.1, 1.1},
	}
	for _, p := range outside {
		gen.Restrict(p)
	}

	samples := gen.Generate()
	sqRadius := (2 * b.Radius()) * (2 * b.Radius())
	for _, s := range samples {
		for _, o := range outside {
			dx := s[0] - o[0]
			dy := s[1] - o[1]
			assert.GreaterOrEqual(t, dx*dx+dy*dy, sqRadius)
		}
	}
	assertLegalPoisson(t, samples, b.Radius(), Normal)
}

func TestBuilderPreconditions(t *testing.T) {
	assert.Panics(t, func() { WithRadius(0, Normal) })
	assert.Panics(t, func() { WithRadius(maxRadius+0.01, Normal) })
	assert.Panics(t, func() { WithRelativeRadius(0, Normal) })
	assert.Panics(t, func() { WithRelativeRadius(1.1, Normal) })
	assert.Panics(t, func() { WithSamples(0, 0.8, Normal) })
	assert.Panics(t, func() { WithSamples(10, 1.1, Normal) })
}

// TestRestrictHonourLaw: if restrict(p) is called before any next()
// returning q, then sqdist(p, q) >= (2r)^2 - restricting must bind every
// sample generated afterward, not just the ones already accepted.
func TestRestrictHonourLaw(t *testing.T) {
	for _, tag := range []AlgorithmTag{Ebeida, Bridson} {
		b := WithRadius(0.05, Normal)
		gen := b.Build(NewSource(13), tag)

		p := Sample{0.5, 0.5}
		require.True(t, gen.StaysLegal(p))
		gen.Restrict(p)

		sqRadius := (2 * b.Radius()) * (2 * b.Radius())
		for q := range gen.Seq() {
			dx := q[0] - p[0]
			dy := q[1] - p[1]
			assert.GreaterOrEqual(t, dx*dx+dy*dy, sqRadius)
		}
	}
}

// TestStaysLegalDoesNotMutate: calling StaysLegal repeatedly must not
// change the answer or the generator's subsequent behaviour.
func TestStaysLegalDoesNotMutate(t *testing.T) {
	b := WithRadius(0.05, Normal)
	gen := b.Build(NewSource(17), Ebeida)

	p := Sample{0.2, 0.2}
	first := gen.StaysLegal(p)
	second := gen.StaysLegal(p)
	assert.Equal(t, first, second)

	fresh := b.Build(NewSource(17), Ebeida)
	assert.Equal(t, fresh.Generate(), gen.Generate())
}
