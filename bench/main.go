package main

import (
	"fmt"
	"time"

	"github.com/kelindar/bench"
	"github.com/kelindar/poisson"
)

var targets = []int{100, 1000, 10000}

func main() {
	bench.Run(func(b *bench.B) {
		runGenerate(b)
		runSizeHint(b)
	}, bench.WithDuration(10*time.Millisecond), bench.WithSamples(100))
}

// runGenerate benchmarks draining a full generation, for each algorithm,
// boundary type and target sample count.
func runGenerate(b *bench.B) {
	algos := []struct {
		name string
		tag  poisson.AlgorithmTag
	}{
		{"ebeida", poisson.Ebeida},
		{"bridson", poisson.Bridson},
	}
	types := []struct {
		name string
		t    poisson.Type
	}{
		{"normal", poisson.Normal},
		{"periodic", poisson.Periodic},
	}

	for _, algo := range algos {
		for _, pt := range types {
			for _, target := range targets {
				builder := poisson.WithSamples(target, 0.8, pt.t)
				name := fmt.Sprintf("generate %s/%s n=%s", algo.name, pt.name, formatSize(target))
				b.Run(name, func(i int) {
					gen := builder.Build(poisson.NewSource(int64(i)), algo.tag)
					_ = gen.Generate()
				})
			}
		}
	}
}

// runSizeHint benchmarks SizeHint during an Ebeida generation: each
// iteration pulls one sample, rebuilding the generator once it is
// exhausted, and then queries the hint.
func runSizeHint(b *bench.B) {
	builder := poisson.WithSamples(1000, 0.8, poisson.Normal)
	gen := builder.Build(poisson.NewSource(1), poisson.Ebeida)

	b.Run("size-hint ebeida n=1K", func(i int) {
		if _, ok := gen.Next(); !ok {
			gen = builder.Build(poisson.NewSource(int64(i)), poisson.Ebeida)
		}
		_, _ = gen.SizeHint()
	})
}

func formatSize(size int) string {
	if size >= 1000 {
		return fmt.Sprintf("%.0fK", float64(size)/1000)
	}
	return fmt.Sprintf("%d", size)
}
