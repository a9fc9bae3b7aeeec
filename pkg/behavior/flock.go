package behavior

import (
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/physics2d"
)

// StepStats sums the reports of every boid for one tick.
type StepStats struct {
	Neighbors       int
	ObstacleHits    int
	RandomFallbacks int
}

// Step runs Update once for every boid of flock, in slice order.
//
// With doubleBuffer false, each boid reads the live slice and so sees the boids
// before it already moved. With doubleBuffer true, every boid reads a copy of
// the flock taken before the tick, which makes the result order independent.
// scratch is reused for that copy when large enough; the buffer used is returned.
func Step(flock []Boid, colliders []physics2d.Collider, s Settings, rng RandomSource, doubleBuffer bool, scratch []Boid) (StepStats, []Boid) {
	view := flock
	if doubleBuffer {
		scratch = append(scratch[:0], flock...)
		view = scratch
	}

	var stats StepStats
	for i := range flock {
		r := Update(&flock[i], view, colliders, s, rng)
		stats.Neighbors += r.Neighbors
		stats.ObstacleHits += r.ObstacleHits
		if r.RandomFallback {
			stats.RandomFallbacks++
		}
	}
	return stats, scratch
}
