package behavior

import (
	"math"
	"slices"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/physics2d"
)

const (
	// speedEpsilon is the speed under which a boid has no usable heading.
	speedEpsilon = 1e-6
	// obstacleEpsilon is the smallest obstacle force trusted as a direction.
	obstacleEpsilon = 1e-3
	// avoidEpsilon guards the normalization of the vector away from a hit point.
	avoidEpsilon = 1e-9
)

// RandomSource is the subset of *rand.Rand (math/rand/v2) the steering needs.
// Inject a seeded generator to get reproducible runs.
type RandomSource interface {
	Float64() float64
}

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
// Two boids are the same boid when their ID match.
type Boid struct {
	ID               int
	Position         geometry.Vector2D
	Velocity         geometry.Vector2D
	DesiredDirection geometry.Vector2D
}

// Settings controls the physics constants for the simulation.
// Passing this into Update allows you to change rules dynamically at runtime.
type Settings struct {
	ViewRange float64 // How far can they see?
	// ViewFOV is the full neighbour cone compared against AngleBetween, so it is
	// read in radians. Anything from 2π up sees all around, like the default 200.
	ViewFOV float64

	MaxSpeed          float64
	AccelerationScale float64 // Fraction of the steering force applied per tick
	ForwardAccel      float64 // Push along the heading for boids under MaxSpeed

	SeparationStrength float64
	AlignmentStrength  float64
	CohesionStrength   float64

	ObstacleAvoidStrength float64
	ObstacleRayCount      int
	ObstacleFOV           float64 // degrees
	ObstacleMaxDistance   float64

	WorldWidth  float64
	WorldHeight float64
}

// Forces holds the steering contributions of one tick.
type Forces struct {
	Separation geometry.Vector2D
	Alignment  geometry.Vector2D
	Cohesion   geometry.Vector2D
	Obstacle   geometry.Vector2D
	Forward    geometry.Vector2D
	Neighbors  int
}

// Sum returns the total steering force.
func (f Forces) Sum() geometry.Vector2D {
	return f.Separation.Add(f.Alignment).Add(f.Cohesion).Add(f.Obstacle).Add(f.Forward)
}

// Report describes what happened to a boid during Update.
type Report struct {
	Forces
	ObstacleHits   int
	RandomFallback bool
}

// RandomUnit returns a unit vector with a uniformly distributed heading.
func RandomUnit(rng RandomSource) geometry.Vector2D {
	return geometry.NewVectorPolar(1, rng.Float64()*2*math.Pi)
}

// New creates a boid at a random position inside width x height, moving along a
// random unit velocity.
func New(id int, width, height float64, rng RandomSource) Boid {
	vel := RandomUnit(rng)
	return Boid{
		ID:               id,
		Position:         geometry.Vector2D{X: rng.Float64() * width, Y: rng.Float64() * height},
		Velocity:         vel,
		DesiredDirection: vel,
	}
}

// NewFlock creates count boids with ids 0..count-1.
func NewFlock(count int, width, height float64, rng RandomSource) []Boid {
	flock := make([]Boid, count)
	for i := range flock {
		flock[i] = New(i, width, height, rng)
	}
	return flock
}

// ComputeFlocking returns the separation, alignment and cohesion forces acting on b.
// Only boids within ViewRange and inside the ViewFOV cone count as neighbours.
func ComputeFlocking(b *Boid, flock []Boid, s Settings) Forces {
	var f Forces
	halfFOV := s.ViewFOV / 2
	heading := b.Velocity.Normalized()

	var separationSum, alignmentSum, cohesionSum geometry.Vector2D
	for i := range flock {
		other := &flock[i]
		if other.ID == b.ID {
			continue
		}

		diff := b.Position.Sub(other.Position)
		distance := diff.Len()
		if distance == 0 || distance > s.ViewRange {
			continue
		}

		dir := diff.Normalized()
		if geometry.AngleBetween(heading, dir) > halfFOV {
			continue
		}

		separationSum = separationSum.Add(dir.Div(distance))
		alignmentSum = alignmentSum.Add(other.Velocity)
		cohesionSum = cohesionSum.Add(other.Position)
		f.Neighbors++
	}

	if f.Neighbors == 0 {
		return f
	}

	n := float64(f.Neighbors)
	f.Separation = separationSum.Div(n).Mul(s.SeparationStrength)

	alignment := alignmentSum.Div(n)
	if alignment.Len() > 0 {
		f.Alignment = alignment.WithLength(s.AlignmentStrength)
	}

	cohesion := cohesionSum.Div(n).Sub(b.Position)
	if cohesion.Len() > 0 {
		f.Cohesion = cohesion.WithLength(s.CohesionStrength)
	}
	return f
}

// ComputeObstacleAvoidance casts the obstacle ray fan from b along its velocity and
// returns the force steering it away from what the rays hit, the number of hits and
// whether the random fallback direction was used.
// Closer hits weigh more: each contributes with (1 - distance/maxDistance)².
func ComputeObstacleAvoidance(b *Boid, colliders []physics2d.Collider, s Settings, rng RandomSource) (geometry.Vector2D, int, bool) {
	if len(colliders) == 0 || s.ObstacleRayCount <= 0 {
		return geometry.Vector2D{}, 0, false
	}

	rays := slices.Collect(physics2d.CreateFOVRays(b.Position, b.Velocity, s.ObstacleFOV, s.ObstacleMaxDistance, s.ObstacleRayCount))
	hits, anyHit := physics2d.RaycastMulti(colliders, rays)
	if !anyHit {
		return geometry.Vector2D{}, 0, false
	}

	var sum geometry.Vector2D
	hitCount := 0
	for _, h := range hits {
		if !h.Hit {
			continue
		}
		t := h.Distance / h.Ray.MaxDistance
		falloff := (1 - t) * (1 - t)

		var avoid geometry.Vector2D
		away := b.Position.Sub(h.Point)
		if away.Len() > avoidEpsilon {
			avoid = away.Normalized()
		}
		sum = sum.Add(avoid.Mul(falloff))
		hitCount++
	}

	force := sum.Div(float64(hitCount)).Mul(s.ObstacleAvoidStrength)
	if force.Len() < obstacleEpsilon {
		// Hits cancel out or sit right on the boid: any direction beats freezing.
		return RandomUnit(rng).Mul(s.ObstacleAvoidStrength), hitCount, true
	}
	return force, hitCount, false
}

// Update calculates the next velocity and position of b from its neighbours in
// flock and the colliders, then wraps it around the world edges.
// flock may contain b itself. When flock is the live arena, boids updated earlier
// in the same pass are seen at their new state.
func Update(b *Boid, flock []Boid, colliders []physics2d.Collider, s Settings, rng RandomSource) Report {
	r := Report{Forces: ComputeFlocking(b, flock, s)}
	r.Obstacle, r.ObstacleHits, r.RandomFallback = ComputeObstacleAvoidance(b, colliders, s, rng)

	speed := b.Velocity.Len()
	if speed > speedEpsilon && speed < s.MaxSpeed {
		r.Forward = b.Velocity.Normalized().Mul(s.ForwardAccel)
	}

	acceleration := r.Sum()
	b.Velocity = b.Velocity.Add(acceleration.Mul(s.AccelerationScale))
	if b.Velocity.Len() > s.MaxSpeed {
		b.Velocity.SetLength(s.MaxSpeed)
	}
	if !acceleration.IsZero() {
		b.DesiredDirection = acceleration.Normalized()
	}

	b.Position = Wrap(b.Position.Add(b.Velocity), s.WorldWidth, s.WorldHeight)
	return r
}

// Wrap teleports p to the opposite edge when it left the [0,width]x[0,height] box.
func Wrap(p geometry.Vector2D, width, height float64) geometry.Vector2D {
	if p.X < 0 {
		p.X = width
	} else if p.X > width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = height
	} else if p.Y > height {
		p.Y = 0
	}
	return p
}
