package physics2d

import (
	"iter"
	"math"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/geometry"
)

const (
	// SingleRayMaxDistance is the reach given to the lone ray of a one-ray fan,
	// whatever max distance the caller asked for.
	SingleRayMaxDistance = 1000.0

	// parallelEpsilon below which |cross(ray, edge)| counts as parallel.
	parallelEpsilon = 1e-6

	// NoCollider is the ColliderIndex of a miss.
	NoCollider = -1
)

// Ray is a half line starting at Origin, Direction is expected to be a unit vector.
type Ray struct {
	Origin      geometry.Vector2D
	Direction   geometry.Vector2D
	MaxDistance float64
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) geometry.Vector2D {
	return r.Origin.Add(r.Direction.Mul(t))
}

// End returns the point at MaxDistance along the ray.
func (r Ray) End() geometry.Vector2D {
	return r.At(r.MaxDistance)
}

// RayHit is the result of a ray query.
// ColliderIndex points into the collider slice given to Raycast and is only valid
// for that slice during the current tick.
type RayHit struct {
	Hit           bool
	Ray           Ray
	Point         geometry.Vector2D
	Distance      float64
	ColliderIndex int
}

func miss(ray Ray) RayHit {
	return RayHit{Ray: ray, ColliderIndex: NoCollider}
}

// CreateFOVRays returns rayCount rays fanned symmetrically around direction over
// fovDegrees. The sequence is lazy and can be ranged over any number of times.
//
// A single ray goes straight along direction with SingleRayMaxDistance as reach.
func CreateFOVRays(origin, direction geometry.Vector2D, fovDegrees, maxDistance float64, rayCount int) iter.Seq[Ray] {
	return func(yield func(Ray) bool) {
		if rayCount <= 0 {
			return
		}
		baseDir := direction.Normalized()
		if rayCount == 1 {
			yield(Ray{Origin: origin, Direction: baseDir, MaxDistance: SingleRayMaxDistance})
			return
		}

		fovRad := fovDegrees * math.Pi / 180
		increment := fovRad / float64(rayCount-1)
		for i := 0; i < rayCount; i++ {
			offset := -fovRad/2 + increment*float64(i)
			ray := Ray{
				Origin:      origin,
				Direction:   baseDir.Rotate(offset),
				MaxDistance: maxDistance,
			}
			if !yield(ray) {
				return
			}
		}
	}
}

// IntersectCollider returns the closest intersection of ray with the edges of c.
// Parallel edges, colinear overlap included, are skipped. The returned hit has
// ColliderIndex set to NoCollider since c is not tied to a slice here.
func IntersectCollider(c Collider, ray Ray) RayHit {
	best := miss(ray)
	closestT := ray.MaxDistance

	for p, q := range c.Edges() {
		s := q.Sub(p)
		rxs := geometry.Cross(ray.Direction, s)
		if math.Abs(rxs) < parallelEpsilon {
			continue
		}

		diff := p.Sub(ray.Origin)
		t := geometry.Cross(diff, s) / rxs
		u := geometry.Cross(diff, ray.Direction) / rxs

		if t < 0 || t > ray.MaxDistance || u < 0 || u > 1 {
			continue
		}
		if !best.Hit || t < closestT {
			closestT = t
			best.Hit = true
			best.Distance = t
			best.Point = ray.At(t)
		}
	}
	return best
}

// Raycast returns the nearest hit among all colliders, strictly closer than the
// ray's MaxDistance.
func Raycast(colliders []Collider, ray Ray) RayHit {
	best := miss(ray)
	closest := ray.MaxDistance

	for i := range colliders {
		h := IntersectCollider(colliders[i], ray)
		if h.Hit && h.Distance < closest {
			closest = h.Distance
			h.ColliderIndex = i
			best = h
		}
	}
	return best
}

// RaycastMulti casts every ray independently. The returned slice is index aligned
// with rays; the bool reports whether at least one of them hit something.
func RaycastMulti(colliders []Collider, rays []Ray) ([]RayHit, bool) {
	hits := make([]RayHit, len(rays))
	anyHit := false
	for i, r := range rays {
		hits[i] = Raycast(colliders, r)
		anyHit = anyHit || hits[i].Hit
	}
	return hits, anyHit
}

// RaycastSeq is RaycastMulti over a lazily produced ray sequence such as the one
// returned by CreateFOVRays.
func RaycastSeq(colliders []Collider, rays iter.Seq[Ray]) ([]RayHit, bool) {
	var hits []RayHit
	anyHit := false
	for r := range rays {
		h := Raycast(colliders, r)
		hits = append(hits, h)
		anyHit = anyHit || h.Hit
	}
	return hits, anyHit
}
