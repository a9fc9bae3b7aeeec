// Package physics2d holds the static obstacle geometry of the world and the
// ray casting used by boids to perceive it.
package physics2d

import (
	"iter"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/geometry"
)

// Collider is a static obstacle boundary made of an ordered list of points.
// Consecutive points form edges; when Loop is set an extra edge closes the shape
// from the last point back to the first.
// IsHollow and IsInvisible are only read by renderers.
type Collider struct {
	Points      []geometry.Vector2D
	IsHollow    bool
	IsInvisible bool
	Loop        bool
}

// NewCollider copies points into a new closed, hollow, visible collider.
// No validation of winding or self-intersection is done.
func NewCollider(points []geometry.Vector2D) Collider {
	return Collider{
		Points:   append([]geometry.Vector2D(nil), points...),
		IsHollow: true,
		Loop:     true,
	}
}

// NewPolyline copies points into an open collider (no closing edge).
func NewPolyline(points []geometry.Vector2D) Collider {
	c := NewCollider(points)
	c.Loop = false
	return c
}

// Rectangle returns the closed collider (x,y), (x+w,y), (x+w,y+h), (x,y+h).
func Rectangle(x, y, w, h float64) Collider {
	return NewCollider([]geometry.Vector2D{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	})
}

// EdgeCount returns how many edges Edges yields.
func (c Collider) EdgeCount() int {
	n := len(c.Points)
	if n < 2 {
		return 0
	}
	if c.Loop {
		return n
	}
	return n - 1
}

// Edges iterates over the (start, end) pairs of every edge of the collider.
func (c Collider) Edges() iter.Seq2[geometry.Vector2D, geometry.Vector2D] {
	return func(yield func(geometry.Vector2D, geometry.Vector2D) bool) {
		n := len(c.Points)
		for i := 0; i < c.EdgeCount(); i++ {
			if !yield(c.Points[i], c.Points[(i+1)%n]) {
				return
			}
		}
	}
}

// Bounds returns the axis aligned bounding box of the points as (min, max).
// Both are zero for an empty collider.
func (c Collider) Bounds() (geometry.Vector2D, geometry.Vector2D) {
	if len(c.Points) == 0 {
		return geometry.Vector2D{}, geometry.Vector2D{}
	}
	lo, hi := c.Points[0], c.Points[0]
	for _, p := range c.Points[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi
}
