// Package tui renders world snapshots in a terminal with tcell.
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/simulation"
)

// Heading runes clockwise from +X. Terminal rows grow downward like world Y.
var headingRunes = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

const (
	colliderRune = '#'
	hudRows      = 1
)

var (
	boidStyle     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	focalStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	colliderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hudStyle      = tcell.StyleDefault.Reverse(true)
)

// Renderer maps world coordinates onto the cells of a screen. The last row is
// kept for the status line.
type Renderer struct {
	screen tcell.Screen
	worldW float64
	worldH float64
}

func NewRenderer(screen tcell.Screen, worldW, worldH float64) *Renderer {
	return &Renderer{screen: screen, worldW: worldW, worldH: worldH}
}

// cell returns the screen cell of a world point, clamped to the drawing area.
func (r *Renderer) cell(p geometry.Vector2D, cols, rows int) (int, int) {
	x := int(p.X / r.worldW * float64(cols))
	y := int(p.Y / r.worldH * float64(rows))
	return min(max(x, 0), cols-1), min(max(y, 0), rows-1)
}

// Draw clears the screen and paints one snapshot. A nil snapshot only clears.
func (r *Renderer) Draw(snap *pb.WorldSnapshot) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	rows -= hudRows
	if cols <= 0 || rows <= 0 || snap == nil {
		r.screen.Show()
		return
	}

	for _, c := range simulation.CollidersFromSnapshot(snap) {
		if c.IsInvisible {
			continue
		}
		for a, b := range c.Edges() {
			r.drawSegment(a, b, cols, rows)
		}
	}

	for i, b := range snap.GetBoids() {
		x, y := r.cell(simulation.VectorFromProto(b.GetPosition()), cols, rows)
		style := boidStyle
		if i == 0 {
			style = focalStyle
		}
		r.screen.SetContent(x, y, HeadingRune(simulation.VectorFromProto(b.GetVelocity())), nil, style)
	}

	r.drawText(0, rows, fmt.Sprintf(" tick %d | boids %d | neighbors %d | hits %d | fallbacks %d | q: quit ",
		snap.GetTick(), len(snap.GetBoids()), snap.GetNeighbors(), snap.GetObstacleHits(), snap.GetRandomFallbacks()))
	r.screen.Show()
}

// drawSegment walks the segment in cell space, one cell per step along its longer axis.
func (r *Renderer) drawSegment(a, b geometry.Vector2D, cols, rows int) {
	x0, y0 := r.cell(a, cols, rows)
	x1, y1 := r.cell(b, cols, rows)
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		r.screen.SetContent(x0, y0, colliderRune, nil, colliderStyle)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		r.screen.SetContent(x, y, colliderRune, nil, colliderStyle)
	}
}

func (r *Renderer) drawText(x, y int, s string) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, hudStyle)
		x++
	}
}

// HeadingRune picks the arrow closest to the direction of v. A still boid is a dot.
func HeadingRune(v geometry.Vector2D) rune {
	if v.IsZero() {
		return '·'
	}
	octant := int(math.Round(v.Angle()/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingRunes[octant]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
