// Package window renders a running world in an ebiten window with a tuning panel.
package window

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/physics2d"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/ui"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)

	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	colliderColor   = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	rayMissColor    = color.RGBA{R: 90, G: 90, B: 120, A: 255}
	rayHitColor     = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	boidColor       = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	focalBoidColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const boidSize = 7.5

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh <-chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot
	colliders  []physics2d.Collider
	paused     bool

	// UI Controls
	panel *ui.UIPanel

	widgetViewRange      *ui.Slider
	widgetViewFOV        *ui.Slider
	widgetMaxSpeed       *ui.Slider
	widgetSeparation     *ui.Slider
	widgetAlignment      *ui.Slider
	widgetCohesion       *ui.Slider
	widgetObstacleAvoid  *ui.Slider
	widgetShowRays       *ui.Checkbox
	widgetPause          *ui.Button
	lastSentUpdateConfig *pb.UpdateConfig

	cfg *simulation.Config

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame wires the window renderer to a running world actor.
func NewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem, worldPID *actor.PID, snapshotCh <-chan *pb.WorldSnapshot) *Game {
	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.WorldSnapshot{}, // Avoid nil pointer
		cfg:        cfg,
	}

	panel := ui.NewUIPanel("Flock (Tab to hide)", 10, 10, 240, math.Min(cfg.WorldHeight-20, 470))

	panel.AddSection("Perception")
	g.widgetViewRange = panel.AddSlider("View Range", 0, 200, cfg.ViewRange)
	g.widgetViewFOV = panel.AddSlider("View FOV", 0, 360, cfg.ViewFOV)
	panel.EndSection()

	panel.AddSection("Steering")
	g.widgetMaxSpeed = panel.AddSlider("Max Speed", 0.5, 10, cfg.MaxSpeed)
	g.widgetSeparation = panel.AddSlider("Separation", 0, 20, cfg.SeparationStrength)
	g.widgetAlignment = panel.AddSlider("Alignment", 0, 1, cfg.AlignmentStrength)
	g.widgetCohesion = panel.AddSlider("Cohesion", 0, 1, cfg.CohesionStrength)
	g.widgetObstacleAvoid = panel.AddSlider("Obstacle Avoid", 0, 5, cfg.ObstacleAvoidStrength)
	panel.EndSection()

	panel.AddSection("Visualization")
	g.widgetShowRays = panel.AddCheckbox("Show rays of boid 0", cfg.ShowRays)
	g.widgetPause = panel.AddButton("Pause", g.togglePause)
	panel.EndSection()

	g.panel = panel
	return g
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	g.widgetPause.Label = "Pause"
	if g.paused {
		g.widgetPause.Label = "Resume"
	}
}

func (g *Game) currentUpdateConfig() *pb.UpdateConfig {
	return &pb.UpdateConfig{
		ViewRange:             g.widgetViewRange.Value,
		ViewFov:               g.widgetViewFOV.Value,
		SeparationStrength:    g.widgetSeparation.Value,
		AlignmentStrength:     g.widgetAlignment.Value,
		CohesionStrength:      g.widgetCohesion.Value,
		ObstacleAvoidStrength: g.widgetObstacleAvoid.Value,
		MaxSpeed:              g.widgetMaxSpeed.Value,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Hidden = !g.panel.Hidden
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	g.panel.Update()

	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
		if g.colliders == nil {
			// colliders never change after setup
			g.colliders = simulation.CollidersFromSnapshot(snap)
		}
	default:
		// Use previous state if new one isn't ready
	}

	if g.paused {
		return nil
	}
	if update := g.currentUpdateConfig(); g.lastSentUpdateConfig == nil || !sameUpdateConfig(update, g.lastSentUpdateConfig) {
		if err := actor.Tell(g.ctx, g.worldPID, update); err != nil {
			return fmt.Errorf("failed to send config update: %w", err)
		}
		g.lastSentUpdateConfig = update
	}
	if err := actor.Tell(g.ctx, g.worldPID, &pb.Tick{DeltaTime: int64(time.Second) / int64(max(g.cfg.TicksPerSecond, 1))}); err != nil {
		return fmt.Errorf("failed to send tick: %w", err)
	}
	return nil
}

func sameUpdateConfig(a, b *pb.UpdateConfig) bool {
	return a.GetViewRange() == b.GetViewRange() &&
		a.GetViewFov() == b.GetViewFov() &&
		a.GetSeparationStrength() == b.GetSeparationStrength() &&
		a.GetAlignmentStrength() == b.GetAlignmentStrength() &&
		a.GetCohesionStrength() == b.GetCohesionStrength() &&
		a.GetObstacleAvoidStrength() == b.GetObstacleAvoidStrength() &&
		a.GetMaxSpeed() == b.GetMaxSpeed()
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)

	for i := range g.colliders {
		drawCollider(screen, &g.colliders[i])
	}

	boids := g.lastState.GetBoids()
	if g.widgetShowRays.Value && len(boids) > 0 {
		g.drawRays(screen, boids[0])
	}
	for i, b := range boids {
		clr := boidColor
		if i == 0 && g.widgetShowRays.Value {
			clr = focalBoidColor
		}
		drawBoid(screen, b, clr)
	}

	g.panel.Draw(screen)

	state := "running"
	if g.paused {
		state = "paused"
	}
	msg := fmt.Sprintf("Tick: %d (%s)\nBoids: %d\nHits: %d\nFallbacks: %d\n\nFPS: %.2f\nTPS: %.2f\nUpdate: %.2fms\nDraw:   %.2fms",
		g.lastState.GetTick(), state,
		len(boids),
		g.lastState.GetObstacleHits(),
		g.lastState.GetRandomFallbacks(),
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

// drawRays shows the obstacle ray fan of one boid, hits in yellow.
func (g *Game) drawRays(screen *ebiten.Image, b *pb.BoidState) {
	pos := simulation.VectorFromProto(b.GetPosition())
	vel := simulation.VectorFromProto(b.GetVelocity())
	rays := slices.Collect(physics2d.CreateFOVRays(pos, vel, g.cfg.ObstacleFOV, g.cfg.ObstacleMaxDistance, g.cfg.ObstacleRayCount))
	hits, _ := physics2d.RaycastMulti(g.colliders, rays)
	for _, h := range hits {
		end, clr := h.Ray.End(), rayMissColor
		if h.Hit {
			end, clr = h.Point, rayHitColor
		}
		vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(end.X), float32(end.Y), 1, clr, true)
		if h.Hit {
			vector.FillRect(screen, float32(end.X-2), float32(end.Y-2), 4, 4, rayHitColor, true)
		}
	}
}

func drawCollider(screen *ebiten.Image, c *physics2d.Collider) {
	if c.IsInvisible {
		return
	}
	if !c.IsHollow && len(c.Points) >= 3 {
		var path vector.Path
		path.MoveTo(float32(c.Points[0].X), float32(c.Points[0].Y))
		for _, p := range c.Points[1:] {
			path.LineTo(float32(p.X), float32(p.Y))
		}
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR = float32(colliderColor.R) / 0xff
			vs[i].ColorG = float32(colliderColor.G) / 0xff
			vs[i].ColorB = float32(colliderColor.B) / 0xff
			vs[i].ColorA = 1
		}
		screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero})
		return
	}
	for p, q := range c.Edges() {
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 2, colliderColor, true)
	}
}

func drawBoid(screen *ebiten.Image, b *pb.BoidState, clr color.RGBA) {
	pos, vel := b.GetPosition(), b.GetVelocity()
	angle := math.Atan2(vel.GetY(), vel.GetX())
	x, y := pos.GetX(), pos.GetY()

	r, gr, bl := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff
	vertex := func(a, length float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x + math.Cos(a)*length),
			DstY: float32(y + math.Sin(a)*length),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: bl, ColorA: 1,
		}
	}
	vertices := []ebiten.Vertex{
		vertex(angle, boidSize),
		vertex(angle+2.5, boidSize*0.8),
		vertex(angle-2.5, boidSize*0.8),
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }

func init() {
	whiteImage.Fill(color.White)
}
