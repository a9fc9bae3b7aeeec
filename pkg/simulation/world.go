package simulation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/physics2d"
)

// WorldActor is the "Brain." It owns the boid and collider arenas and runs one
// flocking pass per Tick. Messages are processed one at a time, so a tick never
// races with a config update or a snapshot request.
type WorldActor struct {
	cfg       *Config
	settings  behavior.Settings
	flock     []behavior.Boid
	scratch   []behavior.Boid // pre-tick copy when cfg.DoubleBuffer is set
	colliders []physics2d.Collider
	rng       *rand.Rand
	seed      uint64
	tick      int64
	lastStats behavior.StepStats
	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot
	// --- Benchmark Stats ---
	ticksSinceLog int
	lastLogTime   time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit. A zero cfg.Seed picks a random seed.
// snapshotCh may be nil when nobody renders the world.
func NewWorldActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *Config) *WorldActor {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &WorldActor{
		cfg:         cfg,
		settings:    cfg.Settings(),
		rng:         rand.New(rand.NewPCG(seed, seed>>1)),
		seed:        seed,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	w.colliders = w.cfg.BuildColliders()
	ctx.ActorSystem().Logger().Infof("World %s ready: %.0fx%.0f, %d colliders, seed %d",
		ctx.ActorName(), w.cfg.WorldWidth, w.cfg.WorldHeight, len(w.colliders), w.seed)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("World Started. Spawning %d boids...", w.cfg.NumBoids)
		w.spawnFlock()

	// The Main Simulation Step (Driven by Game Loop)
	case *pb.Tick:
		w.logBenchmarks(ctx)
		w.step()
		w.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(w.buildSnapshot())

	// Handle dynamic slider updates from UI
	case *pb.UpdateConfig:
		w.applyUpdate(msg)

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is shutdown after %d ticks", w.tick)
	return nil
}

func (w *WorldActor) spawnFlock() {
	if w.colliders == nil {
		w.colliders = w.cfg.BuildColliders()
	}
	w.flock = behavior.NewFlock(w.cfg.NumBoids, w.cfg.WorldWidth, w.cfg.WorldHeight, w.rng)
	w.tick = 0
}

func (w *WorldActor) step() {
	w.lastStats, w.scratch = behavior.Step(w.flock, w.colliders, w.settings, w.rng, w.cfg.DoubleBuffer, w.scratch)
	w.tick++
	w.ticksSinceLog++
}

// applyUpdate replaces the live tunables. A non positive max speed is ignored,
// the clamp needs a positive length.
func (w *WorldActor) applyUpdate(msg *pb.UpdateConfig) {
	w.settings.ViewRange = msg.GetViewRange()
	w.settings.ViewFOV = msg.GetViewFov()
	w.settings.SeparationStrength = msg.GetSeparationStrength()
	w.settings.AlignmentStrength = msg.GetAlignmentStrength()
	w.settings.CohesionStrength = msg.GetCohesionStrength()
	w.settings.ObstacleAvoidStrength = msg.GetObstacleAvoidStrength()
	if msg.GetMaxSpeed() > 0 {
		w.settings.MaxSpeed = msg.GetMaxSpeed()
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if elapsed := time.Since(w.lastLogTime); elapsed >= time.Second {
		ctx.Logger().Infof("📊 TICK %d: %.1f ticks/sec | Boids: %d | Neighbors: %d | Obstacle hits: %d | Fallbacks: %d",
			w.tick, float64(w.ticksSinceLog)/elapsed.Seconds(), len(w.flock),
			w.lastStats.Neighbors, w.lastStats.ObstacleHits, w.lastStats.RandomFallbacks)
		w.ticksSinceLog = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) buildSnapshot() *pb.WorldSnapshot {
	snapshot := &pb.WorldSnapshot{
		Tick:            w.tick,
		Boids:           make([]*pb.BoidState, len(w.flock)),
		Colliders:       make([]*pb.ColliderState, len(w.colliders)),
		ObstacleHits:    int32(w.lastStats.ObstacleHits),
		RandomFallbacks: int32(w.lastStats.RandomFallbacks),
		Neighbors:       int32(w.lastStats.Neighbors),
	}
	for i := range w.flock {
		snapshot.Boids[i] = BoidToProto(&w.flock[i])
	}
	for i := range w.colliders {
		snapshot.Colliders[i] = ColliderToProto(&w.colliders[i])
	}
	return snapshot
}

// StartWorld creates and starts an actor system and spawns the world actor in it.
// The caller owns the returned system and must Stop it.
func StartWorld(ctx context.Context, cfg *Config, logger log.Logger, snapshotCh chan<- *pb.WorldSnapshot) (actor.ActorSystem, *actor.PID, error) {
	system, err := actor.NewActorSystem("BoidsWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to start actor system: %w", err)
	}

	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg))
	if err != nil {
		_ = system.Stop(ctx)
		return nil, nil, fmt.Errorf("failed to spawn world: %w", err)
	}
	return system, worldPID, nil
}

// RequestSnapshot asks the world actor for its current state.
func RequestSnapshot(ctx context.Context, worldPID *actor.PID, timeout time.Duration) (*pb.WorldSnapshot, error) {
	reply, err := actor.Ask(ctx, worldPID, &pb.GetSnapshot{}, timeout)
	if err != nil {
		return nil, fmt.Errorf("snapshot request failed: %w", err)
	}
	snapshot, ok := reply.(*pb.WorldSnapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot reply %T", reply)
	}
	return snapshot, nil
}
