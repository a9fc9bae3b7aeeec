package simulation

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/behavior"
)

func newTestWorld(cfg *Config) *WorldActor {
	w := NewWorldActor(nil, cfg)
	w.spawnFlock()
	return w
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.NumBoids = 60
	cfg.Seed = 12345
	return cfg
}

func TestWorldActor_spawnFlock(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(cfg)

	if len(w.flock) != cfg.NumBoids {
		t.Fatalf("Expected %d boids, got %d", cfg.NumBoids, len(w.flock))
	}
	if len(w.colliders) != 1 {
		t.Fatalf("Expected the default rectangle collider, got %d colliders", len(w.colliders))
	}
	for i, b := range w.flock {
		if b.ID != i {
			t.Errorf("boid %d has id %d", i, b.ID)
		}
	}
}

func TestWorldActor_step(t *testing.T) {
	cfg := testConfig()
	w := newTestWorld(cfg)

	for i := 0; i < 50; i++ {
		w.step()
		for _, b := range w.flock {
			if speed := b.Velocity.Len(); speed > cfg.MaxSpeed+1e-9 {
				t.Fatalf("tick %d: boid %d speed %v exceeds %v", w.tick, b.ID, speed, cfg.MaxSpeed)
			}
			if b.Position.X < 0 || b.Position.X > cfg.WorldWidth || b.Position.Y < 0 || b.Position.Y > cfg.WorldHeight {
				t.Fatalf("tick %d: boid %d left the world at %v", w.tick, b.ID, b.Position)
			}
		}
	}
	if w.tick != 50 {
		t.Errorf("Expected tick 50, got %d", w.tick)
	}
}

func TestWorldActor_SameSeedSameWorld(t *testing.T) {
	for _, doubleBuffer := range []bool{false, true} {
		cfg := testConfig()
		cfg.DoubleBuffer = doubleBuffer
		a, b := newTestWorld(cfg), newTestWorld(cfg)
		for i := 0; i < 20; i++ {
			a.step()
			b.step()
		}
		for i := range a.flock {
			if a.flock[i] != b.flock[i] {
				t.Fatalf("doubleBuffer=%v: boid %d diverged: %+v vs %+v", doubleBuffer, i, a.flock[i], b.flock[i])
			}
		}
	}
}

func TestWorldActor_applyUpdate(t *testing.T) {
	w := newTestWorld(testConfig())

	w.applyUpdate(&pb.UpdateConfig{
		ViewRange:             80,
		ViewFov:               270,
		SeparationStrength:    3,
		AlignmentStrength:     0.5,
		CohesionStrength:      0.4,
		ObstacleAvoidStrength: 2,
		MaxSpeed:              6,
	})
	want := w.cfg.Settings()
	want.ViewRange, want.ViewFOV = 80, 270
	want.SeparationStrength, want.AlignmentStrength, want.CohesionStrength = 3, 0.5, 0.4
	want.ObstacleAvoidStrength, want.MaxSpeed = 2, 6
	if w.settings != want {
		t.Errorf("settings = %+v; want %+v", w.settings, want)
	}

	w.applyUpdate(&pb.UpdateConfig{MaxSpeed: 0})
	if w.settings.MaxSpeed != 6 {
		t.Errorf("Expected non positive max speed to be ignored, got %v", w.settings.MaxSpeed)
	}
}

func TestWorldActor_buildSnapshot(t *testing.T) {
	w := newTestWorld(testConfig())
	w.step()

	snap := w.buildSnapshot()
	if snap.GetTick() != 1 {
		t.Errorf("Expected tick 1, got %d", snap.GetTick())
	}
	if len(snap.GetBoids()) != len(w.flock) {
		t.Fatalf("Expected %d boids in snapshot, got %d", len(w.flock), len(snap.GetBoids()))
	}
	for i, state := range snap.GetBoids() {
		if got := BoidFromProto(state); got != w.flock[i] {
			t.Errorf("snapshot boid %d = %+v; want %+v", i, got, w.flock[i])
		}
	}
	colliders := CollidersFromSnapshot(snap)
	if len(colliders) != 1 || len(colliders[0].Points) != 4 || !colliders[0].Loop || !colliders[0].IsHollow {
		t.Errorf("Unexpected colliders in snapshot: %+v", colliders)
	}
}

func TestWorldActor_pushSnapshotNeverBlocks(t *testing.T) {
	ch := make(chan *pb.WorldSnapshot, 1)
	w := NewWorldActor(ch, testConfig())
	w.spawnFlock()

	w.pushSnapshot()
	w.pushSnapshot() // channel full, frame skipped
	if len(ch) != 1 {
		t.Errorf("Expected exactly one buffered snapshot, got %d", len(ch))
	}
}

func TestUpdateBoidFromProto(t *testing.T) {
	src := behavior.Boid{ID: 3}
	src.Position.X, src.Position.Y = 1, 2
	src.Velocity.X = -1
	src.DesiredDirection.Y = 1

	var dst behavior.Boid
	UpdateBoidFromProto(&dst, BoidToProto(&src))
	if dst != src {
		t.Errorf("UpdateBoidFromProto = %+v; want %+v", dst, src)
	}
	if got := VectorFromProto(nil); !got.IsZero() {
		t.Errorf("nil vector should convert to zero, got %v", got)
	}
}
