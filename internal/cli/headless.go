package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tochemey/goakt/v3/actor"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/simulation"
)

// snapshotTimeout bounds the wait for the final snapshot, queued behind every tick.
var snapshotTimeout = 2 * time.Minute

// RunSummary is what a headless run reports.
type RunSummary struct {
	RunID           string
	Ticks           int64
	Boids           int
	Elapsed         time.Duration
	TicksPerSecond  float64
	MeanSpeed       float64
	Neighbors       int32
	ObstacleHits    int32
	RandomFallbacks int32
}

func newHeadlessCmd(a *app) *cobra.Command {
	var (
		ticks       int
		snapshotOut string
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run a number of ticks without a viewer and log a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return fmt.Errorf("--ticks must not be negative, got %d", ticks)
			}
			_, err := a.runHeadless(cmd.Context(), cmd.ErrOrStderr(), ticks, snapshotOut)
			return err
		},
	}
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 600, "number of ticks to run")
	cmd.Flags().StringVarP(&snapshotOut, "snapshot-out", "o", "", "write the final world snapshot as JSON to this file")
	return cmd
}

func (a *app) runHeadless(ctx context.Context, logOut io.Writer, ticks int, snapshotOut string) (RunSummary, error) {
	summary := RunSummary{RunID: uuid.NewString()}
	logger := a.logger.With(zap.String("run_id", summary.RunID))

	system, worldPID, err := simulation.StartWorld(ctx, a.cfg, a.actorLogger(logOut), nil)
	if err != nil {
		return summary, err
	}
	defer func() {
		if err := system.Stop(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("Actor system did not stop cleanly", zap.Error(err))
		}
	}()

	logger.Info("Headless run started", zap.Int("ticks", ticks), zap.Int("boids", a.cfg.NumBoids), zap.Uint64("seed", a.cfg.Seed))

	tick := &pb.Tick{DeltaTime: int64(time.Second / time.Duration(a.cfg.TicksPerSecond))}
	start := time.Now()
	for i := 0; i < ticks; i++ {
		if err := actor.Tell(ctx, worldPID, tick); err != nil {
			return summary, fmt.Errorf("failed to send tick %d: %w", i, err)
		}
	}
	// The mailbox is FIFO: the reply comes after the last tick has run.
	snap, err := simulation.RequestSnapshot(ctx, worldPID, snapshotTimeout)
	if err != nil {
		return summary, err
	}
	summary.Elapsed = time.Since(start)

	summary.Ticks = snap.GetTick()
	summary.Boids = len(snap.GetBoids())
	if secs := summary.Elapsed.Seconds(); secs > 0 {
		summary.TicksPerSecond = float64(summary.Ticks) / secs
	}
	summary.MeanSpeed = meanSpeed(snap)
	summary.Neighbors = snap.GetNeighbors()
	summary.ObstacleHits = snap.GetObstacleHits()
	summary.RandomFallbacks = snap.GetRandomFallbacks()

	logger.Info("Headless run finished",
		zap.Int64("ticks", summary.Ticks),
		zap.Int("boids", summary.Boids),
		zap.Duration("elapsed", summary.Elapsed),
		zap.Float64("ticks_per_sec", summary.TicksPerSecond),
		zap.Float64("mean_speed", summary.MeanSpeed),
		zap.Int32("neighbors", summary.Neighbors),
		zap.Int32("obstacle_hits", summary.ObstacleHits),
		zap.Int32("random_fallbacks", summary.RandomFallbacks))

	if snapshotOut != "" {
		if err := writeSnapshot(snapshotOut, snap); err != nil {
			return summary, err
		}
		logger.Info("Snapshot written", zap.String("path", snapshotOut))
	}
	return summary, nil
}

func meanSpeed(snap *pb.WorldSnapshot) float64 {
	boids := snap.GetBoids()
	if len(boids) == 0 {
		return 0
	}
	var total float64
	for _, b := range boids {
		total += simulation.VectorFromProto(b.GetVelocity()).Len()
	}
	return total / float64(len(boids))
}

func writeSnapshot(path string, snap *pb.WorldSnapshot) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
