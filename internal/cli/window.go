package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/simulation/window"
)

func newWindowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the simulation in a window with a tuning panel (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWindow(cmd.Context(), cmd.ErrOrStderr())
		},
	}
}

func (a *app) runWindow(ctx context.Context, logOut io.Writer) error {
	// One slot: the world drops frames the window has not drawn yet.
	snapshotCh := make(chan *pb.WorldSnapshot, 1)
	system, worldPID, err := simulation.StartWorld(ctx, a.cfg, a.actorLogger(logOut), snapshotCh)
	if err != nil {
		return err
	}
	defer func() {
		if err := system.Stop(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn("Actor system did not stop cleanly", zap.Error(err))
		}
	}()

	a.logger.Info("Opening window",
		zap.Float64("width", a.cfg.WorldWidth),
		zap.Float64("height", a.cfg.WorldHeight),
		zap.Int("boids", a.cfg.NumBoids),
		zap.Int("tps", a.cfg.TicksPerSecond))

	ebiten.SetWindowSize(int(a.cfg.WorldWidth), int(a.cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids: flocking with ray-cast obstacle avoidance")
	ebiten.SetTPS(a.cfg.TicksPerSecond)

	if err := ebiten.RunGame(window.NewGame(ctx, a.cfg, system, worldPID, snapshotCh)); err != nil {
		return fmt.Errorf("window closed with error: %w", err)
	}
	return nil
}
