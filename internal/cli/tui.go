package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/tochemey/goakt/v3/actor"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-boids-raycast/internal/tui"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/simulation"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create terminal screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize terminal screen: %w", err)
			}
			return a.runTUI(cmd.Context(), screen)
		},
	}
}

// runTUI owns the screen and finalizes it. Actor logs are discarded while the
// terminal is taken, the zap logger keeps writing to --log-file when set.
func (a *app) runTUI(ctx context.Context, screen tcell.Screen) error {
	snapshotCh := make(chan *pb.WorldSnapshot, 1)
	system, worldPID, err := simulation.StartWorld(ctx, a.cfg, a.actorLogger(nil), snapshotCh)
	if err != nil {
		screen.Fini()
		return err
	}
	defer func() {
		if err := system.Stop(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn("Actor system did not stop cleanly", zap.Error(err))
		}
	}()

	interval := time.Second / time.Duration(max(a.cfg.TicksPerSecond, 1))
	tick := &pb.Tick{DeltaTime: int64(interval)}
	start := time.Now()

	err = tui.Run(ctx, screen, tui.NewRenderer(screen, a.cfg.WorldWidth, a.cfg.WorldHeight), snapshotCh, interval,
		func(ctx context.Context) error { return actor.Tell(ctx, worldPID, tick) })
	a.logger.Info("Terminal view closed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
	return err
}
