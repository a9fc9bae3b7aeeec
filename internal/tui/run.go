package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
)

var errQuit = errors.New("quit requested")

// TickFunc advances the world by one tick.
type TickFunc func(ctx context.Context) error

// Run drives the terminal view until the user quits (Esc, q or Ctrl-C), ctx is
// cancelled or tick fails. Every interval it calls tick and draws the newest
// snapshot received. Run owns the screen and finalizes it before returning.
func Run(ctx context.Context, screen tcell.Screen, r *Renderer, snapshots <-chan *pb.WorldSnapshot, interval time.Duration, tick TickFunc) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				// screen finalized
				return errQuit
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return errQuit
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})

	// The draw loop owns the screen: finalizing it on exit also unblocks PollEvent.
	g.Go(func() error {
		defer screen.Fini()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var last *pb.WorldSnapshot
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				if err := tick(gctx); err != nil {
					return err
				}
				last = latest(snapshots, last)
				r.Draw(last)
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || (ctx.Err() != nil && errors.Is(err, ctx.Err())) {
		return nil
	}
	return err
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// latest drains the channel and keeps the newest snapshot, or prev when none is waiting.
func latest(ch <-chan *pb.WorldSnapshot, prev *pb.WorldSnapshot) *pb.WorldSnapshot {
	for {
		select {
		case s := <-ch:
			prev = s
		default:
			return prev
		}
	}
}
