// Package cli holds the cobra commands of the boids binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lao-tseu-is-alive/go-boids-raycast/internal/observability"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/simulation"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=x.y.z".
var Version = "0.1.0"

const (
	envPrefix   = "BOIDS"
	serviceName = "boids"
)

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	v      *viper.Viper
	cfg    *simulation.Config
	logger *zap.Logger
}

// NewRootCommand builds the command tree. Each call gets its own viper instance
// so tests can build fresh trees.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "boids",
		Short:         "2D boids flocking with ray-cast obstacle avoidance",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Sync(a.logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWindow(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "simulation config file (.json, .yaml or .yml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: console or json")
	flags.String("log-file", "", "also write JSON logs to this file, rotated by size")
	flags.Uint64("seed", 0, "random seed, 0 picks one at startup")
	flags.Int("boids", 0, "number of boids, overrides the config file")
	flags.Bool("double-buffer", false, "every boid of a tick reads the flock as it was before the tick")
	// Only fails on a nil flag set.
	_ = a.v.BindPFlags(flags)

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newWindowCmd(a),
		newTUICmd(a),
		newHeadlessCmd(a),
		newConfigCmd(a),
	)
	return root
}

// initialize loads the simulation config, applies flag and env overrides and
// builds the logger.
func (a *app) initialize(logOut io.Writer) error {
	cfg := simulation.DefaultConfig()
	if path := a.v.GetString("config"); path != "" {
		loaded, err := simulation.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if a.v.IsSet("seed") {
		cfg.Seed = a.v.GetUint64("seed")
	}
	if a.v.IsSet("boids") {
		cfg.NumBoids = a.v.GetInt("boids")
	}
	if a.v.IsSet("double-buffer") {
		cfg.DoubleBuffer = a.v.GetBool("double-buffer")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.logger = observability.NewLogger(observability.LoggerConfig{
		Level:       a.v.GetString("log-level"),
		Format:      a.v.GetString("log-format"),
		LogFile:     a.v.GetString("log-file"),
		MaxSizeMB:   10,
		MaxBackups:  3,
		ServiceName: serviceName,
	}, zapcore.AddSync(logOut))
	a.logger.Debug("Configuration loaded",
		zap.String("config", a.v.GetString("config")),
		zap.Int("boids", cfg.NumBoids),
		zap.Int("colliders", len(cfg.Colliders)),
		zap.Bool("double_buffer", cfg.DoubleBuffer))
	return nil
}

// actorLogger builds the goakt logger at the command's level. A nil writer
// discards the actor logs.
func (a *app) actorLogger(w io.Writer) log.Logger {
	return observability.ActorLogger(a.v.GetString("log-level"), w)
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
