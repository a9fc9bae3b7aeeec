package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/simulation"
)

// syncBuffer is written to by the actor system goroutines and the command.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	logs := &syncBuffer{}
	cmd.SetOut(&out)
	cmd.SetErr(logs)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestRootCmd_VersionFlag(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestConfigCmd_Defaults(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)

	var got simulation.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, *simulation.DefaultConfig(), got)
}

func TestConfigCmd_FlagOverrides(t *testing.T) {
	out, _, err := execute(t, "--boids", "12", "--seed", "5", "--double-buffer", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "numBoids: 12")
	assert.Contains(t, out, "seed: 5")
	assert.Contains(t, out, "doubleBuffer: true")
}

func TestConfigCmd_EnvOverrides(t *testing.T) {
	t.Setenv("BOIDS_SEED", "99")
	t.Setenv("BOIDS_DOUBLE_BUFFER", "true")

	out, _, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "seed: 99")
	assert.Contains(t, out, "doubleBuffer: true")
}

func TestConfigCmd_ConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boids.yaml")
	require.NoError(t, os.WriteFile(path, []byte("numBoids: 33\nworldWidth: 640\n"), 0o600))

	out, _, err := execute(t, "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "numBoids: 33")
	assert.Contains(t, out, "worldWidth: 640")

	// The printed config loads back unchanged.
	printed := filepath.Join(t.TempDir(), "printed.yaml")
	require.NoError(t, os.WriteFile(printed, []byte(out), 0o600))
	again, _, err := execute(t, "--config", printed, "config")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCmd_InvalidOverride(t *testing.T) {
	_, _, err := execute(t, "--boids", "-1", "config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestHeadlessCmd_WritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	_, logs, err := execute(t, "--seed", "7", "--boids", "20", "--log-format", "json",
		"headless", "--ticks", "5", "--snapshot-out", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "Headless run finished")
	assert.Contains(t, logs, `"run_id"`)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap pb.WorldSnapshot
	require.NoError(t, protojson.Unmarshal(b, &snap))
	assert.Equal(t, int64(5), snap.GetTick())
	assert.Len(t, snap.GetBoids(), 20)
	assert.Len(t, snap.GetColliders(), 1)
}

func TestHeadlessCmd_NegativeTicks(t *testing.T) {
	_, _, err := execute(t, "headless", "--ticks", "-1")
	assert.Error(t, err)
}

func TestRunHeadless_Summary(t *testing.T) {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	require.NoError(t, a.initialize(&syncBuffer{}))
	a.cfg.NumBoids = 10
	a.cfg.Seed = 3

	summary, err := a.runHeadless(context.Background(), nil, 4, "")
	require.NoError(t, err)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, int64(4), summary.Ticks)
	assert.Equal(t, 10, summary.Boids)
	assert.Greater(t, summary.MeanSpeed, 0.0)
	assert.LessOrEqual(t, summary.MeanSpeed, a.cfg.MaxSpeed+1e-9)
}

func TestMeanSpeed(t *testing.T) {
	assert.Equal(t, 0.0, meanSpeed(&pb.WorldSnapshot{}))
	snap := &pb.WorldSnapshot{Boids: []*pb.BoidState{
		{Velocity: &pb.Vector2D{X: 3, Y: 4}},
		{Velocity: &pb.Vector2D{X: 1}},
	}}
	assert.InDelta(t, 3.0, meanSpeed(snap), 1e-12)
}
