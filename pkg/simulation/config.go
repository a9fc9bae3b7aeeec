package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/physics2d"
)

//go:embed config.schema.json
var configSchema string

const configSchemaURL = "config.schema.json"

// ColliderKind selects how a ColliderConfig is turned into a collider.
type ColliderKind string

const (
	ColliderRectangle ColliderKind = "rectangle"
	ColliderPolyline  ColliderKind = "polyline"
)

// ColliderConfig describes one static obstacle.
// Rectangles use X, Y, Width and Height; polylines use Points and Loop.
type ColliderConfig struct {
	Kind      ColliderKind        `json:"kind" yaml:"kind"`
	X         float64             `json:"x,omitempty" yaml:"x,omitempty"`
	Y         float64             `json:"y,omitempty" yaml:"y,omitempty"`
	Width     float64             `json:"width,omitempty" yaml:"width,omitempty"`
	Height    float64             `json:"height,omitempty" yaml:"height,omitempty"`
	Points    []geometry.Vector2D `json:"points,omitempty" yaml:"points,omitempty"`
	Loop      bool                `json:"loop,omitempty" yaml:"loop,omitempty"`
	Filled    bool                `json:"filled,omitempty" yaml:"filled,omitempty"`
	Invisible bool                `json:"invisible,omitempty" yaml:"invisible,omitempty"`
}

type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth" yaml:"worldWidth"`
	WorldHeight float64 `json:"worldHeight" yaml:"worldHeight"`

	// Population & timing
	NumBoids       int    `json:"numBoids" yaml:"numBoids"`
	TicksPerSecond int    `json:"ticksPerSecond" yaml:"ticksPerSecond"`
	Seed           uint64 `json:"seed" yaml:"seed"` // 0 picks a random seed at startup

	// Perception
	ViewRange float64 `json:"viewRange" yaml:"viewRange"`
	ViewFOV   float64 `json:"viewFOV" yaml:"viewFOV"` // compared in radians, 2π and above sees all around

	// Physics
	MaxSpeed     float64 `json:"maxSpeed" yaml:"maxSpeed"`
	Acceleration float64 `json:"acceleration" yaml:"acceleration"` // fraction of the steering force applied per tick
	ForwardAccel float64 `json:"forwardAccel" yaml:"forwardAccel"`

	// Flocking weights
	SeparationStrength float64 `json:"separationStrength" yaml:"separationStrength"`
	AlignmentStrength  float64 `json:"alignmentStrength" yaml:"alignmentStrength"`
	CohesionStrength   float64 `json:"cohesionStrength" yaml:"cohesionStrength"`

	// Obstacle avoidance
	ObstacleAvoidStrength float64 `json:"obstacleAvoidStrength" yaml:"obstacleAvoidStrength"`
	ObstacleRayCount      int     `json:"obstacleRayCount" yaml:"obstacleRayCount"`
	ObstacleFOV           float64 `json:"obstacleFOV" yaml:"obstacleFOV"` // degrees
	ObstacleMaxDistance   float64 `json:"obstacleMaxDistance" yaml:"obstacleMaxDistance"`

	// DoubleBuffer makes every boid of a tick read the flock as it was before the tick.
	DoubleBuffer bool `json:"doubleBuffer" yaml:"doubleBuffer"`
	// ShowRays draws the obstacle rays of boid 0 in the window renderer.
	ShowRays bool `json:"showRays" yaml:"showRays"`

	Colliders []ColliderConfig `json:"colliders" yaml:"colliders"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:            800,
		WorldHeight:           800,
		NumBoids:              300,
		TicksPerSecond:        60,
		ViewRange:             60,
		ViewFOV:               200,
		MaxSpeed:              4,
		Acceleration:          0.2,
		ForwardAccel:          0.05,
		SeparationStrength:    6,
		AlignmentStrength:     0.1,
		CohesionStrength:      0.2,
		ObstacleAvoidStrength: 1.5,
		ObstacleRayCount:      7,
		ObstacleFOV:           120,
		ObstacleMaxDistance:   60,
		ShowRays:              true,
		Colliders: []ColliderConfig{
			{Kind: ColliderRectangle, X: 300, Y: 300, Width: 50, Height: 50},
		},
	}
}

func compileSchema() (*jsonschema.Schema, error) {
	sch, err := jsonschema.CompileString(configSchemaURL, configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return sch, nil
}

// LoadConfig reads a JSON or YAML (.yaml, .yml) configuration file, validates it
// against the embedded schema and applies it on top of DefaultConfig.
// Keys missing from the file keep their default value; a colliders list replaces
// the default one.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := compileSchema()
	if err != nil {
		return nil, err
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".yaml", ".yml":
		if b, err = yamlToJSON(b); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
	}

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func yamlToJSON(b []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(doc)
}

// Validate checks c against the embedded schema, e.g. after flags or environment
// variables were applied on top of a loaded file.
func (c *Config) Validate() error {
	sch, err := compileSchema()
	if err != nil {
		return err
	}
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Settings returns the boid parameters derived from the configuration.
func (c *Config) Settings() behavior.Settings {
	return behavior.Settings{
		ViewRange:             c.ViewRange,
		ViewFOV:               c.ViewFOV,
		MaxSpeed:              c.MaxSpeed,
		AccelerationScale:     c.Acceleration,
		ForwardAccel:          c.ForwardAccel,
		SeparationStrength:    c.SeparationStrength,
		AlignmentStrength:     c.AlignmentStrength,
		CohesionStrength:      c.CohesionStrength,
		ObstacleAvoidStrength: c.ObstacleAvoidStrength,
		ObstacleRayCount:      c.ObstacleRayCount,
		ObstacleFOV:           c.ObstacleFOV,
		ObstacleMaxDistance:   c.ObstacleMaxDistance,
		WorldWidth:            c.WorldWidth,
		WorldHeight:           c.WorldHeight,
	}
}

// BuildColliders creates the collider arena described by the configuration.
func (c *Config) BuildColliders() []physics2d.Collider {
	colliders := make([]physics2d.Collider, 0, len(c.Colliders))
	for _, cc := range c.Colliders {
		var col physics2d.Collider
		switch cc.Kind {
		case ColliderRectangle:
			col = physics2d.Rectangle(cc.X, cc.Y, cc.Width, cc.Height)
		default:
			col = physics2d.NewCollider(cc.Points)
			col.Loop = cc.Loop
		}
		col.IsHollow = !cc.Filled
		col.IsInvisible = cc.Invisible
		colliders = append(colliders, col)
	}
	return colliders
}
