// Package config loads the desk scene settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/builder"
	"github.com/Carmen-Shannon/oxy-desk/engine/loader"
)

// EnvPrefix is prepended to every environment override, e.g. OXYDESK_SAVE_DIR.
const EnvPrefix = "OXYDESK"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every setting the engine and CLI read.
type Config struct {
	Scene          string `toml:"scene" envconfig:"SCENE"`
	SaveDir        string `toml:"save_dir" envconfig:"SAVE_DIR"`
	Format         string `toml:"format" envconfig:"FORMAT"`
	LogLevel       string `toml:"log_level" envconfig:"LOG_LEVEL"`
	ComputeWorkers int    `toml:"compute_workers" envconfig:"COMPUTE_WORKERS"`

	Camera  Camera   `toml:"camera" ignored:"true"`
	Light   Light    `toml:"light" ignored:"true"`
	Objects []Object `toml:"objects" ignored:"true"`
}

// Camera is the viewpoint saved with the scene and used by renderers.
type Camera struct {
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
}

// Light is the single point light of the desk scene.
type Light struct {
	Position  [3]float32 `toml:"position"`
	Color     [3]float32 `toml:"color"`
	Intensity float32    `toml:"intensity"`
	Ambient   float32    `toml:"ambient"`
	Specular  float32    `toml:"specular"`
	Shininess float32    `toml:"shininess"`
}

// Object places one preset in the desk layout.
type Object struct {
	Preset   string     `toml:"preset"`
	Position [3]float32 `toml:"position"`
	Rotation [3]float32 `toml:"rotation"`
	Scale    [3]float32 `toml:"scale"`
	// BaseColor overrides the preset base color when set.
	BaseColor *[3]float32 `toml:"base_color,omitempty"`
	Hidden    bool        `toml:"hidden"`
}

// Default returns the stock configuration.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Load reads path as TOML on top of the defaults, then applies OXYDESK_* environment
// overrides. A missing file is not an error. An empty path skips the file.
//
// Parameters:
//   - path: the TOML file
//
// Returns:
//   - Config: the merged and validated configuration
//   - error: error if the file cannot be parsed or the result is invalid
func Load(path string) (Config, error) {
	var c Config
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
		default:
			if err := toml.Unmarshal(raw, &c); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes c to path as TOML, creating parent directories.
//
// Parameters:
//   - path: the TOML file
//
// Returns:
//   - error: error if encoding or writing fails
func (c Config) Save(path string) error {
	raw, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, raw, 0o644)
}

// Validate checks the format, log level, worker count, camera planes and presets.
//
// Returns:
//   - error: an ErrInvalidConfig wrap describing the first problem
func (c Config) Validate() error {
	if _, err := loader.ParseBackendType(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if c.ComputeWorkers < 0 {
		return fmt.Errorf("%w: compute_workers must not be negative", ErrInvalidConfig)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera planes near=%g far=%g", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	}
	for i, o := range c.Objects {
		if _, err := builder.ParsePresetKind(o.Preset); err != nil {
			return fmt.Errorf("%w: objects[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
//
// Returns:
//   - slog.Level: the level
//   - error: error if the name is not a slog level
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel)))
	return l, err
}

// Placements converts the object table into builder placements.
//
// Returns:
//   - []builder.Placement: one placement per object, in order
//   - error: error if a preset name is unknown
func (c Config) Placements() ([]builder.Placement, error) {
	out := make([]builder.Placement, 0, len(c.Objects))
	for i, o := range c.Objects {
		kind, err := builder.ParsePresetKind(o.Preset)
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", i, err)
		}
		pl := builder.Placement{
			Kind:     kind,
			Position: common.PointFromVec(o.Position),
			Rotation: o.Rotation,
			Scale:    o.Scale,
			Hidden:   o.Hidden,
		}
		if o.BaseColor != nil {
			bc := common.Color(*o.BaseColor)
			pl.BaseColor = &bc
		}
		out = append(out, pl)
	}
	return out, nil
}

// applyDefaults fills every zero field with its stock value.
func (c *Config) applyDefaults() {
	c.Scene = common.Coalesce(c.Scene, "DeskScene")
	c.SaveDir = common.Coalesce(c.SaveDir, loader.DefaultDir)
	c.Format = common.Coalesce(c.Format, loader.BackendTypeJSON.String())
	c.LogLevel = common.Coalesce(c.LogLevel, "info")

	c.Camera.Position = common.Coalesce(c.Camera.Position, [3]float32{3, 2, 4})
	c.Camera.Target = common.Coalesce(c.Camera.Target, [3]float32{0, -0.5, 0})
	c.Camera.FOV = common.Coalesce(c.Camera.FOV, 45)
	c.Camera.Near = common.Coalesce(c.Camera.Near, 0.1)
	c.Camera.Far = common.Coalesce(c.Camera.Far, 100)

	c.Light.Position = common.Coalesce(c.Light.Position, [3]float32{2, 4, 2})
	c.Light.Color = common.Coalesce(c.Light.Color, [3]float32{1, 1, 1})
	c.Light.Intensity = common.Coalesce(c.Light.Intensity, 1)
	c.Light.Ambient = common.Coalesce(c.Light.Ambient, 0.4)
	c.Light.Specular = common.Coalesce(c.Light.Specular, 0.6)
	c.Light.Shininess = common.Coalesce(c.Light.Shininess, 64)

	if c.Objects == nil {
		for _, pl := range builder.DefaultDeskLayout() {
			c.Objects = append(c.Objects, Object{
				Preset:   pl.Kind.String(),
				Position: pl.Position.Vec(),
				Scale:    pl.Scale,
			})
		}
	}
	for i := range c.Objects {
		c.Objects[i].Scale = common.Coalesce(c.Objects[i].Scale, [3]float32{1, 1, 1})
	}
}
