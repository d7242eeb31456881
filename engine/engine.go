package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/config"
	"github.com/Carmen-Shannon/oxy-desk/engine/builder"
	"github.com/Carmen-Shannon/oxy-desk/engine/export"
	"github.com/Carmen-Shannon/oxy-desk/engine/loader"
	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/Carmen-Shannon/oxy-desk/engine/profiler"
	"github.com/Carmen-Shannon/oxy-desk/engine/scene"
)

// engine implements the Engine interface.
// Owns the active scene and wires it to persistence, export and the render handoff.
type engine struct {
	mu sync.RWMutex

	cfg    config.Config
	logger *slog.Logger

	scene  scene.Scene
	loader loader.Loader

	profiler         *profiler.Profiler
	profilingEnabled bool
}

// Engine is the main entry point for the desk scene.
// It builds the scene from configuration, swaps it on load, and hands it to the
// persistence, export and render layers.
type Engine interface {
	// Scene returns the active scene.
	//
	// Returns:
	//   - scene.Scene: the scene instance
	Scene() scene.Scene

	// Config returns the configuration the engine was built with.
	//
	// Returns:
	//   - config.Config: the configuration
	Config() config.Config

	// BuildDesk clears the active scene and fills it from the configured object placements.
	//
	// Returns:
	//   - error: error if a placement cannot be built
	BuildDesk() error

	// Save snapshots the active scene under name.
	//
	// Parameters:
	//   - name: the snapshot name
	//
	// Returns:
	//   - string: the file written
	//   - error: error if the snapshot cannot be written
	Save(name string) (string, error)

	// Load replaces the active scene with the snapshot saved under name.
	// The previous scene is closed.
	//
	// Parameters:
	//   - name: the snapshot name
	//
	// Returns:
	//   - error: error if the snapshot is missing or malformed
	Load(name string) error

	// List returns the saved snapshot names.
	//
	// Returns:
	//   - []string: the names, sorted
	//   - error: error if the save directory cannot be read
	List() ([]string, error)

	// ExportSTL writes the active scene as a binary STL file.
	//
	// Parameters:
	//   - path: the output file
	//
	// Returns:
	//   - int: the number of triangles written
	//   - error: error if the scene is empty or the write fails
	ExportSTL(path string) (int, error)

	// RenderBatches flattens the active scene into GPU-ready models.
	//
	// Returns:
	//   - []model.Model: one model per object, in scene order
	RenderBatches() []model.Model

	// Stats returns the counts of the active scene.
	//
	// Returns:
	//   - scene.Stats: the counts
	Stats() scene.Stats

	// EnableProfiler enables per-operation profiling output to the logger.
	EnableProfiler()

	// DisableProfiler disables per-operation profiling output.
	DisableProfiler()

	// Close releases the active scene's workers.
	Close()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Without WithScene an empty scene named after the configuration is created, and
// without WithLoader a loader for the configured format and directory is created.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: error if the configuration is invalid
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		cfg: config.Default(),
	}
	for _, opt := range options {
		opt(e)
	}

	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.profiler = profiler.NewProfiler(e.logger)

	if e.loader == nil {
		format, err := loader.ParseBackendType(e.cfg.Format)
		if err != nil {
			return nil, err
		}
		e.loader = loader.NewLoader(format, loader.WithDir(e.cfg.SaveDir))
	}
	if e.scene == nil {
		e.scene = scene.NewScene(e.cfg.Scene, e.sceneOptions(scene.WithView(e.configView()))...)
	}
	return e, nil
}

func (e *engine) Scene() scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scene
}

func (e *engine) Config() config.Config {
	return e.cfg
}

func (e *engine) BuildDesk() error {
	defer e.measure("build_desk")()

	placements, err := e.cfg.Placements()
	if err != nil {
		return err
	}
	objs, err := builder.BuildLayout(placements...)
	if err != nil {
		return fmt.Errorf("build desk: %w", err)
	}

	s := e.Scene()
	s.Replace(objs...)

	stats := s.Stats()
	e.logger.Info("desk built",
		slog.String("scene", s.Name()),
		slog.Int("objects", stats.Objects),
		slog.Int("parts", stats.Parts),
		slog.Int("vertices", stats.Vertices),
		slog.String("centroid", stats.Centroid.String()),
	)
	return nil
}

func (e *engine) Save(name string) (string, error) {
	defer e.measure("save")()

	path, err := e.loader.Save(name, loader.FromScene(e.Scene()))
	if err != nil {
		return "", err
	}
	e.logger.Info("scene saved", slog.String("name", name), slog.String("path", path))
	return path, nil
}

func (e *engine) Load(name string) error {
	defer e.measure("load")()

	data, err := e.loader.Load(name)
	if err != nil {
		return err
	}
	next, err := loader.ToScene(data, e.sceneOptions()...)
	if err != nil {
		return err
	}

	e.mu.Lock()
	prev := e.scene
	e.scene = next
	e.mu.Unlock()
	if prev != nil {
		prev.Close()
	}

	e.logger.Info("scene loaded",
		slog.String("name", name),
		slog.String("id", data.ID),
		slog.Int("objects", next.Count()),
	)
	return nil
}

func (e *engine) List() ([]string, error) {
	return e.loader.List()
}

func (e *engine) ExportSTL(path string) (int, error) {
	defer e.measure("export_stl")()

	n, err := export.SaveSTL(path, e.Scene())
	if err != nil {
		return 0, err
	}
	e.logger.Info("scene exported", slog.String("path", path), slog.Int("triangles", n))
	return n, nil
}

func (e *engine) RenderBatches() []model.Model {
	defer e.measure("render_batches")()
	return e.Scene().RenderBatches()
}

func (e *engine) Stats() scene.Stats {
	return e.Scene().Stats()
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) Close() {
	e.Scene().Close()
}

// measure starts a profiler sample for op when profiling is enabled.
func (e *engine) measure(op string) func() {
	e.mu.RLock()
	enabled := e.profilingEnabled
	e.mu.RUnlock()
	if !enabled {
		return func() {}
	}
	stop := e.profiler.Start(op)
	return func() { stop() }
}

func (e *engine) sceneOptions(extra ...scene.SceneBuilderOption) []scene.SceneBuilderOption {
	opts := extra
	if e.cfg.ComputeWorkers > 0 {
		opts = append(opts, scene.WithComputeWorkers(e.cfg.ComputeWorkers))
	}
	return opts
}

func (e *engine) configView() scene.View {
	cam, lt := e.cfg.Camera, e.cfg.Light
	return scene.View{
		CameraPosition: common.PointFromVec(cam.Position),
		CameraTarget:   common.PointFromVec(cam.Target),
		CameraFOV:      cam.FOV,
		CameraNear:     cam.Near,
		CameraFar:      cam.Far,
		LightPosition:  common.PointFromVec(lt.Position),
		LightColor:     lt.Color,
		LightIntensity: lt.Intensity,
		LightAmbient:   lt.Ambient,
		LightSpecular:  lt.Specular,
		LightShininess: lt.Shininess,
	}.WithDefaults()
}
