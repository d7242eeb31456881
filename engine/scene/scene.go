package scene

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/Carmen-Shannon/oxy-desk/engine/object"
)

// View holds the camera and light settings saved alongside a scene.
// The scene only stores them for an external renderer.
type View struct {
	CameraPosition common.Point
	CameraTarget   common.Point
	// CameraFOV is the vertical field of view in degrees.
	CameraFOV  float32
	CameraNear float32
	CameraFar  float32

	LightPosition  common.Point
	LightColor     common.Color
	LightIntensity float32
	LightAmbient   float32
	LightSpecular  float32
	LightShininess float32
}

// DefaultView returns the stock desk viewpoint and light.
func DefaultView() View {
	return View{
		CameraPosition: common.NewPoint(3, 2, 4),
		CameraTarget:   common.NewPoint(0, -0.5, 0),
		CameraFOV:      45,
		CameraNear:     0.1,
		CameraFar:      100,
		LightPosition:  common.NewPoint(2, 4, 2),
		LightColor:     common.White,
		LightIntensity: 1,
		LightAmbient:   0.4,
		LightSpecular:  0.6,
		LightShininess: 64,
	}
}

// WithDefaults returns v with every zero setting replaced by its DefaultView value.
// Positions are kept as given.
func (v View) WithDefaults() View {
	d := DefaultView()
	v.CameraFOV = common.Coalesce(v.CameraFOV, d.CameraFOV)
	v.CameraNear = common.Coalesce(v.CameraNear, d.CameraNear)
	v.CameraFar = common.Coalesce(v.CameraFar, d.CameraFar)
	v.LightColor = common.Coalesce(v.LightColor, d.LightColor)
	v.LightIntensity = common.Coalesce(v.LightIntensity, d.LightIntensity)
	v.LightAmbient = common.Coalesce(v.LightAmbient, d.LightAmbient)
	v.LightSpecular = common.Coalesce(v.LightSpecular, d.LightSpecular)
	v.LightShininess = common.Coalesce(v.LightShininess, d.LightShininess)
	return v
}

// Stats is a snapshot count of a scene's hierarchy.
type Stats struct {
	Objects  int
	Parts    int
	Faces    int
	Vertices int
	Centroid common.Point
}

// String returns a multi-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("Objects: %d\nParts: %d\nFaces: %d\nVertices: %d\nCentroid: %s",
		s.Objects, s.Parts, s.Faces, s.Vertices, s.Centroid)
}

// Scene manages an ordered collection of Objects together with their cached centroid
// and the view used to look at them.
// The centroid of a Scene is the mean of the object centroids and is refreshed after
// every mutation. Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// View returns the camera and light placement.
	View() View

	// SetView replaces the camera and light placement.
	//
	// Parameters:
	//   - v: the new view
	SetView(v View)

	// AddObject appends an object and recomputes the centroid.
	//
	// Parameters:
	//   - obj: the object to append
	AddObject(obj object.Object)

	// AddObjects appends several objects and recomputes the centroid once.
	//
	// Parameters:
	//   - objs: the objects to append, in order
	AddObjects(objs ...object.Object)

	// RemoveObject removes every object with the exact name and recomputes the centroid.
	// Removing a name that does not exist is a no-op.
	//
	// Parameters:
	//   - name: the exact object name
	//
	// Returns:
	//   - int: the number of objects removed
	RemoveObject(name string) int

	// FindObject returns the first object with the exact name.
	//
	// Parameters:
	//   - name: the exact object name
	//
	// Returns:
	//   - object.Object: the object, or nil
	//   - bool: whether an object was found
	FindObject(name string) (object.Object, bool)

	// FindObjectsByPattern returns every object whose name contains substr, in scene order.
	// The match is case-sensitive and substr is not interpreted.
	//
	// Parameters:
	//   - substr: the substring to look for
	//
	// Returns:
	//   - []object.Object: the matching objects (empty, never nil)
	FindObjectsByPattern(substr string) []object.Object

	// Objects returns a snapshot of the objects in insertion order.
	Objects() []object.Object

	// Count returns the number of objects.
	Count() int

	// Clear removes every object and resets the centroid to the origin.
	Clear()

	// Replace swaps the whole object list in a single mutation.
	// Concurrent readers see either the old objects or the new ones, never an empty scene in between.
	//
	// Parameters:
	//   - objs: the new objects, in order
	Replace(objs ...object.Object)

	// Centroid returns the mean of the object centroids, or the origin when empty.
	Centroid() common.Point

	// Stats counts objects, parts, faces and vertices.
	Stats() Stats

	// RenderBatches flattens every object into a GPU-ready Model. Objects are flattened
	// in parallel on the scene's compute pool, and the result is in scene order.
	//
	// Returns:
	//   - []model.Model: one model per object
	RenderBatches() []model.Model

	// Close stops the compute pool. RenderBatches keeps working afterwards on the
	// calling goroutine.
	Close()
}

type scene struct {
	mu *sync.RWMutex

	name     string
	view     View
	objects  []object.Object
	centroid common.Point

	// computePool runs the per-object flattening of RenderBatches.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
	closed         bool
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new, empty Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		view:           DefaultView(),
		computeWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}
	s.recomputeCentroid()

	// Initialize the compute pool after options so WithComputeWorkers can override the default.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 64, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *scene) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

func (s *scene) AddObject(obj object.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, obj)
	s.recomputeCentroid()
}

func (s *scene) AddObjects(objs ...object.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, objs...)
	s.recomputeCentroid()
}

func (s *scene) RemoveObject(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.objects[:0]
	for _, obj := range s.objects {
		if obj.Name() != name {
			kept = append(kept, obj)
		}
	}
	removed := len(s.objects) - len(kept)
	clear(s.objects[len(kept):])
	s.objects = kept
	s.recomputeCentroid()
	return removed
}

func (s *scene) FindObject(name string) (object.Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, obj := range s.objects {
		if obj.Name() == name {
			return obj, true
		}
	}
	return nil, false
}

func (s *scene) FindObjectsByPattern(substr string) []object.Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []object.Object{}
	for _, obj := range s.objects {
		if strings.Contains(obj.Name(), substr) {
			out = append(out, obj)
		}
	}
	return out
}

func (s *scene) Objects() []object.Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]object.Object, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = nil
	s.centroid = common.Origin
}

func (s *scene) Replace(objs ...object.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = slices.Clone(objs)
	s.recomputeCentroid()
}

func (s *scene) Centroid() common.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.centroid
}

func (s *scene) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Objects: len(s.objects), Centroid: s.centroid}
	for _, obj := range s.objects {
		objStats := obj.Stats()
		st.Parts += objStats.Parts
		st.Faces += objStats.Faces
		st.Vertices += objStats.Vertices
	}
	return st
}

func (s *scene) RenderBatches() []model.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Model, len(s.objects))
	if s.closed {
		for i, obj := range s.objects {
			out[i] = model.FromObject(obj)
		}
		return out
	}

	// Each task writes only its own slot, so the WaitGroup is the only barrier needed.
	var wg sync.WaitGroup
	for i, obj := range s.objects {
		wg.Add(1)
		idx, objCap := i, obj
		s.computePool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				out[idx] = model.FromObject(objCap)
				return nil, nil
			},
		})
	}
	wg.Wait()
	return out
}

func (s *scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.computePool.Stop()
}

// recomputeCentroid refreshes the cached centroid. Caller must hold s.mu write lock.
func (s *scene) recomputeCentroid() {
	centroids := make([]common.Point, len(s.objects))
	for i, obj := range s.objects {
		centroids[i] = obj.Centroid()
	}
	s.centroid = common.Centroid(centroids)
}
