package scene

import (
	"github.com/Carmen-Shannon/oxy-desk/engine/object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithObjects adds initial objects to the scene.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...object.Object) SceneBuilderOption {
	return func(s *scene) {
		s.objects = append(s.objects, objects...)
	}
}

// WithView sets the camera and light placement of the scene.
//
// Parameters:
//   - v: the view
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithView(v View) SceneBuilderOption {
	return func(s *scene) {
		s.view = v
	}
}

// WithComputeWorkers sets the number of worker goroutines used by RenderBatches.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}
