package object

import (
	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/part"
)

// ObjectBuilderOption is a functional option for configuring an Object via NewObject.
type ObjectBuilderOption func(*object)

// WithParts sets the initial parts of the Object.
//
// Parameters:
//   - parts: the parts, in order
//
// Returns:
//   - ObjectBuilderOption: functional option to set the parts
func WithParts(parts ...part.Part) ObjectBuilderOption {
	return func(o *object) {
		o.parts = append(o.parts, parts...)
	}
}

// WithPosition sets the local translation of the Object.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - ObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) ObjectBuilderOption {
	return func(o *object) {
		o.transform.Position = [3]float32{x, y, z}
	}
}

// WithRotation sets the local Euler rotation of the Object in radians.
//
// Parameters:
//   - rx: the x rotation angle
//   - ry: the y rotation angle
//   - rz: the z rotation angle
//
// Returns:
//   - ObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) ObjectBuilderOption {
	return func(o *object) {
		o.transform.Rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the local scale of the Object.
//
// Parameters:
//   - sx: the x scale factor
//   - sy: the y scale factor
//   - sz: the z scale factor
//
// Returns:
//   - ObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) ObjectBuilderOption {
	return func(o *object) {
		o.transform.Scale = [3]float32{sx, sy, sz}
	}
}

// WithBaseColor sets the base color of the Object.
//
// Parameters:
//   - c: the base color
//
// Returns:
//   - ObjectBuilderOption: functional option to set the base color
func WithBaseColor(c common.Color) ObjectBuilderOption {
	return func(o *object) {
		o.baseColor = c
	}
}
