package part

import (
	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/mesh"
)

// PartBuilderOption is a functional option for configuring a Part via NewPart.
type PartBuilderOption func(*part)

// WithFaces sets the initial faces of the Part.
//
// Parameters:
//   - faces: the faces, in order
//
// Returns:
//   - PartBuilderOption: a function that applies the faces option to a part
func WithFaces(faces ...mesh.Face) PartBuilderOption {
	return func(p *part) {
		p.faces = append(p.faces, faces...)
	}
}

// WithPosition sets the local translation of the Part.
//
// Parameters:
//   - x, y, z: the translation
//
// Returns:
//   - PartBuilderOption: a function that applies the position option to a part
func WithPosition(x, y, z float32) PartBuilderOption {
	return func(p *part) {
		p.transform.Position = [3]float32{x, y, z}
	}
}

// WithRotation sets the local Euler rotation of the Part in radians.
//
// Parameters:
//   - rx, ry, rz: the rotation angles
//
// Returns:
//   - PartBuilderOption: a function that applies the rotation option to a part
func WithRotation(rx, ry, rz float32) PartBuilderOption {
	return func(p *part) {
		p.transform.Rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the local scale of the Part.
//
// Parameters:
//   - sx, sy, sz: the scale factors
//
// Returns:
//   - PartBuilderOption: a function that applies the scale option to a part
func WithScale(sx, sy, sz float32) PartBuilderOption {
	return func(p *part) {
		p.transform.Scale = [3]float32{sx, sy, sz}
	}
}

// WithColor sets the color of the Part.
//
// Parameters:
//   - c: the color
//
// Returns:
//   - PartBuilderOption: a function that applies the color option to a part
func WithColor(c common.Color) PartBuilderOption {
	return func(p *part) {
		p.color = c
	}
}

// WithSize records the cuboid extents the Part was generated from.
//
// Parameters:
//   - size: the extents
//
// Returns:
//   - PartBuilderOption: a function that applies the size option to a part
func WithSize(size common.Point) PartBuilderOption {
	return func(p *part) {
		p.size = size
	}
}
