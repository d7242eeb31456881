// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Point is an immutable 3D coordinate. It has no identity beyond its components.
type Point struct {
	X, Y, Z float32
}

var (
	// Origin is the zero point, used as the centroid of empty collections.
	Origin = Point{}

	// UnitY is the fallback normal for degenerate faces.
	UnitY = Point{0, 1, 0}
)

// NewPoint creates a Point from its components.
//
// Parameters:
//   - x, y, z: the coordinates
//
// Returns:
//   - Point: the new point
func NewPoint(x, y, z float32) Point {
	return Point{X: x, Y: y, Z: z}
}

// PointFromVec creates a Point from a [3]float32 vector.
//
// Parameters:
//   - v: the vector (x, y, z)
//
// Returns:
//   - Point: the new point
func PointFromVec(v [3]float32) Point {
	return Point{X: v[0], Y: v[1], Z: v[2]}
}

// Vec returns the point as a [3]float32.
func (p Point) Vec() [3]float32 {
	return [3]float32{p.X, p.Y, p.Z}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float32) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Cross returns the cross product p × q.
func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// LengthSquared returns the squared euclidean length of p.
func (p Point) LengthSquared() float32 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// Length returns the euclidean length of p.
func (p Point) Length() float32 {
	return math32.Sqrt(p.LengthSquared())
}

// Normalize returns p scaled to unit length.
// A zero-length (or non-finite) vector cannot be normalized and is returned unchanged with ok == false.
//
// Returns:
//   - Point: the unit vector, or p when ok is false
//   - bool: whether normalization succeeded
func (p Point) Normalize() (Point, bool) {
	l := p.Length()
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return p, false
	}
	return p.Scale(1 / l), true
}

// ApproxEqual reports whether p and q differ by at most eps on every axis.
func (p Point) ApproxEqual(q Point, eps float32) bool {
	return math32.Abs(p.X-q.X) <= eps && math32.Abs(p.Y-q.Y) <= eps && math32.Abs(p.Z-q.Z) <= eps
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
}

// Centroid returns the componentwise arithmetic mean of points, or Origin when points is empty.
//
// Parameters:
//   - points: the points to average
//
// Returns:
//   - Point: the mean position
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Origin
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float32(len(points)))
}

// Color is an RGB color with components in [0, 1].
type Color [3]float32

// White is the default color. Parts left at White inherit their object's base color.
var White = Color{1, 1, 1}

// NewColor creates a Color from its components.
func NewColor(r, g, b float32) Color {
	return Color{r, g, b}
}

// IsWhite reports whether c equals the White sentinel.
func (c Color) IsWhite() bool {
	return c == White
}

// Transform is a local position / Euler rotation (radians) / scale triple.
type Transform struct {
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}

// IdentityTransform returns a Transform with zero translation and rotation and unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// ModelMatrix builds the column-major 4x4 model matrix for the transform.
//
// Returns:
//   - [16]float32: the model matrix
func (t Transform) ModelMatrix() [16]float32 {
	var m [16]float32
	BuildModelMatrix(m[:],
		t.Position[0], t.Position[1], t.Position[2],
		t.Rotation[0], t.Rotation[1], t.Rotation[2],
		t.Scale[0], t.Scale[1], t.Scale[2],
	)
	return m
}
