package mesh

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/common"
)

// CuboidSide identifies one of the six faces of a generated cuboid.
type CuboidSide int

const (
	// SideFront is the +Z face.
	SideFront CuboidSide = iota
	// SideBack is the -Z face.
	SideBack
	// SideLeft is the -X face.
	SideLeft
	// SideRight is the +X face.
	SideRight
	// SideBottom is the -Y face.
	SideBottom
	// SideTop is the +Y face.
	SideTop

	cuboidSideCount
)

func (s CuboidSide) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	default:
		return fmt.Sprintf("CuboidSide(%d)", int(s))
	}
}

// CuboidSides returns the sides in generation order. Flattening relies on this order.
func CuboidSides() []CuboidSide {
	return []CuboidSide{SideFront, SideBack, SideLeft, SideRight, SideBottom, SideTop}
}

// Winding selects the vertex order of a generated face as seen from outside the solid.
type Winding int

const (
	// WindingCounterClockwise orders vertices so the normal points out of the solid.
	WindingCounterClockwise Winding = iota
	// WindingClockwise reverses the loop so the normal points into the solid.
	WindingClockwise
)

func (w Winding) String() string {
	if w == WindingClockwise {
		return "cw"
	}
	return "ccw"
}

// Corner indices into Corners. Bit layout: x is set for 1,2,5,6; y for 2,3,6,7; z for 4..7.
//
//	0 (-,-,-)  1 (+,-,-)  2 (+,+,-)  3 (-,+,-)
//	4 (-,-,+)  5 (+,-,+)  6 (+,+,+)  7 (-,+,+)
var cuboidSideCorners = [cuboidSideCount][4]int{
	SideFront:  {4, 5, 6, 7},
	SideBack:   {1, 0, 3, 2},
	SideLeft:   {0, 4, 7, 3},
	SideRight:  {5, 1, 2, 6},
	SideBottom: {0, 1, 5, 4},
	SideTop:    {3, 7, 6, 2},
}

// Corners computes the 8 corners of an axis-aligned box.
//
// Parameters:
//   - center: the box center
//   - size: the full extents (width, height, depth)
//
// Returns:
//   - [8]common.Point: the corners, indexed as documented on cuboidSideCorners
func Corners(center, size common.Point) [8]common.Point {
	h := size.Scale(0.5)
	return [8]common.Point{
		{X: center.X - h.X, Y: center.Y - h.Y, Z: center.Z - h.Z},
		{X: center.X + h.X, Y: center.Y - h.Y, Z: center.Z - h.Z},
		{X: center.X + h.X, Y: center.Y + h.Y, Z: center.Z - h.Z},
		{X: center.X - h.X, Y: center.Y + h.Y, Z: center.Z - h.Z},
		{X: center.X - h.X, Y: center.Y - h.Y, Z: center.Z + h.Z},
		{X: center.X + h.X, Y: center.Y - h.Y, Z: center.Z + h.Z},
		{X: center.X + h.X, Y: center.Y + h.Y, Z: center.Z + h.Z},
		{X: center.X - h.X, Y: center.Y + h.Y, Z: center.Z + h.Z},
	}
}

// GenerateCuboid produces the six quad faces of an axis-aligned box in the order
// front, back, left, right, bottom, top. Every face owns copies of its 4 corners and
// carries the (0,1,2),(2,3,0) triangulation, giving 24 vertices and 36 indices in total.
// The function is pure.
//
// Parameters:
//   - center: the box center
//   - size: the full extents (width, height, depth)
//   - options: per-face winding overrides
//
// Returns:
//   - []Face: the six faces
//   - error: error if a face cannot be built
func GenerateCuboid(center, size common.Point, options ...CuboidBuilderOption) ([]Face, error) {
	cfg := cuboidConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	corners := Corners(center, size)
	faces := make([]Face, 0, cuboidSideCount)
	for _, side := range CuboidSides() {
		loop := cuboidSideCorners[side]
		if cfg.windings[side] == WindingClockwise {
			loop = [4]int{loop[0], loop[3], loop[2], loop[1]}
		}
		p0, p1, p2, p3 := corners[loop[0]], corners[loop[1]], corners[loop[2]], corners[loop[3]]
		f, err := NewQuad(&p0, &p1, &p2, &p3)
		if err != nil {
			return nil, fmt.Errorf("cuboid %s face: %w", side, err)
		}
		faces = append(faces, f)
	}
	return faces, nil
}
