// Package builder assembles Objects declaratively from named cuboid part definitions.
package builder

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/mesh"
	"github.com/Carmen-Shannon/oxy-desk/engine/object"
	"github.com/Carmen-Shannon/oxy-desk/engine/part"
)

// PartDefinition describes one cuboid part relative to its object.
type PartDefinition struct {
	// Name is the part identifier.
	Name string
	// Offset is the part center relative to the object origin.
	Offset common.Point
	// Size is the full extents of the cuboid.
	Size common.Point
	// Color is the part color. common.White makes the part inherit the object base color.
	Color common.Color
}

// Builder accumulates part definitions for a target object and instantiates them on Build.
// A Builder is not safe for concurrent use.
type Builder struct {
	name          string
	position      common.Point
	rotation      [3]float32
	scale         [3]float32
	baseColor     common.Color
	defs          []PartDefinition
	cuboidOptions []mesh.CuboidBuilderOption
}

// NewBuilder starts a builder for an object with the given identity.
//
// Parameters:
//   - name: the object identifier
//   - position: the object translation
//   - baseColor: the object base color
//
// Returns:
//   - *Builder: the builder
func NewBuilder(name string, position common.Point, baseColor common.Color) *Builder {
	return &Builder{
		name:      name,
		position:  position,
		scale:     [3]float32{1, 1, 1},
		baseColor: baseColor,
	}
}

// AddPart appends a part definition.
//
// Parameters:
//   - name: the part identifier
//   - offset: the part center relative to the object
//   - size: the cuboid extents
//   - color: the part color
//
// Returns:
//   - *Builder: the builder, for chaining
func (b *Builder) AddPart(name string, offset, size common.Point, color common.Color) *Builder {
	b.defs = append(b.defs, PartDefinition{Name: name, Offset: offset, Size: size, Color: color})
	return b
}

// AddParts appends several part definitions.
//
// Parameters:
//   - defs: the definitions, in order
//
// Returns:
//   - *Builder: the builder, for chaining
func (b *Builder) AddParts(defs ...PartDefinition) *Builder {
	b.defs = append(b.defs, defs...)
	return b
}

// WithBaseColor overrides the object base color.
func (b *Builder) WithBaseColor(c common.Color) *Builder {
	b.baseColor = c
	return b
}

// WithPosition overrides the object translation.
func (b *Builder) WithPosition(p common.Point) *Builder {
	b.position = p
	return b
}

// WithRotation sets the object Euler rotation in radians.
func (b *Builder) WithRotation(r [3]float32) *Builder {
	b.rotation = r
	return b
}

// WithScale sets the object scale.
func (b *Builder) WithScale(s [3]float32) *Builder {
	b.scale = s
	return b
}

// WithCuboidOptions forwards winding options to every generated part.
//
// Parameters:
//   - options: the generator options
//
// Returns:
//   - *Builder: the builder, for chaining
func (b *Builder) WithCuboidOptions(options ...mesh.CuboidBuilderOption) *Builder {
	b.cuboidOptions = append(b.cuboidOptions, options...)
	return b
}

// Definitions returns a copy of the accumulated part definitions.
func (b *Builder) Definitions() []PartDefinition {
	out := make([]PartDefinition, len(b.defs))
	copy(out, b.defs)
	return out
}

// Name returns the target object name.
func (b *Builder) Name() string {
	return b.name
}

// Build generates every part through the cuboid generator and attaches them to a new
// Object in a single batch, so the object centroid is computed once.
// Any geometry error aborts the build and no Object is returned.
//
// Returns:
//   - object.Object: the assembled object
//   - error: error if a part cannot be generated
func (b *Builder) Build() (object.Object, error) {
	parts := make([]part.Part, 0, len(b.defs))
	for _, def := range b.defs {
		p, err := part.NewCuboidPart(def.Name, def.Offset, def.Size, def.Color, b.cuboidOptions...)
		if err != nil {
			return nil, fmt.Errorf("build %q: %w", b.name, err)
		}
		parts = append(parts, p)
	}

	obj := object.NewObject(b.name,
		object.WithPosition(b.position.X, b.position.Y, b.position.Z),
		object.WithRotation(b.rotation[0], b.rotation[1], b.rotation[2]),
		object.WithScale(b.scale[0], b.scale[1], b.scale[2]),
		object.WithBaseColor(b.baseColor),
	)
	obj.AddParts(parts...)
	return obj, nil
}
