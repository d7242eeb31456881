package builder

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/object"
)

// Placement positions one preset inside a desk layout.
type Placement struct {
	Kind     PresetKind
	Position common.Point
	Rotation [3]float32
	Scale    [3]float32
	// BaseColor overrides the preset base color when non-nil.
	BaseColor *common.Color
	// Hidden placements are skipped by BuildLayout.
	Hidden bool
}

// DefaultDeskLayout returns the stock desk arrangement: monitor, tower, keyboard and mouse
// sitting on the desk surface.
func DefaultDeskLayout() []Placement {
	unit := [3]float32{1, 1, 1}
	return []Placement{
		{Kind: PresetMonitor, Position: common.NewPoint(0, -0.3, -0.3), Scale: unit},
		{Kind: PresetCPU, Position: common.NewPoint(1.8, -0.8, -0.2), Scale: unit},
		{Kind: PresetKeyboard, Position: common.NewPoint(0, -1.4, 0.8), Scale: unit},
		{Kind: PresetMouse, Position: common.NewPoint(1.7, -1.43, 0.8), Scale: unit},
		{Kind: PresetDesk, Position: common.NewPoint(0, -1.5, 0), Scale: unit},
	}
}

// BuildLayout builds one object per visible placement, in placement order.
//
// Parameters:
//   - placements: the layout table
//
// Returns:
//   - []object.Object: the built objects
//   - error: error if any preset is unknown or fails to build
func BuildLayout(placements ...Placement) ([]object.Object, error) {
	out := make([]object.Object, 0, len(placements))
	for i, pl := range placements {
		if pl.Hidden {
			continue
		}
		b, err := Preset(pl.Kind, pl.Position)
		if err != nil {
			return nil, fmt.Errorf("placement %d: %w", i, err)
		}
		b.WithRotation(pl.Rotation)
		if pl.Scale != [3]float32{} {
			b.WithScale(pl.Scale)
		}
		if pl.BaseColor != nil {
			b.WithBaseColor(*pl.BaseColor)
		}
		obj, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("placement %d: %w", i, err)
		}
		out = append(out, obj)
	}
	return out, nil
}
