package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/object"
)

// ErrUnknownPreset is returned when a preset kind or name has no descriptor.
var ErrUnknownPreset = errors.New("builder: unknown preset")

// PresetKind identifies one of the built-in object layouts.
type PresetKind int

const (
	// PresetMonitor is a flat screen with bezel, stand and base.
	PresetMonitor PresetKind = iota
	// PresetCPU is a tower case with front panel, power button, vent and LED.
	PresetCPU
	// PresetKeyboard is a keyboard with key area, space bar, function row and LEDs.
	PresetKeyboard
	// PresetMouse is a mouse body with two buttons and a wheel.
	PresetMouse
	// PresetDesk is the desk surface everything sits on.
	PresetDesk

	presetKindCount
)

// presetDescriptor is the static layout of a preset: object identity plus its parts.
type presetDescriptor struct {
	name      string
	baseColor common.Color
	parts     []PartDefinition
}

func pt(x, y, z float32) common.Point { return common.NewPoint(x, y, z) }
func rgb(r, g, b float32) common.Color { return common.NewColor(r, g, b) }

var presetDescriptors = [presetKindCount]presetDescriptor{
	PresetMonitor: {
		name:      "Monitor",
		baseColor: rgb(0.15, 0.15, 0.15),
		parts: []PartDefinition{
			{Name: "Screen", Offset: pt(0, 0, 0), Size: pt(2.4, 1.5, 0.06), Color: rgb(0.02, 0.02, 0.05)},
			{Name: "Bezel", Offset: pt(0, 0, -0.04), Size: pt(2.5, 1.6, 0.03), Color: rgb(0.1, 0.1, 0.1)},
			{Name: "StandBase", Offset: pt(0, -0.85, 0.1), Size: pt(0.6, 0.08, 0.4), Color: rgb(0.2, 0.2, 0.2)},
			{Name: "Stand", Offset: pt(0, -0.42, 0.05), Size: pt(0.06, 0.5, 0.06), Color: rgb(0.15, 0.15, 0.15)},
		},
	},
	PresetCPU: {
		name:      "CPU",
		baseColor: rgb(0.25, 0.25, 0.3),
		parts: []PartDefinition{
			{Name: "Case", Offset: pt(0, 0, 0), Size: pt(0.5, 1.6, 0.8), Color: rgb(0.2, 0.2, 0.25)},
			{Name: "FrontPanel", Offset: pt(0, 0.1, 0.42), Size: pt(0.45, 0.3, 0.02), Color: rgb(0.1, 0.1, 0.15)},
			{Name: "PowerButton", Offset: pt(-0.15, -0.5, 0.43), Size: pt(0.05, 0.05, 0.01), Color: rgb(0.8, 0.2, 0.2)},
			{Name: "Vent", Offset: pt(0.1, -0.2, 0.42), Size: pt(0.15, 0.15, 0.02), Color: rgb(0.05, 0.05, 0.05)},
			{Name: "LED", Offset: pt(-0.15, -0.6, 0.43), Size: pt(0.02, 0.02, 0.005), Color: rgb(0.2, 0.8, 0.2)},
		},
	},
	PresetKeyboard: {
		name:      "Keyboard",
		baseColor: rgb(0.05, 0.05, 0.05),
		parts: []PartDefinition{
			{Name: "KeyboardBase", Offset: pt(0, 0, 0), Size: pt(2.8, 0.08, 0.8), Color: rgb(0.05, 0.05, 0.05)},
			{Name: "KeyArea", Offset: pt(0, 0.045, -0.03), Size: pt(2.6, 0.025, 0.55), Color: rgb(0.1, 0.1, 0.1)},
			{Name: "SpaceBar", Offset: pt(0, 0.06, 0.2), Size: pt(1.2, 0.025, 0.1), Color: rgb(0.15, 0.15, 0.15)},
			{Name: "FunctionKeys", Offset: pt(0, 0.06, -0.32), Size: pt(2.0, 0.02, 0.06), Color: rgb(0.12, 0.12, 0.12)},
			{Name: "StatusLEDs", Offset: pt(1.0, 0.065, -0.28), Size: pt(0.12, 0.01, 0.03), Color: rgb(0.8, 0.8, 0.2)},
		},
	},
	PresetMouse: {
		name:      "Mouse",
		baseColor: rgb(0.1, 0.1, 0.1),
		parts: []PartDefinition{
			{Name: "MouseBody", Offset: pt(0, 0, 0), Size: pt(0.12, 0.04, 0.2), Color: rgb(0.1, 0.1, 0.1)},
			{Name: "LeftButton", Offset: pt(-0.03, 0.025, -0.05), Size: pt(0.055, 0.01, 0.09), Color: rgb(0.18, 0.18, 0.18)},
			{Name: "RightButton", Offset: pt(0.03, 0.025, -0.05), Size: pt(0.055, 0.01, 0.09), Color: rgb(0.18, 0.18, 0.18)},
			{Name: "Wheel", Offset: pt(0, 0.032, -0.05), Size: pt(0.01, 0.015, 0.03), Color: rgb(0.3, 0.3, 0.3)},
		},
	},
	PresetDesk: {
		name:      "Desk",
		baseColor: rgb(0.4, 0.3, 0.2),
		parts: []PartDefinition{
			{Name: "Surface", Offset: pt(0, 0, 0), Size: pt(5.0, 0.1, 3.0), Color: rgb(0.4, 0.3, 0.2)},
		},
	},
}

// PresetKinds returns every known preset kind in declaration order.
func PresetKinds() []PresetKind {
	out := make([]PresetKind, 0, presetKindCount)
	for k := PresetKind(0); k < presetKindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k has a descriptor.
func (k PresetKind) Valid() bool {
	return k >= 0 && k < presetKindCount
}

// String returns the object name the preset produces.
func (k PresetKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PresetKind(%d)", int(k))
	}
	return presetDescriptors[k].name
}

// ParsePresetKind resolves a preset from its object name, case-insensitively.
//
// Parameters:
//   - s: the preset name (e.g. "monitor", "CPU")
//
// Returns:
//   - PresetKind: the matching kind
//   - error: ErrUnknownPreset if no preset matches
func ParsePresetKind(s string) (PresetKind, error) {
	for _, k := range PresetKinds() {
		if strings.EqualFold(presetDescriptors[k].name, strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownPreset)
}

// Preset returns a builder preloaded with the layout of kind, placed at position.
// The builder can be further customised before Build.
//
// Parameters:
//   - kind: the preset kind
//   - position: the object translation
//
// Returns:
//   - *Builder: the preloaded builder
//   - error: ErrUnknownPreset for an invalid kind
func Preset(kind PresetKind, position common.Point) (*Builder, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%s: %w", kind, ErrUnknownPreset)
	}
	d := presetDescriptors[kind]
	return NewBuilder(d.name, position, d.baseColor).AddParts(d.parts...), nil
}

// BuildPreset builds the object for kind at position.
//
// Parameters:
//   - kind: the preset kind
//   - position: the object translation
//
// Returns:
//   - object.Object: the assembled object
//   - error: error if the kind is unknown or the geometry fails
func BuildPreset(kind PresetKind, position common.Point) (object.Object, error) {
	b, err := Preset(kind, position)
	if err != nil {
		return nil, err
	}
	return b.Build()
}
