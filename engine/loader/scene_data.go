package loader

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/builder"
	"github.com/Carmen-Shannon/oxy-desk/engine/object"
	"github.com/Carmen-Shannon/oxy-desk/engine/scene"
)

// ErrMalformedScene is returned when a snapshot fails validation.
var ErrMalformedScene = errors.New("loader: malformed scene data")

// DefaultPartSize is the box size used for parts saved without one.
var DefaultPartSize = [3]float32{1, 1, 1}

// SceneData is the serialisable snapshot of a scene and its view.
type SceneData struct {
	ID             string       `json:"id" toml:"id"`
	Name           string       `json:"name" toml:"name"`
	CameraPosition [3]float32   `json:"camera_position" toml:"camera_position"`
	CameraTarget   [3]float32   `json:"camera_target" toml:"camera_target"`
	CameraFOV      float32      `json:"camera_fov" toml:"camera_fov"`
	CameraNear     float32      `json:"camera_near" toml:"camera_near"`
	CameraFar      float32      `json:"camera_far" toml:"camera_far"`
	LightPosition  [3]float32   `json:"light_position" toml:"light_position"`
	LightColor     [3]float32   `json:"light_color" toml:"light_color"`
	LightIntensity float32      `json:"light_intensity" toml:"light_intensity"`
	LightAmbient   float32      `json:"light_ambient" toml:"light_ambient"`
	LightSpecular  float32      `json:"light_specular" toml:"light_specular"`
	LightShininess float32      `json:"light_shininess" toml:"light_shininess"`
	Objects        []ObjectData `json:"objects" toml:"objects"`
}

// ObjectData is the serialisable snapshot of one object.
type ObjectData struct {
	Name      string     `json:"name" toml:"name"`
	Position  [3]float32 `json:"position" toml:"position"`
	Rotation  [3]float32 `json:"rotation" toml:"rotation"`
	Scale     [3]float32 `json:"scale" toml:"scale"`
	BaseColor [3]float32 `json:"base_color" toml:"base_color"`
	Parts     []PartData `json:"parts" toml:"parts"`
}

// PartData is the serialisable snapshot of one cuboid part.
// Position is the box center relative to the owning object.
type PartData struct {
	Name     string     `json:"name" toml:"name"`
	Position [3]float32 `json:"position" toml:"position"`
	Size     [3]float32 `json:"size" toml:"size"`
	Color    [3]float32 `json:"color" toml:"color"`
}

// clone returns a copy of d that shares no slices with it.
func (d SceneData) clone() SceneData {
	out := d
	if d.Objects != nil {
		out.Objects = make([]ObjectData, len(d.Objects))
		for i, od := range d.Objects {
			od.Parts = slices.Clone(od.Parts)
			out.Objects[i] = od
		}
	}
	return out
}

// FromScene captures s and its view into a new snapshot with a fresh ID.
//
// Parameters:
//   - s: the scene to capture
//
// Returns:
//   - SceneData: the snapshot
func FromScene(s scene.Scene) SceneData {
	v := s.View()
	data := SceneData{
		ID:             uuid.NewString(),
		Name:           s.Name(),
		CameraPosition: v.CameraPosition.Vec(),
		CameraTarget:   v.CameraTarget.Vec(),
		CameraFOV:      v.CameraFOV,
		CameraNear:     v.CameraNear,
		CameraFar:      v.CameraFar,
		LightPosition:  v.LightPosition.Vec(),
		LightColor:     v.LightColor,
		LightIntensity: v.LightIntensity,
		LightAmbient:   v.LightAmbient,
		LightSpecular:  v.LightSpecular,
		LightShininess: v.LightShininess,
	}
	for _, obj := range s.Objects() {
		data.Objects = append(data.Objects, fromObject(obj))
	}
	return data
}

func fromObject(obj object.Object) ObjectData {
	t := obj.Transform()
	od := ObjectData{
		Name:      obj.Name(),
		Position:  t.Position,
		Rotation:  t.Rotation,
		Scale:     t.Scale,
		BaseColor: obj.BaseColor(),
	}
	for _, p := range obj.Parts() {
		od.Parts = append(od.Parts, PartData{
			Name:     p.Name(),
			Position: p.Position(),
			Size:     p.Size().Vec(),
			Color:    p.Color(),
		})
	}
	return od
}

// Validate reports the first structural problem in d, wrapped in ErrMalformedScene.
//
// Returns:
//   - error: nil when every object and part is named
func (d SceneData) Validate() error {
	for i, od := range d.Objects {
		if od.Name == "" {
			return fmt.Errorf("%w: object %d has no name", ErrMalformedScene, i)
		}
		for j, pd := range od.Parts {
			if pd.Name == "" {
				return fmt.Errorf("%w: object %q part %d has no name", ErrMalformedScene, od.Name, j)
			}
		}
	}
	return nil
}

// ToScene rebuilds a scene from d, regenerating every part through the builder.
// Parts without a size get DefaultPartSize, objects without a scale get unit scale and
// unset camera or light settings get their scene.DefaultView values.
//
// Parameters:
//   - d: the snapshot
//   - options: extra scene options, applied after the view
//
// Returns:
//   - scene.Scene: the rebuilt scene
//   - error: error if d fails validation or a part cannot be generated
func ToScene(d SceneData, options ...scene.SceneBuilderOption) (scene.Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	objs := make([]object.Object, 0, len(d.Objects))
	for _, od := range d.Objects {
		b := builder.NewBuilder(od.Name, common.PointFromVec(od.Position), od.BaseColor).
			WithRotation(od.Rotation).
			WithScale(common.Coalesce(od.Scale, [3]float32{1, 1, 1}))
		for _, pd := range od.Parts {
			b.AddPart(pd.Name,
				common.PointFromVec(pd.Position),
				common.PointFromVec(common.Coalesce(pd.Size, DefaultPartSize)),
				pd.Color,
			)
		}
		obj, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", d.Name, err)
		}
		objs = append(objs, obj)
	}

	view := scene.View{
		CameraPosition: common.PointFromVec(d.CameraPosition),
		CameraTarget:   common.PointFromVec(d.CameraTarget),
		CameraFOV:      d.CameraFOV,
		CameraNear:     d.CameraNear,
		CameraFar:      d.CameraFar,
		LightPosition:  common.PointFromVec(d.LightPosition),
		LightColor:     d.LightColor,
		LightIntensity: d.LightIntensity,
		LightAmbient:   d.LightAmbient,
		LightSpecular:  d.LightSpecular,
		LightShininess: d.LightShininess,
	}.WithDefaults()
	opts := append([]scene.SceneBuilderOption{scene.WithView(view), scene.WithObjects(objs...)}, options...)
	return scene.NewScene(d.Name, opts...), nil
}
