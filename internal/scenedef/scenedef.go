package scenedef

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"cube-scene/internal/mesh"
	"cube-scene/internal/palette"
)

// DefaultPath is where the program looks for a scene file when none is given.
const DefaultPath = "scenes/default.yaml"

// ErrInvalid is wrapped by every validation error so callers can tell a bad file from a missing one.
var ErrInvalid = errors.New("invalid scene")

// Shapes a mesh may use.
const (
	ShapeBox    = "box"
	ShapeSphere = "sphere"
)

// Camera places the perspective camera. Fovy is the vertical field of view in degrees.
type Camera struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Fovy     float32    `yaml:"fovy,omitempty"`
}

// DefaultAmbient is the ambient level used when the file gives none.
const DefaultAmbient = 0.5

// Light is one ambient term plus one point light.
// Ambient is a pointer so "ambient: 0" (point light only) is distinguishable from an omitted field.
type Light struct {
	Ambient *float32   `yaml:"ambient,omitempty"`
	Point   [3]float32 `yaml:"point"`
}

// AmbientLevel returns the ambient term, or DefaultAmbient when unset.
func (l Light) AmbientLevel() float32 {
	if l.Ambient == nil {
		return DefaultAmbient
	}
	return *l.Ambient
}

// Mesh describes one interactive object. Zero-valued fields are filled by defaults on Load.
// Step is a pointer so "step: 0" (no spin) is distinguishable from an omitted field.
type Mesh struct {
	Name         string     `yaml:"name"`
	Shape        string     `yaml:"shape,omitempty"`
	Position     [3]float32 `yaml:"position"`
	Size         [3]float32 `yaml:"size,omitempty"`
	IdleColor    string     `yaml:"color,omitempty"`
	HoverColor   string     `yaml:"hover_color,omitempty"`
	BaseScale    float32    `yaml:"scale,omitempty"`
	ClickedScale float32    `yaml:"clicked_scale,omitempty"`
	Step         *float32   `yaml:"step,omitempty"`
}

// Scene is the whole scene file.
type Scene struct {
	Camera Camera `yaml:"camera"`
	Light  Light  `yaml:"light"`
	Meshes []Mesh `yaml:"meshes"`
}

// Style builds the controller style for m. defaultStep is used when the file gives no step.
// Call after defaults are applied.
func (m Mesh) Style(defaultStep float32) mesh.Style {
	s := mesh.Style{
		Step:         defaultStep,
		IdleColor:    m.IdleColor,
		HoverColor:   m.HoverColor,
		BaseScale:    m.BaseScale,
		ClickedScale: m.ClickedScale,
	}
	if m.Step != nil {
		s.Step = *m.Step
	}
	return s
}

// Default returns the two-box scene: a box either side of the origin, camera five units back.
func Default() Scene {
	s := Scene{
		Meshes: []Mesh{
			{Name: "left", Position: [3]float32{-1.2, 0, 0}},
			{Name: "right", Position: [3]float32{1.2, 0, 0}},
		},
	}
	applyDefaults(&s)
	return s
}

// Load reads a YAML scene from path, fills defaults and validates it.
// A missing file is not an error: Default() is returned.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Scene{}, fmt.Errorf("scenedef: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scene, fills defaults and validates it.
func Parse(data []byte) (Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("scenedef: parse: %w", err)
	}
	applyDefaults(&s)
	if err := Validate(s); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Save writes s as YAML to path, creating parent directories.
func Save(path string, s Scene) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("scenedef: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("scenedef: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func applyDefaults(s *Scene) {
	if s.Camera.Position == ([3]float32{}) {
		s.Camera.Position = [3]float32{0, 0, 5}
	}
	if s.Camera.Fovy == 0 {
		s.Camera.Fovy = 75
	}
	if s.Light.Ambient == nil {
		a := float32(DefaultAmbient)
		s.Light.Ambient = &a
	}
	if s.Light.Point == ([3]float32{}) {
		s.Light.Point = [3]float32{10, 10, 10}
	}
	for i := range s.Meshes {
		m := &s.Meshes[i]
		if m.Name == "" {
			m.Name = fmt.Sprintf("mesh%d", i+1)
		}
		if m.Shape == "" {
			m.Shape = ShapeBox
		}
		if m.Size == ([3]float32{}) {
			m.Size = [3]float32{1, 1, 1}
		}
		if m.IdleColor == "" {
			m.IdleColor = mesh.DefaultIdleColor
		}
		if m.HoverColor == "" {
			m.HoverColor = mesh.DefaultHoverColor
		}
		if m.BaseScale == 0 {
			m.BaseScale = mesh.DefaultBaseScale
		}
		if m.ClickedScale == 0 {
			m.ClickedScale = mesh.DefaultClickedScale
		}
	}
}

// Validate checks a scene with defaults applied. Errors wrap ErrInvalid.
func Validate(s Scene) error {
	if s.Camera.Fovy <= 0 || s.Camera.Fovy >= 180 {
		return fmt.Errorf("%w: camera fovy %v out of range", ErrInvalid, s.Camera.Fovy)
	}
	if s.Camera.Position == s.Camera.Target {
		return fmt.Errorf("%w: camera position equals target", ErrInvalid)
	}
	// The camera keeps +Y up, so it cannot look straight up or down.
	forward := mgl32.Vec3(s.Camera.Target).Sub(mgl32.Vec3(s.Camera.Position)).Normalize()
	if forward.Cross(mgl32.Vec3{0, 1, 0}).Len() < 1e-4 {
		return fmt.Errorf("%w: camera looks straight along the vertical axis", ErrInvalid)
	}
	if a := s.Light.AmbientLevel(); a < 0 || a > 1 {
		return fmt.Errorf("%w: light ambient %v out of [0,1]", ErrInvalid, a)
	}
	seen := make(map[string]bool, len(s.Meshes))
	for _, m := range s.Meshes {
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate mesh name %q", ErrInvalid, m.Name)
		}
		seen[m.Name] = true
		switch m.Shape {
		case ShapeBox, ShapeSphere:
		default:
			return fmt.Errorf("%w: mesh %q: unknown shape %q", ErrInvalid, m.Name, m.Shape)
		}
		for axis, v := range m.Size {
			if v <= 0 {
				return fmt.Errorf("%w: mesh %q: size[%d] must be positive", ErrInvalid, m.Name, axis)
			}
		}
		if m.Step != nil && *m.Step < 0 {
			return fmt.Errorf("%w: mesh %q: step must not be negative", ErrInvalid, m.Name)
		}
		if m.BaseScale <= 0 || m.ClickedScale <= 0 {
			return fmt.Errorf("%w: mesh %q: scales must be positive", ErrInvalid, m.Name)
		}
		for _, c := range []string{m.IdleColor, m.HoverColor} {
			if _, ok := palette.Parse(c); !ok {
				return fmt.Errorf("%w: mesh %q: unknown color %q", ErrInvalid, m.Name, c)
			}
		}
	}
	return nil
}
