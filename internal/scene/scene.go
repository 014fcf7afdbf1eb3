package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"cube-scene/internal/mesh"
	"cube-scene/internal/picking"
	"cube-scene/internal/scenedef"
)

// ErrNoMesh is returned when a mesh name does not match any instance.
var ErrNoMesh = errors.New("no such mesh")

// Instance is one placed mesh and the controller that owns its rotation and interaction state.
type Instance struct {
	Name     string
	Shape    string
	Position mgl32.Vec3
	Size     mgl32.Vec3
	Ctrl     *mesh.Controller

	style mesh.Style
}

// Model returns the instance's current model matrix.
func (in *Instance) Model() mgl32.Mat4 {
	return in.Ctrl.Model(in.Position, in.Size)
}

// hit returns the ray parameter where r first meets the instance.
func (in *Instance) hit(r picking.Ray) (float32, bool) {
	switch in.Shape {
	case scenedef.ShapeSphere:
		return picking.IntersectModelSphere(r, in.Model(), 0.5)
	default:
		return picking.IntersectBox(r, in.Model(), mgl32.Vec3{0.5, 0.5, 0.5})
	}
}

// Input is what the host polled for this frame.
// HasPointer is false when the cursor is outside the window or captured by an overlay.
type Input struct {
	Ray        picking.Ray
	HasPointer bool
	Pressed    bool
}

// Scene owns the camera, the light and every mounted mesh.
// Update and the accessors must be called from the render thread.
type Scene struct {
	Camera  Camera
	Ambient float32
	Light   mgl32.Vec3

	GridVisible bool

	// Optional event hooks, called synchronously from Update.
	OnEnter func(*Instance)
	OnLeave func(*Instance)
	OnClick func(*Instance)

	instances []*Instance
	hovered   *Instance
	paused    bool
	frames    uint64
}

// New mounts one controller per mesh in def. defaultStep applies to meshes that give no step.
func New(def scenedef.Scene, defaultStep float32) *Scene {
	s := &Scene{
		Camera:  NewCamera(def.Camera),
		Ambient: def.Light.AmbientLevel(),
		Light:   mgl32.Vec3(def.Light.Point),
	}
	for _, m := range def.Meshes {
		style := m.Style(defaultStep)
		s.instances = append(s.instances, &Instance{
			Name:     m.Name,
			Shape:    m.Shape,
			Position: mgl32.Vec3(m.Position),
			Size:     mgl32.Vec3(m.Size),
			Ctrl:     mesh.New(style),
			style:    style,
		})
	}
	return s
}

// Update routes pointer events and then ticks every controller once.
// Only the nearest mesh under the pointer receives enter and click; the previously hovered mesh
// receives leave when the nearest hit changes.
func (s *Scene) Update(in Input) {
	var target *Instance
	if in.HasPointer {
		target = s.pick(in.Ray)
	}
	if target != s.hovered {
		if prev := s.hovered; prev != nil {
			prev.Ctrl.PointerLeave()
			if s.OnLeave != nil {
				s.OnLeave(prev)
			}
		}
		s.hovered = target
		if target != nil {
			target.Ctrl.PointerEnter()
			if s.OnEnter != nil {
				s.OnEnter(target)
			}
		}
	}
	if in.Pressed && s.hovered != nil {
		s.click(s.hovered)
	}
	if s.paused {
		return
	}
	for _, inst := range s.instances {
		inst.Ctrl.Tick()
	}
	s.frames++
}

// pick returns the nearest instance hit by r, or nil.
func (s *Scene) pick(r picking.Ray) *Instance {
	var best *Instance
	var bestT float32
	for _, inst := range s.instances {
		t, ok := inst.hit(r)
		if !ok {
			continue
		}
		if best == nil || t < bestT {
			best, bestT = inst, t
		}
	}
	return best
}

func (s *Scene) click(inst *Instance) {
	inst.Ctrl.Click()
	if s.OnClick != nil {
		s.OnClick(inst)
	}
}

// Click clicks the named mesh as if the pointer had pressed it.
func (s *Scene) Click(name string) error {
	inst, ok := s.Find(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoMesh, name)
	}
	s.click(inst)
	return nil
}

// Find returns the instance with the given name.
func (s *Scene) Find(name string) (*Instance, bool) {
	for _, inst := range s.instances {
		if inst.Name == name {
			return inst, true
		}
	}
	return nil, false
}

// Hovered returns the mesh under the pointer, if any.
func (s *Scene) Hovered() (*Instance, bool) {
	return s.hovered, s.hovered != nil
}

// Instances returns the mounted meshes in definition order. The slice must not be modified.
func (s *Scene) Instances() []*Instance {
	return s.instances
}

// Frames returns the number of ticks since mount or the last Reset.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// SetPaused stops or resumes ticking. Pointer events are still routed while paused.
func (s *Scene) SetPaused(paused bool) {
	s.paused = paused
}

// Paused reports whether ticking is stopped.
func (s *Scene) Paused() bool {
	return s.paused
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetStep changes the per-tick rotation of every mesh, now and after Reset.
func (s *Scene) SetStep(step float32) {
	for _, inst := range s.instances {
		inst.style.Step = step
		inst.Ctrl.SetStep(step)
	}
}

// Reset unmounts every controller and mounts a fresh one, clearing rotation and both flags.
// The mesh hovered at the time of the call receives OnLeave first.
func (s *Scene) Reset() {
	if prev := s.hovered; prev != nil && s.OnLeave != nil {
		s.OnLeave(prev)
	}
	for _, inst := range s.instances {
		inst.Ctrl.Unmount()
		inst.Ctrl = mesh.New(inst.style)
	}
	s.hovered = nil
	s.frames = 0
}

// Close unmounts every controller. The scene must not be used afterwards.
func (s *Scene) Close() {
	for _, inst := range s.instances {
		inst.Ctrl.Unmount()
	}
	s.hovered = nil
}
