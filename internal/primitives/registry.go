package primitives

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape names understood by Draw.
const (
	Box    = "box"
	Sphere = "sphere"
)

const (
	defaultSphereRings  = 24
	defaultSphereSlices = 24
)

// cached holds the mesh and lit material for one shape. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps shape names to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[string]cached
	shader   rl.Shader
	loaded   bool
	viewPos  [3]float32
	lightPos [3]float32
	ambient  float32
}

// NewRegistry returns an empty registry with a light above and in front of the origin.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightPos: [3]float32{10, 10, 10},
		ambient:  0.5,
	}
}

// SetView sets the camera position, point light position and ambient level (0..1) for this frame.
// Call once per frame before drawing.
func (r *Registry) SetView(viewPos, lightPos [3]float32, ambient float32) {
	r.viewPos = viewPos
	r.lightPos = lightPos
	r.ambient = ambient
}

// ensureShader loads the shared lit shader once. On failure materials keep raylib's default shader.
func (r *Registry) ensureShader() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.shader = rl.LoadShaderFromMemory(litVS, litFS)
}

func (r *Registry) ensure(shape string) (cached, bool) {
	if c, ok := r.cache[shape]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch shape {
	case Box:
		mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		// Radius 0.5 so a unit size gives diameter 1, matching the box.
		mesh = rl.GenMeshSphere(0.5, defaultSphereRings, defaultSphereSlices)
	default:
		return cached{}, false
	}
	r.ensureShader()
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	r.cache[shape] = c
	return c, true
}

// Draw draws one instance of shape with the given model matrix and tint.
// Must be called between BeginMode3D and EndMode3D. Unknown shapes are skipped.
func (r *Registry) Draw(shape string, model mgl32.Mat4, tint rl.Color) {
	c, ok := r.ensure(shape)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, ToMatrix(model))
}

// DrawWires draws the shape's outline with the same model matrix; used to highlight the hovered mesh.
func (r *Registry) DrawWires(shape string, model mgl32.Mat4, color rl.Color) {
	if shape != Box {
		return
	}
	corners := BoxCorners(model)
	for _, e := range boxEdges {
		a, b := corners[e[0]], corners[e[1]]
		rl.DrawLine3D(rl.NewVector3(a[0], a[1], a[2]), rl.NewVector3(b[0], b[1], b[2]), color)
	}
}

// Unload frees all GPU resources. Call before closing the window.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}

// setUniforms sets viewPos, lightPos and ambient on the lit shader (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightPos := [3]float32{r.lightPos[0], r.lightPos[1], r.lightPos[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.ambient}, rl.ShaderUniformFloat)
	}
}
