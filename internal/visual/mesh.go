package visual

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the CPU-side vertex layout shared by all built-in meshes.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is CPU-side geometry awaiting upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// MeshUploader is the renderer boundary for geometry. Implementations live
// outside this core.
type MeshUploader interface {
	UploadMesh(m Mesh) (MeshHandle, error)
}

// TextureUploader is the renderer boundary for texture data.
type TextureUploader interface {
	UploadTextureRGBA8(pixels []uint8, width, height uint32) (TextureHandle, error)
}

// Assets is the CPU mesh table plus the CPU→GPU handle cache. Handles start
// at 1 so the zero CpuMeshHandle stays "not assigned".
type Assets struct {
	meshes []Mesh
	gpu    map[CpuMeshHandle]MeshHandle
}

func NewAssets() *Assets {
	return &Assets{
		gpu: make(map[CpuMeshHandle]MeshHandle),
	}
}

// RegisterMesh stores CPU geometry and returns its handle.
func (a *Assets) RegisterMesh(m Mesh) CpuMeshHandle {
	a.meshes = append(a.meshes, m)
	return CpuMeshHandle(len(a.meshes))
}

// CPUMesh returns the stored geometry for h, or false for unknown handles.
func (a *Assets) CPUMesh(h CpuMeshHandle) (Mesh, bool) {
	if h == 0 || int(h) > len(a.meshes) {
		return Mesh{}, false
	}
	return a.meshes[h-1], true
}

// GPUMeshHandle resolves (uploading on first use) the GPU handle for a CPU
// mesh. Results are cached per CPU handle.
func (a *Assets) GPUMeshHandle(uploader MeshUploader, h CpuMeshHandle) (MeshHandle, error) {
	if gh, ok := a.gpu[h]; ok {
		return gh, nil
	}
	m, ok := a.CPUMesh(h)
	if !ok {
		return 0, fmt.Errorf("unknown cpu mesh handle %d", h)
	}
	if uploader == nil {
		return 0, fmt.Errorf("no mesh uploader attached")
	}
	gh, err := uploader.UploadMesh(m)
	if err != nil {
		return 0, fmt.Errorf("upload mesh %d: %w", h, err)
	}
	a.gpu[h] = gh
	return gh, nil
}

// CloneMeshWithUVs registers a copy of base with per-vertex UV overrides.
// Missing override entries fall back to (0,0).
func (a *Assets) CloneMeshWithUVs(base CpuMeshHandle, uvs []mgl32.Vec2) (CpuMeshHandle, bool) {
	m, ok := a.CPUMesh(base)
	if !ok {
		return 0, false
	}
	clone := Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
	for i := range clone.Vertices {
		if i < len(uvs) {
			clone.Vertices[i].UV = uvs[i]
		} else {
			clone.Vertices[i].UV = mgl32.Vec2{}
		}
	}
	return a.RegisterMesh(clone), true
}

// ── Built-in primitives ──────────────────────────────────────────

// TriangleMesh is a unit 2D triangle in the z=0 plane.
func TriangleMesh() Mesh {
	n := mgl32.Vec3{0, 0, 1}
	return Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{0, -0.5, 0}, Normal: n, UV: mgl32.Vec2{0.5, 0}},
			{Position: mgl32.Vec3{0.5, 0.5, 0}, Normal: n, UV: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-0.5, 0.5, 0}, Normal: n, UV: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2},
	}
}

// QuadMesh is a unit 2D quad in the z=0 plane.
func QuadMesh() Mesh {
	n := mgl32.Vec3{0, 0, 1}
	return Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-0.5, -0.5, 0}, Normal: n, UV: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{0.5, -0.5, 0}, Normal: n, UV: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{0.5, 0.5, 0}, Normal: n, UV: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-0.5, 0.5, 0}, Normal: n, UV: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// CubeMesh is a unit cube centered at the origin, one quad per face.
func CubeMesh() Mesh {
	type face struct {
		normal mgl32.Vec3
		a, b   mgl32.Vec3 // in-plane basis
	}
	faces := []face{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	var m Mesh
	uv := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, f := range faces {
		center := f.normal.Mul(0.5)
		base := uint32(len(m.Vertices))
		corners := []mgl32.Vec3{
			center.Sub(f.a.Mul(0.5)).Sub(f.b.Mul(0.5)),
			center.Add(f.a.Mul(0.5)).Sub(f.b.Mul(0.5)),
			center.Add(f.a.Mul(0.5)).Add(f.b.Mul(0.5)),
			center.Sub(f.a.Mul(0.5)).Add(f.b.Mul(0.5)),
		}
		for i, p := range corners {
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: f.normal, UV: uv[i]})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// TetrahedronMesh is a regular tetrahedron inscribed in the unit cube's corners.
func TetrahedronMesh() Mesh {
	p := []mgl32.Vec3{
		{0.5, 0.5, 0.5},
		{0.5, -0.5, -0.5},
		{-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5},
	}
	tris := [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}

	var m Mesh
	uv := []mgl32.Vec2{{0, 0}, {1, 0}, {0.5, 1}}
	for _, t := range tris {
		a, b, c := p[t[0]], p[t[1]], p[t[2]]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		base := uint32(len(m.Vertices))
		for i, v := range []mgl32.Vec3{a, b, c} {
			m.Vertices = append(m.Vertices, Vertex{Position: v, Normal: n, UV: uv[i]})
		}
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	return m
}
