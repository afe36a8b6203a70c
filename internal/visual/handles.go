package visual

// Opaque, copyable handles into renderer- or engine-owned tables. None of
// them carries ownership; the zero value means "not assigned".

// CpuMeshHandle indexes the CPU-side mesh table (Assets).
type CpuMeshHandle uint32

// MeshHandle references a renderer-owned GPU mesh.
type MeshHandle uint32

// MaterialHandle references a renderer-owned material/pipeline.
type MaterialHandle uint32

// InstanceHandle references one draw instance inside World.
type InstanceHandle uint32

// TextureHandle references a renderer-owned GPU texture.
type TextureHandle uint32

// Built-in materials.
const (
	MaterialToonMesh MaterialHandle = 1
	MaterialUnlit    MaterialHandle = 2
)

// Renderable references CPU-side resources for one drawable: a mesh in the
// asset table and a material.
type Renderable struct {
	Mesh     CpuMeshHandle
	Material MaterialHandle
}

// GpuRenderable is the GPU-facing counterpart, produced once the mesh has
// been uploaded.
type GpuRenderable struct {
	Mesh     MeshHandle
	Material MaterialHandle
}
