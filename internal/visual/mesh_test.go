package visual

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type countingUploader struct {
	uploads int
	next    MeshHandle
}

func (u *countingUploader) UploadMesh(Mesh) (MeshHandle, error) {
	u.uploads++
	u.next++
	return u.next, nil
}

func TestAssetsRegisterAndLookup(t *testing.T) {
	a := NewAssets()
	h := a.RegisterMesh(TriangleMesh())
	if h == 0 {
		t.Fatal("handle must start at 1")
	}
	m, ok := a.CPUMesh(h)
	if !ok || len(m.Vertices) != 3 {
		t.Fatalf("CPUMesh = %v vertices, %v", len(m.Vertices), ok)
	}
	if _, ok := a.CPUMesh(0); ok {
		t.Fatal("zero handle resolved")
	}
	if _, ok := a.CPUMesh(h + 1); ok {
		t.Fatal("out-of-range handle resolved")
	}
}

func TestGPUMeshHandleCachesUpload(t *testing.T) {
	a := NewAssets()
	u := &countingUploader{}
	h := a.RegisterMesh(QuadMesh())

	first, err := a.GPUMeshHandle(u, h)
	if err != nil {
		t.Fatalf("GPUMeshHandle: %v", err)
	}
	second, err := a.GPUMeshHandle(u, h)
	if err != nil {
		t.Fatalf("GPUMeshHandle (cached): %v", err)
	}
	if first != second {
		t.Fatalf("cached handle differs: %d vs %d", first, second)
	}
	if u.uploads != 1 {
		t.Fatalf("uploads = %d, want 1", u.uploads)
	}

	if _, err := a.GPUMeshHandle(u, 99); err == nil {
		t.Fatal("unknown cpu handle must error")
	}
	// Already cached; nil uploader is fine for cache hits.
	if _, err := a.GPUMeshHandle(nil, h); err != nil {
		t.Fatalf("cache hit with nil uploader: %v", err)
	}
}

func TestCloneMeshWithUVs(t *testing.T) {
	a := NewAssets()
	base := a.RegisterMesh(QuadMesh())
	uvs := []mgl32.Vec2{{0, 0}, {0.5, 0}, {0.5, 0.5}}

	clone, ok := a.CloneMeshWithUVs(base, uvs)
	if !ok {
		t.Fatal("CloneMeshWithUVs = false")
	}
	if clone == base {
		t.Fatal("clone reused the base handle")
	}

	m, _ := a.CPUMesh(clone)
	if m.Vertices[1].UV != (mgl32.Vec2{0.5, 0}) {
		t.Fatalf("override UV = %v", m.Vertices[1].UV)
	}
	// Fewer overrides than vertices zeroes the tail.
	if m.Vertices[3].UV != (mgl32.Vec2{}) {
		t.Fatalf("tail UV = %v, want zero", m.Vertices[3].UV)
	}
	// The base mesh keeps its original UVs.
	orig, _ := a.CPUMesh(base)
	if orig.Vertices[1].UV != (mgl32.Vec2{1, 0}) {
		t.Fatalf("base UV mutated: %v", orig.Vertices[1].UV)
	}

	if _, ok := a.CloneMeshWithUVs(99, uvs); ok {
		t.Fatal("clone of unknown handle succeeded")
	}
}

func TestBuiltinMeshesAreIndexed(t *testing.T) {
	for name, m := range map[string]Mesh{
		"triangle":    TriangleMesh(),
		"quad":        QuadMesh(),
		"cube":        CubeMesh(),
		"tetrahedron": TetrahedronMesh(),
	} {
		if len(m.Vertices) == 0 || len(m.Indices) == 0 {
			t.Fatalf("%s: empty mesh", name)
		}
		if len(m.Indices)%3 != 0 {
			t.Fatalf("%s: index count %d not triangles", name, len(m.Indices))
		}
		for _, i := range m.Indices {
			if int(i) >= len(m.Vertices) {
				t.Fatalf("%s: index %d out of range", name, i)
			}
		}
	}
}
