package component

import (
	"github.com/catengine/engine/internal/core/ecs"
)

// LitVoxel carries per-instance voxel shading metadata. A CPU pass fills in
// shade levels for many voxels at once; the renderer consumes them from a
// per-instance buffer.
type LitVoxel struct {
	Base

	// ShadeLevel is the quantized shade, 0 = fully lit.
	ShadeLevel uint8

	// Emissive voxels glow regardless of shading.
	Emissive bool
}

func NewLitVoxel() *LitVoxel {
	return &LitVoxel{}
}

func (*LitVoxel) Name() string { return "lit_voxel" }

func (lv *LitVoxel) Encode() map[string]any {
	return map[string]any{
		"shade_level": float64(lv.ShadeLevel),
		"emissive":    lv.Emissive,
	}
}

func (lv *LitVoxel) Decode(data map[string]any) error {
	if n, ok := numField(data, "shade_level"); ok {
		lv.ShadeLevel = uint8(n)
	}
	if b, ok := data["emissive"].(bool); ok {
		lv.Emissive = b
	}
	return nil
}

var _ ecs.Component = (*LitVoxel)(nil)
