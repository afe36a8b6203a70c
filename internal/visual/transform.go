package visual

import "github.com/go-gl/mathgl/mgl32"

// Transform is the translation/rotation/scale triple plus its cached model
// matrix. The matrix is column-major with translation in the last column,
// matching the render pipeline's packing.
//
// Callers mutate the fields and then call RecomputeModel; Model is never
// derived lazily.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
	Model       mgl32.Mat4
}

// NewTransform returns the identity transform with the model matrix already
// computed.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
		Model:    mgl32.Ident4(),
	}
}

// RecomputeModel rebuilds the cached model matrix as T * R * S.
func (t *Transform) RecomputeModel() {
	tr := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	sc := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	t.Model = tr.Mul4(t.Rotation.Mat4()).Mul4(sc)
}

// ModelTranslation extracts the translation column of the cached model matrix.
func (t Transform) ModelTranslation() mgl32.Vec3 {
	return mgl32.Vec3{t.Model[12], t.Model[13], t.Model[14]}
}
