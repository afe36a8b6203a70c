package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
	"github.com/catengine/engine/internal/visual"
)

type cameraKind int

const (
	cameraKind3D cameraKind = iota
	cameraKind2D
)

// cameraEntry is the stored state for one registered camera. The matrices
// are captured at registration and on sibling transform changes, so
// re-activating a camera restores exactly what it last saw.
type cameraEntry struct {
	handle    component.CameraHandle
	kind      cameraKind
	component ecs.ComponentId

	view mgl32.Mat4
	proj mgl32.Mat4

	translation mgl32.Vec2
}

// CameraSystem owns the camera registration table and decides which camera's
// matrices the visual cache sees.
type CameraSystem struct {
	log    *zap.Logger
	aspect float32

	nextHandle uint32
	cameras    []cameraEntry
	active     component.CameraHandle
}

func NewCameraSystem(aspect float32, log *zap.Logger) *CameraSystem {
	return &CameraSystem{
		log:    log,
		aspect: aspect,
	}
}

// allocHandle hands out handles from a wrapping counter. Zero is skipped so
// the zero CameraHandle always means "unassigned".
func (s *CameraSystem) allocHandle() component.CameraHandle {
	s.nextHandle++
	if s.nextHandle == 0 {
		s.nextHandle = 1
	}
	return component.CameraHandle(s.nextHandle)
}

// RegisterCamera3D stores a perspective camera. The newest registration
// becomes active immediately.
func (s *CameraSystem) RegisterCamera3D(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	cam, ok := ecs.Get[*component.Camera3D](w, id)
	if !ok {
		s.log.Warn("register-camera3d on non-camera component", zap.Uint64("id", uint64(id)))
		return
	}

	entry := cameraEntry{
		handle:    s.allocHandle(),
		kind:      cameraKind3D,
		component: id,
		view:      s.siblingView(w, id),
		proj:      perspectiveRHZO(mgl32.DegToRad(cam.FovDeg), s.aspect, cam.ZNear, cam.ZFar),
	}
	cam.Handle = entry.handle
	s.cameras = append(s.cameras, entry)
	s.activate(v, entry.handle)
}

// RegisterCamera2D stores an overlay camera, deriving its translation from a
// sibling Transform. The newest registration becomes active immediately.
func (s *CameraSystem) RegisterCamera2D(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	cam, ok := ecs.Get[*component.Camera2D](w, id)
	if !ok {
		s.log.Warn("register-camera2d on non-camera component", zap.Uint64("id", uint64(id)))
		return
	}

	entry := cameraEntry{
		handle:    s.allocHandle(),
		kind:      cameraKind2D,
		component: id,
	}
	if _, tr, ok := siblingTransform(w, id); ok {
		pos := tr.Local.ModelTranslation()
		entry.translation = mgl32.Vec2{pos[0], pos[1]}
	}
	cam.Handle = entry.handle
	s.cameras = append(s.cameras, entry)
	s.activate(v, entry.handle)
}

// MakeActiveCamera switches the visual cache to a previously registered
// camera. No-op when the component is unknown or its camera already active.
func (s *CameraSystem) MakeActiveCamera(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	entry := s.entryByComponent(id)
	if entry == nil {
		s.log.Debug("make-active-camera for unregistered component", zap.Uint64("id", uint64(id)))
		return
	}
	if entry.handle == s.active {
		return
	}
	s.activate(v, entry.handle)
}

// Active returns the handle of the active camera, zero when none.
func (s *CameraSystem) Active() component.CameraHandle { return s.active }

// TransformChanged re-syncs the active camera when a transform it depends on
// moved. A 3D camera follows its sibling Transform; a 2D camera follows any
// Transform whose ancestor chain passes through the camera component. Changes
// to transforms unrelated to the active camera are ignored.
func (s *CameraSystem) TransformChanged(w *ecs.World, v *visual.World, transformId ecs.ComponentId, t visual.Transform) {
	entry := s.entryByHandle(s.active)
	if entry == nil {
		return
	}

	switch entry.kind {
	case cameraKind3D:
		if w.ParentOf(entry.component).IsZero() || w.ParentOf(entry.component) != w.ParentOf(transformId) {
			return
		}
		entry.view = t.Model.Inv()
		v.SetCamera(entry.view, entry.proj)
	case cameraKind2D:
		if !w.IsAncestorOf(entry.component, transformId) {
			return
		}
		pos := t.ModelTranslation()
		entry.translation = mgl32.Vec2{pos[0], pos[1]}
		v.SetCamera2D(entry.translation)
	}
}

func (s *CameraSystem) activate(v *visual.World, h component.CameraHandle) {
	entry := s.entryByHandle(h)
	if entry == nil {
		return
	}
	s.active = h
	switch entry.kind {
	case cameraKind3D:
		v.SetCamera(entry.view, entry.proj)
	case cameraKind2D:
		v.SetCamera2D(entry.translation)
	}
}

func (s *CameraSystem) entryByHandle(h component.CameraHandle) *cameraEntry {
	if h == 0 {
		return nil
	}
	for i := range s.cameras {
		if s.cameras[i].handle == h {
			return &s.cameras[i]
		}
	}
	return nil
}

func (s *CameraSystem) entryByComponent(id ecs.ComponentId) *cameraEntry {
	for i := range s.cameras {
		if s.cameras[i].component == id {
			return &s.cameras[i]
		}
	}
	return nil
}

// siblingView derives the view matrix from the camera's sibling Transform.
// Identity when no sibling Transform exists yet.
func (s *CameraSystem) siblingView(w *ecs.World, id ecs.ComponentId) mgl32.Mat4 {
	if _, tr, ok := siblingTransform(w, id); ok {
		return tr.Local.Model.Inv()
	}
	return mgl32.Ident4()
}

func siblingTransform(w *ecs.World, id ecs.ComponentId) (ecs.ComponentId, *component.Transform, bool) {
	parent := w.ParentOf(id)
	if parent.IsZero() {
		return 0, nil, false
	}
	return ecs.FindChild[*component.Transform](w, parent)
}

// perspectiveRHZO builds a right-handed perspective projection mapping depth
// to [0,1], column-major.
func perspectiveRHZO(fovyRad, aspect, near, far float32) mgl32.Mat4 {
	f := float32(1.0 / math.Tan(float64(fovyRad)/2))
	r := far / (near - far)

	var m mgl32.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = r
	m[11] = -1
	m[14] = r * near
	return m
}
