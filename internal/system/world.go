package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/catengine/engine/internal/core/ecs"
	coresys "github.com/catengine/engine/internal/core/system"
	"github.com/catengine/engine/internal/visual"
)

// World bundles the individual systems behind the command dispatch surface.
// Every flushed command lands here and is routed to the system that owns its
// registration table.
type World struct {
	log *zap.Logger

	Cameras     *CameraSystem
	Transforms  *TransformSystem
	Renderables *RenderableSystem
	Lights      *LightSystem
	Textures    *TextureSystem
	Inputs      *InputSystem
	Cursors     *CursorSystem
}

func NewWorld(
	cameras *CameraSystem,
	transforms *TransformSystem,
	renderables *RenderableSystem,
	lights *LightSystem,
	textures *TextureSystem,
	inputs *InputSystem,
	cursors *CursorSystem,
	log *zap.Logger,
) *World {
	return &World{
		log:         log,
		Cameras:     cameras,
		Transforms:  transforms,
		Renderables: renderables,
		Lights:      lights,
		Textures:    textures,
		Inputs:      inputs,
		Cursors:     cursors,
	}
}

func (d *World) RegisterRenderable(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Renderables.Register(w, v, id)
}

func (d *World) TransformChanged(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Transforms.Changed(w, v, id)
}

func (d *World) UpdateTransform(w *ecs.World, v *visual.World, id ecs.ComponentId, t visual.Transform) {
	d.Transforms.Apply(w, v, id, t)
}

func (d *World) RemoveTransform(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Transforms.Remove(w, v, id)
}

func (d *World) RegisterCamera3D(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Cameras.RegisterCamera3D(w, v, id)
}

func (d *World) RegisterCamera2D(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Cameras.RegisterCamera2D(w, v, id)
}

func (d *World) MakeActiveCamera(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Cameras.MakeActiveCamera(w, v, id)
}

func (d *World) RegisterInput(id ecs.ComponentId) {
	d.Inputs.Register(id)
}

func (d *World) RegisterUV(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Renderables.RegisterUV(w, v, id)
}

func (d *World) RegisterLight(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Lights.Register(w, v, id)
}

func (d *World) RegisterColor(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Renderables.RegisterColor(w, v, id)
}

func (d *World) RegisterTexture(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	d.Textures.Register(w, v, id)
}

func (d *World) RegisterCursor(id ecs.ComponentId) {
	d.Cursors.Register(id)
}

var _ ecs.Dispatcher = (*World)(nil)

// ProcessCommands drains the queue against this dispatcher. Out-of-band
// callers (tests, scene loading) use it; the frame loop goes through
// FlushSystem.
func (d *World) ProcessCommands(w *ecs.World, q *ecs.CommandQueue, v *visual.World) {
	q.Flush(w, d, v)
}

// FlushSystem drains the command queue into the systems once per frame.
// Phase 2 (Flush).
type FlushSystem struct {
	world      *ecs.World
	queue      *ecs.CommandQueue
	visuals    *visual.World
	dispatcher ecs.Dispatcher
}

func NewFlushSystem(world *ecs.World, queue *ecs.CommandQueue, visuals *visual.World, dispatcher ecs.Dispatcher) *FlushSystem {
	return &FlushSystem{
		world:      world,
		queue:      queue,
		visuals:    visuals,
		dispatcher: dispatcher,
	}
}

func (s *FlushSystem) Phase() coresys.Phase { return coresys.PhaseFlush }

func (s *FlushSystem) Update(time.Duration) {
	s.queue.Flush(s.world, s.dispatcher, s.visuals)
}

// DrawCacheSystem rebuilds the batched draw order after all visual writes
// for the frame have landed. Phase 3 (Output).
type DrawCacheSystem struct {
	visuals *visual.World
}

func NewDrawCacheSystem(visuals *visual.World) *DrawCacheSystem {
	return &DrawCacheSystem{visuals: visuals}
}

func (s *DrawCacheSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *DrawCacheSystem) Update(time.Duration) {
	s.visuals.PrepareDrawCache()
}
