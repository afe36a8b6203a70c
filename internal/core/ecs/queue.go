package ecs

import "github.com/catengine/engine/internal/visual"

// CommandKind tags the deferred intent a Command carries.
type CommandKind int

const (
	CommandRegisterRenderable CommandKind = iota
	CommandRegisterTransform
	CommandUpdateTransform
	CommandRemoveTransform
	CommandRegisterCamera3D
	CommandRegisterCamera2D
	CommandMakeActiveCamera
	CommandRegisterInput
	CommandRegisterUV
	CommandRegisterLight
	CommandRegisterColor
	CommandRegisterTexture
	CommandRegisterCursor
	CommandRemoveRenderable
	CommandRemoveCamera
)

// Command is one deferred structural/visual intent. It carries everything a
// handler needs so the intent can be applied without re-deriving state.
type Command struct {
	Kind      CommandKind
	Component ComponentId

	// Transform payload for CommandUpdateTransform.
	Transform visual.Transform
}

// Dispatcher receives flushed commands. system.World implements it; declaring
// the interface here keeps the command protocol free of a dependency on the
// concrete systems.
//
// Handlers for kinds missing from this interface do not exist yet by policy:
// such commands are accepted and dropped, not failed.
type Dispatcher interface {
	RegisterRenderable(w *World, v *visual.World, id ComponentId)
	TransformChanged(w *World, v *visual.World, id ComponentId)
	UpdateTransform(w *World, v *visual.World, id ComponentId, t visual.Transform)
	RemoveTransform(w *World, v *visual.World, id ComponentId)
	RegisterCamera3D(w *World, v *visual.World, id ComponentId)
	RegisterCamera2D(w *World, v *visual.World, id ComponentId)
	MakeActiveCamera(w *World, v *visual.World, id ComponentId)
	RegisterInput(id ComponentId)
	RegisterUV(w *World, v *visual.World, id ComponentId)
	RegisterLight(w *World, v *visual.World, id ComponentId)
	RegisterColor(w *World, v *visual.World, id ComponentId)
	RegisterTexture(w *World, v *visual.World, id ComponentId)
	RegisterCursor(id ComponentId)
}

// CommandQueue is an ordered buffer of commands: append-only between flushes,
// drained exactly once per flush, FIFO. Components enqueue here during
// Init/update instead of mutating World or the visual cache inline; the
// queue is what keeps reads and writes from aliasing during tree walks.
type CommandQueue struct {
	commands []Command
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int { return len(q.commands) }

func (q *CommandQueue) push(c Command) {
	q.commands = append(q.commands, c)
}

func (q *CommandQueue) QueueRegisterRenderable(id ComponentId) {
	q.push(Command{Kind: CommandRegisterRenderable, Component: id})
}

func (q *CommandQueue) QueueRegisterTransform(id ComponentId) {
	q.push(Command{Kind: CommandRegisterTransform, Component: id})
}

func (q *CommandQueue) QueueUpdateTransform(id ComponentId, t visual.Transform) {
	q.push(Command{Kind: CommandUpdateTransform, Component: id, Transform: t})
}

func (q *CommandQueue) QueueRemoveTransform(id ComponentId) {
	q.push(Command{Kind: CommandRemoveTransform, Component: id})
}

func (q *CommandQueue) QueueRegisterCamera3D(id ComponentId) {
	q.push(Command{Kind: CommandRegisterCamera3D, Component: id})
}

func (q *CommandQueue) QueueRegisterCamera2D(id ComponentId) {
	q.push(Command{Kind: CommandRegisterCamera2D, Component: id})
}

func (q *CommandQueue) QueueMakeActiveCamera(id ComponentId) {
	q.push(Command{Kind: CommandMakeActiveCamera, Component: id})
}

func (q *CommandQueue) QueueRegisterInput(id ComponentId) {
	q.push(Command{Kind: CommandRegisterInput, Component: id})
}

func (q *CommandQueue) QueueRegisterUV(id ComponentId) {
	q.push(Command{Kind: CommandRegisterUV, Component: id})
}

func (q *CommandQueue) QueueRegisterLight(id ComponentId) {
	q.push(Command{Kind: CommandRegisterLight, Component: id})
}

func (q *CommandQueue) QueueRegisterColor(id ComponentId) {
	q.push(Command{Kind: CommandRegisterColor, Component: id})
}

func (q *CommandQueue) QueueRegisterTexture(id ComponentId) {
	q.push(Command{Kind: CommandRegisterTexture, Component: id})
}

func (q *CommandQueue) QueueRegisterCursor(id ComponentId) {
	q.push(Command{Kind: CommandRegisterCursor, Component: id})
}

func (q *CommandQueue) QueueRemoveRenderable(id ComponentId) {
	q.push(Command{Kind: CommandRemoveRenderable, Component: id})
}

func (q *CommandQueue) QueueRemoveCamera(id ComponentId) {
	q.push(Command{Kind: CommandRemoveCamera, Component: id})
}

// Flush drains all queued commands in enqueue order and dispatches each to
// the appropriate system call. Commands whose handler is not wired yet
// (remove-renderable, remove-camera) are dropped without error.
func (q *CommandQueue) Flush(w *World, d Dispatcher, v *visual.World) {
	commands := q.commands
	q.commands = nil

	for _, cmd := range commands {
		switch cmd.Kind {
		case CommandRegisterRenderable:
			d.RegisterRenderable(w, v, cmd.Component)
		case CommandRegisterTransform:
			d.TransformChanged(w, v, cmd.Component)
		case CommandUpdateTransform:
			d.UpdateTransform(w, v, cmd.Component, cmd.Transform)
		case CommandRemoveTransform:
			d.RemoveTransform(w, v, cmd.Component)
		case CommandRegisterCamera3D:
			d.RegisterCamera3D(w, v, cmd.Component)
		case CommandRegisterCamera2D:
			d.RegisterCamera2D(w, v, cmd.Component)
		case CommandMakeActiveCamera:
			d.MakeActiveCamera(w, v, cmd.Component)
		case CommandRegisterInput:
			d.RegisterInput(cmd.Component)
		case CommandRegisterUV:
			d.RegisterUV(w, v, cmd.Component)
		case CommandRegisterLight:
			d.RegisterLight(w, v, cmd.Component)
		case CommandRegisterColor:
			d.RegisterColor(w, v, cmd.Component)
		case CommandRegisterTexture:
			d.RegisterTexture(w, v, cmd.Component)
		case CommandRegisterCursor:
			d.RegisterCursor(cmd.Component)
		case CommandRemoveRenderable, CommandRemoveCamera:
			// Not wired yet; accepted and dropped.
		}
	}
}
