// Package scripting embeds a Lua VM for scene scripting and the interactive
// shell. Single-goroutine access only (frame loop).
package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
	"github.com/catengine/engine/internal/scene"
	"github.com/catengine/engine/internal/visual"
)

// Bindings is the engine state exposed to Lua.
type Bindings struct {
	World    *ecs.World
	Queue    *ecs.CommandQueue
	Registry *component.Registry

	// Meshes maps script-facing names ("cube", "quad") to CPU mesh handles.
	Meshes map[string]visual.CpuMeshHandle
}

// Engine wraps a single gopher-lua VM.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
	b   Bindings
}

// NewEngine creates a Lua engine with the scene API registered as globals.
func NewEngine(b Bindings, log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log, b: b}
	vm.SetGlobal("spawn", vm.NewFunction(e.luaSpawn))
	vm.SetGlobal("move", vm.NewFunction(e.luaMove))
	vm.SetGlobal("remove", vm.NewFunction(e.luaRemove))
	vm.SetGlobal("component_count", vm.NewFunction(e.luaCount))
	vm.SetGlobal("tree", vm.NewFunction(e.luaTree))
	vm.SetGlobal("reparent", vm.NewFunction(e.luaReparent))
	vm.SetGlobal("load_scene", vm.NewFunction(e.luaLoadScene))
	vm.SetGlobal("save_scene", vm.NewFunction(e.luaSaveScene))
	vm.SetGlobal("set_active_camera", vm.NewFunction(e.luaSetActiveCamera))
	return e
}

// LoadDir loads all .lua files in a directory. Missing directories are
// skipped so an empty project boots cleanly.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString executes one chunk of Lua source.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// CallFrame invokes the optional global on_frame(dt_seconds) hook.
func (e *Engine) CallFrame(dtSeconds float64) {
	fn := e.vm.GetGlobal("on_frame")
	if fn == lua.LNil {
		return
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(dtSeconds)); err != nil {
		e.log.Error("lua on_frame error", zap.Error(err))
	}
}

func (e *Engine) Close() {
	e.vm.Close()
}

// luaSpawn builds instance → {renderable, transform} at a position and
// initializes it. spawn(mesh_name, x, y, z) -> id
func (e *Engine) luaSpawn(L *lua.LState) int {
	meshName := L.CheckString(1)
	x := float32(L.CheckNumber(2))
	y := float32(L.CheckNumber(3))
	z := float32(L.CheckNumber(4))

	mesh, ok := e.b.Meshes[meshName]
	if !ok {
		L.RaiseError("unknown mesh %q", meshName)
		return 0
	}

	inst := e.b.World.AddComponent(&component.Instance{})
	rend := e.b.World.AddComponent(&component.Renderable{
		Mesh:     mesh,
		Material: visual.MaterialToonMesh,
	})
	tr := component.NewTransform()
	tr.Local.Translation = mgl32.Vec3{x, y, z}
	trId := e.b.World.AddComponent(tr)

	for _, child := range []ecs.ComponentId{rend, trId} {
		if err := e.b.World.AddChild(inst, child); err != nil {
			L.RaiseError("spawn: %v", err)
			return 0
		}
	}
	e.b.World.InitComponentTree(inst, e.b.Queue)

	L.Push(lua.LNumber(inst))
	return 1
}

// luaMove enqueues an update-transform for the Transform child beneath the
// given component. move(id, x, y, z)
func (e *Engine) luaMove(L *lua.LState) int {
	id := ecs.ComponentId(L.CheckNumber(1))
	x := float32(L.CheckNumber(2))
	y := float32(L.CheckNumber(3))
	z := float32(L.CheckNumber(4))

	trId, tr, ok := ecs.FindChild[*component.Transform](e.b.World, id)
	if !ok {
		L.RaiseError("move: component %d has no transform child", uint64(id))
		return 0
	}
	local := tr.Local
	local.Translation = mgl32.Vec3{x, y, z}
	tr.Set(e.b.Queue, trId, local)
	return 0
}

// luaRemove removes a component subtree. remove(id)
func (e *Engine) luaRemove(L *lua.LState) int {
	id := ecs.ComponentId(L.CheckNumber(1))
	if err := e.b.World.RemoveComponentSubtree(id, e.b.Queue); err != nil {
		L.RaiseError("remove: %v", err)
	}
	return 0
}

// luaCount returns the number of live components. component_count() -> n
func (e *Engine) luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.b.World.Len()))
	return 1
}

// luaTree renders the component forest as an indented listing. tree() -> s
func (e *Engine) luaTree(L *lua.LState) int {
	var sb strings.Builder
	for _, id := range e.b.World.All() {
		if e.b.World.ParentOf(id).IsZero() {
			e.writeTree(&sb, id, 0)
		}
	}
	L.Push(lua.LString(sb.String()))
	return 1
}

func (e *Engine) writeTree(sb *strings.Builder, id ecs.ComponentId, depth int) {
	node := e.b.World.Node(id)
	if node == nil {
		return
	}
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	fmt.Fprintf(sb, "%d %s", uint64(id), node.Component.Name())
	if node.Name != "" {
		fmt.Fprintf(sb, " (%s)", node.Name)
	}
	sb.WriteByte('\n')
	for _, child := range e.b.World.ChildrenOf(id) {
		e.writeTree(sb, child, depth+1)
	}
}

// luaReparent moves a component under a new parent; parent 0 detaches it to
// the root set. reparent(child_id, parent_id)
func (e *Engine) luaReparent(L *lua.LState) int {
	child := ecs.ComponentId(L.CheckNumber(1))
	parent := ecs.ComponentId(L.CheckNumber(2))
	if err := e.b.World.SetParent(child, parent); err != nil {
		L.RaiseError("reparent: %v", err)
	}
	return 0
}

// luaSaveScene writes the subtree rooted at id to a scene file; format by
// extension. save_scene(id, path)
func (e *Engine) luaSaveScene(L *lua.LState) int {
	id := ecs.ComponentId(L.CheckNumber(1))
	path := L.CheckString(2)

	n, err := scene.Encode(e.b.World, id)
	if err != nil {
		L.RaiseError("save_scene: %v", err)
		return 0
	}
	if err := scene.SaveFile(path, n); err != nil {
		L.RaiseError("save_scene: %v", err)
	}
	return 0
}

// luaSetActiveCamera enqueues a camera switch; resolved at the next flush.
// set_active_camera(id)
func (e *Engine) luaSetActiveCamera(L *lua.LState) int {
	id := ecs.ComponentId(L.CheckNumber(1))
	e.b.Queue.QueueMakeActiveCamera(id)
	return 0
}

// luaLoadScene decodes a scene file into the world and initializes the new
// subtree. load_scene(path) -> root_id
func (e *Engine) luaLoadScene(L *lua.LState) int {
	path := L.CheckString(1)
	n, err := scene.LoadFile(path)
	if err != nil {
		L.RaiseError("load_scene: %v", err)
		return 0
	}
	root, err := scene.Decode(e.b.World, e.b.Registry, n)
	if err != nil {
		L.RaiseError("load_scene: %v", err)
		return 0
	}
	e.b.World.InitComponentTree(root, e.b.Queue)
	L.Push(lua.LNumber(root))
	return 1
}
