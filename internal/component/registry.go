package component

import (
	"fmt"
	"sort"

	"github.com/catengine/engine/internal/core/ecs"
)

// Registry maps stable type names to component factories. The scene codec
// uses it to rebuild components from serialized nodes.
type Registry struct {
	factories map[string]func() ecs.Component
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]func() ecs.Component)}
}

// Register binds name to a factory. Re-registering a name overwrites the
// previous binding.
func (r *Registry) Register(name string, factory func() ecs.Component) {
	r.factories[name] = factory
}

// New builds a fresh component for name.
func (r *Registry) New(name string) (ecs.Component, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown component type %q", name)
	}
	return factory(), nil
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with every built-in component bound.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("instance", func() ecs.Component { return &Instance{} })
	r.Register("transform", func() ecs.Component { return NewTransform() })
	r.Register("renderable", func() ecs.Component { return &Renderable{} })
	r.Register("camera3d", func() ecs.Component { return NewCamera3D() })
	r.Register("camera2d", func() ecs.Component { return &Camera2D{} })
	r.Register("input", func() ecs.Component { return &Input{} })
	r.Register("input_transform_mode", func() ecs.Component { return NewInputTransformMode() })
	r.Register("texture", func() ecs.Component { return &Texture{} })
	r.Register("color", func() ecs.Component { return NewColor() })
	r.Register("point_light", func() ecs.Component { return NewPointLight() })
	r.Register("uv", func() ecs.Component { return &UV{} })
	r.Register("cursor", func() ecs.Component { return &Cursor{} })
	r.Register("lit_voxel", func() ecs.Component { return &LitVoxel{} })
	return r
}
