// Package component holds the built-in component types attached to graph
// nodes. Components are data plus lifecycle hooks; all visual side effects go
// through the command queue, never directly into the caches.
package component

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/catengine/engine/internal/core/ecs"
)

// Base provides no-op lifecycle and codec methods for components that only
// need a subset. Embed it and override what matters.
type Base struct{}

func (Base) Init(*ecs.CommandQueue, ecs.ComponentId)    {}
func (Base) Cleanup(*ecs.CommandQueue, ecs.ComponentId) {}
func (Base) Encode() map[string]any                     { return map[string]any{} }
func (Base) Decode(map[string]any) error                { return nil }

// numField reads a numeric field, accepting the types the JSON and YAML
// decoders actually produce.
func numField(data map[string]any, key string) (float64, bool) {
	v, ok := data[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func requireNum(data map[string]any, key string) (float64, error) {
	n, ok := numField(data, key)
	if !ok {
		return 0, fmt.Errorf("missing or non-numeric field %q", key)
	}
	return n, nil
}

func stringField(data map[string]any, key string) (string, bool) {
	s, ok := data[key].(string)
	return s, ok
}

// floatSlice reads a fixed-length numeric array field.
func floatSlice(data map[string]any, key string, n int) ([]float64, error) {
	v, ok := data[key]
	if !ok {
		return nil, fmt.Errorf("missing field %q", key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is not an array", key)
	}
	if len(raw) != n {
		return nil, fmt.Errorf("field %q has %d elements, want %d", key, len(raw), n)
	}
	out := make([]float64, n)
	for i, e := range raw {
		switch x := e.(type) {
		case float64:
			out[i] = x
		case float32:
			out[i] = float64(x)
		case int:
			out[i] = float64(x)
		case int64:
			out[i] = float64(x)
		default:
			return nil, fmt.Errorf("field %q element %d is not numeric", key, i)
		}
	}
	return out, nil
}

func vec3Field(data map[string]any, key string) (mgl32.Vec3, error) {
	f, err := floatSlice(data, key, 3)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{float32(f[0]), float32(f[1]), float32(f[2])}, nil
}

func vec4Field(data map[string]any, key string) (mgl32.Vec4, error) {
	f, err := floatSlice(data, key, 4)
	if err != nil {
		return mgl32.Vec4{}, err
	}
	return mgl32.Vec4{float32(f[0]), float32(f[1]), float32(f[2]), float32(f[3])}, nil
}

func encodeVec3(v mgl32.Vec3) []any {
	return []any{float64(v[0]), float64(v[1]), float64(v[2])}
}

func encodeVec4(v mgl32.Vec4) []any {
	return []any{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}
