package component

import (
	"fmt"

	"github.com/catengine/engine/internal/core/ecs"
)

// Texture attaches an image, referenced by URI, to the sibling renderable.
// Resolution and upload happen lazily in the texture system.
type Texture struct {
	Base
	URI string
}

func (*Texture) Name() string { return "texture" }

func (t *Texture) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRegisterTexture(id)
}

func (t *Texture) Encode() map[string]any {
	return map[string]any{"uri": t.URI}
}

func (t *Texture) Decode(data map[string]any) error {
	uri, ok := stringField(data, "uri")
	if !ok {
		return fmt.Errorf("missing field %q", "uri")
	}
	t.URI = uri
	return nil
}

var _ ecs.Component = (*Texture)(nil)
