package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
	coresys "github.com/catengine/engine/internal/core/system"
	"github.com/catengine/engine/internal/visual"
)

// TextureSource resolves a texture URI to decoded RGBA8 pixels. The concrete
// implementation lives in the assets package.
type TextureSource interface {
	LoadRGBA8(uri string) (pixels []uint8, width, height uint32, err error)
}

// TextureSystem attaches decoded images to visual instances. Work is lazy: a
// texture stays pending until its instance is registered, then the image is
// resolved, uploaded once, and cached by URI. Failed resolutions are evicted
// with a diagnostic instead of retrying forever.
type TextureSystem struct {
	log      *zap.Logger
	world    *ecs.World
	visuals  *visual.World
	source   TextureSource
	uploader visual.TextureUploader

	pending []ecs.ComponentId
	cache   map[string]visual.TextureHandle
}

func NewTextureSystem(
	world *ecs.World,
	visuals *visual.World,
	source TextureSource,
	uploader visual.TextureUploader,
	log *zap.Logger,
) *TextureSystem {
	return &TextureSystem{
		log:      log,
		world:    world,
		visuals:  visuals,
		source:   source,
		uploader: uploader,
		cache:    make(map[string]visual.TextureHandle),
	}
}

func (s *TextureSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *TextureSystem) Update(time.Duration) {
	s.Process(s.world, s.visuals)
}

// Register queues a texture component for lazy attachment.
func (s *TextureSystem) Register(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	if _, ok := ecs.Get[*component.Texture](w, id); !ok {
		s.log.Warn("register-texture on non-texture component", zap.Uint64("id", uint64(id)))
		return
	}
	if !containsId(s.pending, id) {
		s.pending = append(s.pending, id)
	}
}

// PendingCount returns the number of textures awaiting attachment.
func (s *TextureSystem) PendingCount() int { return len(s.pending) }

// Process attempts every pending attachment once. Textures whose instance is
// not registered yet stay pending for the next pass; textures that fail to
// resolve or upload are dropped.
func (s *TextureSystem) Process(w *ecs.World, v *visual.World) {
	keep := s.pending[:0]
	for _, id := range s.pending {
		tex, ok := ecs.Get[*component.Texture](w, id)
		if !ok {
			s.log.Debug("pending texture component vanished", zap.Uint64("id", uint64(id)))
			continue
		}
		_, inst, ok := ecs.FindAncestor[*component.Instance](w, id)
		if !ok || inst.Handle == 0 {
			keep = append(keep, id)
			continue
		}

		handle, ok := s.cache[tex.URI]
		if !ok {
			pixels, width, height, err := s.source.LoadRGBA8(tex.URI)
			if err != nil {
				s.log.Warn("texture resolution failed, evicting",
					zap.String("uri", tex.URI),
					zap.Uint64("id", uint64(id)),
					zap.Error(err))
				continue
			}
			handle, err = s.uploader.UploadTextureRGBA8(pixels, width, height)
			if err != nil {
				s.log.Warn("texture upload failed, evicting",
					zap.String("uri", tex.URI),
					zap.Uint64("id", uint64(id)),
					zap.Error(err))
				continue
			}
			s.cache[tex.URI] = handle
		}

		v.UpdateTexture(inst.Handle, handle)
	}
	s.pending = keep
}
