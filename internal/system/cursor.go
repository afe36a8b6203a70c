package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
	coresys "github.com/catengine/engine/internal/core/system"
	"github.com/catengine/engine/internal/input"
)

// CursorSystem pins the Transform child of each registered Cursor component
// to the mouse position in normalized device coordinates. Phase 0 (Input).
type CursorSystem struct {
	log    *zap.Logger
	world  *ecs.World
	queue  *ecs.CommandQueue
	state  *input.State
	width  float64
	height float64

	cursors    []ecs.ComponentId
	lastX      float64
	lastY      float64
	haveCursor bool
}

func NewCursorSystem(
	world *ecs.World,
	queue *ecs.CommandQueue,
	state *input.State,
	width, height int,
	log *zap.Logger,
) *CursorSystem {
	return &CursorSystem{
		log:    log,
		world:  world,
		queue:  queue,
		state:  state,
		width:  float64(width),
		height: float64(height),
	}
}

func (s *CursorSystem) Phase() coresys.Phase { return coresys.PhaseInput }

// Register tracks a Cursor component id.
func (s *CursorSystem) Register(id ecs.ComponentId) {
	if !containsId(s.cursors, id) {
		s.cursors = append(s.cursors, id)
	}
}

func (s *CursorSystem) Update(time.Duration) {
	x, y := s.state.Cursor()
	if s.haveCursor && x == s.lastX && y == s.lastY {
		return
	}
	s.haveCursor = true
	s.lastX = x
	s.lastY = y

	// Pixel coordinates to NDC: x right, y up, both in [-1, 1].
	ndcX := float32(2*x/s.width - 1)
	ndcY := float32(1 - 2*y/s.height)

	live := s.cursors[:0]
	for _, id := range s.cursors {
		if _, ok := ecs.Get[*component.Cursor](s.world, id); !ok {
			continue
		}
		live = append(live, id)

		trId, tr, ok := ecs.FindChild[*component.Transform](s.world, id)
		if !ok {
			s.log.Debug("cursor without transform child", zap.Uint64("id", uint64(id)))
			continue
		}
		local := tr.Local
		local.Translation[0] = ndcX
		local.Translation[1] = ndcY
		tr.Set(s.queue, trId, local)
	}
	s.cursors = live
}
