package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/catengine/engine/internal/core/system"
)

// LitVoxelSystem will compute per-instance voxel shade and emissive data and
// hand it to the renderer. The shading pass is not implemented yet; the
// system holds the frame slot so voxel scenes already pay its ordering cost.
type LitVoxelSystem struct {
	log *zap.Logger
}

func NewLitVoxelSystem(log *zap.Logger) *LitVoxelSystem {
	return &LitVoxelSystem{log: log}
}

func (s *LitVoxelSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *LitVoxelSystem) Update(time.Duration) {}
