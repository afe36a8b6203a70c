package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput  Phase = iota // 0: poll window events, integrate input components
	PhaseUpdate              // 1: game logic, scripting
	PhaseFlush               // 2: drain the command queue into the visual cache
	PhaseOutput              // 3: lazy texture work, draw cache rebuild
)

// System is the interface every frame system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
