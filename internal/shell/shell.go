// Package shell runs an interactive Lua console over stdin. Lines are read
// on a background goroutine and executed on the frame loop, so scripts see a
// consistent world.
package shell

import (
	"bufio"
	"io"
	"time"

	"go.uber.org/zap"

	coresys "github.com/catengine/engine/internal/core/system"
	"github.com/catengine/engine/internal/scripting"
)

// Shell buffers console input between frames. Phase 1 (Update): drains
// pending lines into the scripting engine and fires its frame hook.
type Shell struct {
	log    *zap.Logger
	engine *scripting.Engine
	lines  chan string
}

func New(engine *scripting.Engine, log *zap.Logger) *Shell {
	return &Shell{
		log:    log,
		engine: engine,
		lines:  make(chan string, 64),
	}
}

// Start begins reading lines from r. The reader goroutine exits when r is
// closed; lines that arrive while the buffer is full are dropped with a
// warning rather than blocking the reader.
func (s *Shell) Start(r io.Reader) {
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			select {
			case s.lines <- line:
			default:
				s.log.Warn("shell input buffer full, dropping line")
			}
		}
		if err := scanner.Err(); err != nil {
			s.log.Warn("shell input closed", zap.Error(err))
		}
	}()
}

func (s *Shell) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *Shell) Update(dt time.Duration) {
	s.Drain()
	s.engine.CallFrame(dt.Seconds())
}

// Drain executes every buffered line. Script errors are reported and do not
// stop the frame.
func (s *Shell) Drain() {
	for {
		select {
		case line := <-s.lines:
			if err := s.engine.DoString(line); err != nil {
				s.log.Error("shell command failed", zap.Error(err))
			}
		default:
			return
		}
	}
}
