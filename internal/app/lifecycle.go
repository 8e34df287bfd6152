package app

import (
	"sync"

	"github.com/dshills/kestrel/internal/renderer/backend"
)

// terminalGuard scopes raw mode and the alternate screen to a session.
// release is safe to call any number of times; the backend is shut down
// at most once and only if acquire succeeded.
type terminalGuard struct {
	backend     backend.Backend
	logger      *Logger
	acquired    bool
	releaseOnce sync.Once
}

func newTerminalGuard(b backend.Backend, logger *Logger) *terminalGuard {
	return &terminalGuard{backend: b, logger: logger}
}

func (g *terminalGuard) acquire() error {
	if err := g.backend.Init(); err != nil {
		return err
	}
	g.acquired = true
	return nil
}

func (g *terminalGuard) release() {
	if !g.acquired {
		return
	}
	g.releaseOnce.Do(func() {
		g.backend.Shutdown()
		g.logger.Debug("terminal restored")
	})
}
