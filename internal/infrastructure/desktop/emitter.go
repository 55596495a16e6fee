// Package desktop hosts the UI surface in a Wails window and adapts the
// shell's menu tree, events and commands to it.
package desktop

import (
	"context"
	"errors"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/ports"
)

// ErrSurfaceUnavailable is returned when an event is emitted before the UI
// surface has started or after it shut down.
var ErrSurfaceUnavailable = errors.New("ui surface unavailable")

// Emitter sends named events to the single main window.
type Emitter struct {
	mu   sync.RWMutex
	ctx  context.Context
	emit func(ctx context.Context, name string, data ...interface{})
}

// NewEmitter returns an Emitter that is unavailable until Attach is called.
func NewEmitter() *Emitter {
	return &Emitter{emit: runtime.EventsEmit}
}

// Attach binds the Wails context handed to OnStartup.
func (e *Emitter) Attach(ctx context.Context) {
	e.mu.Lock()
	e.ctx = ctx
	e.mu.Unlock()
}

// Detach makes later emissions fail with ErrSurfaceUnavailable.
func (e *Emitter) Detach() {
	e.mu.Lock()
	e.ctx = nil
	e.mu.Unlock()
}

// Context returns the bound Wails context, if any.
func (e *Emitter) Context() (context.Context, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ctx, e.ctx != nil
}

// Emit implements ports.EventEmitter.
func (e *Emitter) Emit(name domain.EventName, payload ...interface{}) error {
	ctx, ok := e.Context()
	if !ok {
		return ErrSurfaceUnavailable
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrSurfaceUnavailable, err)
	}
	e.emit(ctx, string(name), payload...)
	return nil
}

var _ ports.EventEmitter = (*Emitter)(nil)
