// Package bridge turns menu activations and launch arguments into named
// events for the UI surface.
package bridge

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/ports"
)

var routes = map[string]domain.EventName{
	domain.MenuIDOpenFile:     domain.EventOpenFile,
	domain.MenuIDOpenFolder:   domain.EventOpenFolder,
	domain.MenuIDSettings:     domain.EventSettings,
	domain.MenuIDInstallCLI:   domain.EventInstallCLI,
	domain.MenuIDUninstallCLI: domain.EventUninstallCLI,
}

// Bridge emits events to the single main UI surface. Emission failures are
// logged and dropped; nothing is retried.
type Bridge struct {
	emitter ports.EventEmitter
	logger  ports.Logger
	clock   clockwork.Clock
	delay   time.Duration
}

// Option customises a Bridge.
type Option func(*Bridge)

// WithDelay sets the deferral of the startup open-path event.
func WithDelay(d time.Duration) Option {
	return func(b *Bridge) { b.delay = d }
}

// WithClock replaces the wall clock, for tests.
func WithClock(c clockwork.Clock) Option {
	return func(b *Bridge) { b.clock = c }
}

// New builds a Bridge. logger may be nil.
func New(emitter ports.EventEmitter, logger ports.Logger, opts ...Option) *Bridge {
	b := &Bridge{
		emitter: emitter,
		logger:  logger,
		clock:   clockwork.NewRealClock(),
		delay:   domain.DefaultOpenPathDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// EventFor maps a dispatch identifier to its event.
func EventFor(id string) (domain.EventName, bool) {
	name, ok := routes[id]
	return name, ok
}

// Dispatch is the menu callback. It emits the mapped event synchronously and
// ignores identifiers it does not know.
func (b *Bridge) Dispatch(id string) {
	name, ok := EventFor(id)
	if !ok {
		return
	}
	b.emit(name)
}

// ForwardPath emits open-path immediately. Used when the UI is known to be up,
// such as a path handed over by a second launch.
func (b *Bridge) ForwardPath(path string) {
	b.emit(domain.EventOpenPath, path)
}

// ScheduleOpenPath emits open-path with path once the configured delay has
// passed, giving the UI time to attach its listeners. It makes exactly one
// attempt. The returned Pending can stop it before it fires; cancelling ctx
// has the same effect. An empty path schedules nothing and returns nil.
func (b *Bridge) ScheduleOpenPath(ctx context.Context, path string) *Pending {
	if path == "" {
		return nil
	}
	p := &Pending{cancel: make(chan struct{}), done: make(chan struct{})}
	timer := b.clock.After(b.delay)
	go func() {
		defer close(p.done)
		select {
		case <-timer:
			p.fired.Store(true)
			b.emit(domain.EventOpenPath, path)
		case <-p.cancel:
		case <-ctx.Done():
		}
	}()
	return p
}

func (b *Bridge) emit(name domain.EventName, payload ...interface{}) {
	if err := b.emitter.Emit(name, payload...); err != nil && b.logger != nil {
		b.logger.Debug("event dropped", map[string]interface{}{
			"event": string(name),
			"error": err.Error(),
		})
	}
}

// Pending is a scheduled one-shot emission.
type Pending struct {
	cancel chan struct{}
	done   chan struct{}
	once   sync.Once
	fired  atomic.Bool
}

// Cancel stops the emission if it has not fired yet. Safe to call more than
// once and on a nil Pending.
func (p *Pending) Cancel() {
	if p == nil {
		return
	}
	p.once.Do(func() { close(p.cancel) })
}

// Done is closed once the emission fired or was cancelled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Fired reports whether the emission was attempted.
func (p *Pending) Fired() bool {
	return p != nil && p.fired.Load()
}

// PathFromArgs returns the launch path among the process arguments (without
// the program name): the first argument, unless it is empty or starts with
// '-', in which case there is none.
func PathFromArgs(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	first := args[0]
	if first == "" || strings.HasPrefix(first, "-") {
		return "", false
	}
	return first, true
}
