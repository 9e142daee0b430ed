// Package bridge is the only gateway to the host runtime's device bridge.
//
// The Adapter owns the handshake result and the startup page state of one
// connection. It guarantees that at most one create-startup call is in flight
// per connection, accepts every success encoding the runtime has shipped, and
// keeps the page "created" until Disconnect. Missing capabilities degrade to
// false results; only a failed handshake is reported as an error.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/jask/evenhub/internal/input"
)

// ErrNoBridge is returned by Connect when the handshake yields no bridge.
var ErrNoBridge = errors.New("bridge: host published no bridge")

// InputHandler receives normalized device input.
type InputHandler func(input.Event)

// Adapter serializes access to the device bridge.
type Adapter struct {
	handshake Handshake
	resolver  input.Resolver
	log       zerolog.Logger

	mu          sync.Mutex
	ready       bool
	created     bool
	device      any
	unsubscribe func()
	generation  uint64

	handler atomic.Pointer[InputHandler]
	startup singleflight.Group
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the adapter logger.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Adapter) {
		a.log = log
	}
}

// WithResolver overrides the event type resolver used for inbound events.
func WithResolver(r input.Resolver) Option {
	return func(a *Adapter) {
		if r != nil {
			a.resolver = r
		}
	}
}

// New returns a disconnected adapter.
func New(handshake Handshake, opts ...Option) *Adapter {
	a := &Adapter{
		handshake: handshake,
		resolver:  input.OSEventTypes,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Connect performs the handshake once and subscribes to device events when
// the bridge can emit them. Calling it while connected is a no-op.
func (a *Adapter) Connect(ctx context.Context) error {
	a.mu.Lock()
	if a.ready && a.device != nil {
		a.mu.Unlock()
		return nil
	}
	a.mu.Unlock()

	if a.handshake == nil {
		return ErrNoBridge
	}
	device, err := a.handshake.WaitForBridge(ctx)
	if err != nil {
		return fmt.Errorf("bridge handshake: %w", err)
	}
	if device == nil {
		return ErrNoBridge
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ready && a.device != nil {
		return nil
	}
	a.device = device
	a.ready = true
	if emitter, ok := device.(EventEmitter); ok {
		a.unsubscribe = emitter.OnEvenHubEvent(a.dispatch)
	}
	a.log.Debug().Uint64("generation", a.generation).Msg("bridge connected")
	return nil
}

// Disconnect unsubscribes, clears the input handler and resets the
// connection so the next Connect and CreateStartup behave as on first use.
// It must not race an in-flight CreateStartup.
func (a *Adapter) Disconnect() {
	a.mu.Lock()
	unsubscribe := a.unsubscribe
	a.unsubscribe = nil
	a.device = nil
	a.ready = false
	a.created = false
	a.startup.Forget(startupKey(a.generation))
	a.generation++
	a.mu.Unlock()

	a.handler.Store(nil)
	if unsubscribe != nil {
		unsubscribe()
	}
	a.log.Debug().Msg("bridge disconnected")
}

// OnInput replaces the registered input handler. A nil handler drops input.
func (a *Adapter) OnInput(handler InputHandler) {
	if handler == nil {
		a.handler.Store(nil)
		return
	}
	a.handler.Store(&handler)
}

// Ready reports whether a bridge handle is held.
func (a *Adapter) Ready() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ready
}

// Created reports whether the startup page exists on this connection.
func (a *Adapter) Created() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.created
}

func (a *Adapter) dispatch(raw input.RawEvent) {
	ev, ok := input.Normalize(raw, a.resolver)
	if !ok {
		return
	}
	if h := a.handler.Load(); h != nil {
		(*h)(ev)
	}
}

// CreateStartup creates the startup page once per connection. Concurrent
// callers share a single device call and its result; once the page exists
// the call short-circuits to true. The shared call is detached from the
// caller's cancellation.
func (a *Adapter) CreateStartup(ctx context.Context, payload StartupPayload) bool {
	a.mu.Lock()
	creator, ok := a.device.(StartupCreator)
	if !a.ready || !ok {
		a.mu.Unlock()
		return false
	}
	if a.created {
		a.mu.Unlock()
		return true
	}
	gen := a.generation
	a.mu.Unlock()

	callCtx := context.WithoutCancel(ctx)
	v, _, _ := a.startup.Do(startupKey(gen), func() (any, error) {
		// A call that settled just before this one joined may already have
		// created the page.
		if done, ok := a.createdAt(gen); ok {
			return done, nil
		}
		raw, err := creator.CreateStartUpPageContainer(callCtx, payload)

		a.mu.Lock()
		defer a.mu.Unlock()
		if gen != a.generation {
			return false, nil
		}
		if err != nil {
			a.log.Warn().Err(err).Msg("create startup page failed")
			return a.created, nil
		}
		if IsStartupSuccess(raw) {
			a.created = true
		} else {
			a.log.Warn().Stringer("result", raw).Msg("startup page not confirmed")
		}
		return a.created, nil
	})
	created, _ := v.(bool)
	return created
}

// createdAt reports the created flag if gen is still current and the page
// already exists.
func (a *Adapter) createdAt(gen uint64) (bool, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.generation {
		return false, true
	}
	if a.created {
		return true, true
	}
	return false, false
}

// Rebuild replaces the device's container set.
func (a *Adapter) Rebuild(ctx context.Context, payload RebuildPayload) bool {
	a.mu.Lock()
	rebuilder, ok := a.device.(PageRebuilder)
	ready := a.ready
	a.mu.Unlock()
	if !ready || !ok {
		return false
	}
	done, err := rebuilder.RebuildPageContainer(ctx, payload)
	if err != nil {
		a.log.Warn().Err(err).Msg("rebuild page failed")
		return false
	}
	return done
}

// UpdateText patches a single text container.
func (a *Adapter) UpdateText(ctx context.Context, upgrade TextUpgrade) bool {
	a.mu.Lock()
	upgrader, ok := a.device.(TextUpgrader)
	ready := a.ready
	a.mu.Unlock()
	if !ready || !ok {
		return false
	}
	done, err := upgrader.TextContainerUpgrade(ctx, upgrade)
	if err != nil {
		a.log.Warn().Err(err).Int("container", upgrade.ContainerID).Msg("text upgrade failed")
		return false
	}
	return done
}

func startupKey(gen uint64) string {
	return fmt.Sprintf("startup/%d", gen)
}
