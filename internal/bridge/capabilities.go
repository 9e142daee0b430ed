package bridge

import (
	"context"

	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
)

// StartupPayload and RebuildPayload share the layout engine's container set.
type (
	StartupPayload = layout.Payload
	RebuildPayload = layout.Payload
)

// TextUpgrade patches the content of a single text container in place.
type TextUpgrade struct {
	ContainerID   int    `json:"containerID"`
	ContainerName string `json:"containerName"`
	ContentOffset int    `json:"contentOffset"`
	ContentLength int    `json:"contentLength"`
	Content       string `json:"content"`
}

// Handshake waits until the host runtime publishes its bridge object. The
// returned value exposes any subset of the capability interfaces below.
type Handshake interface {
	WaitForBridge(ctx context.Context) (any, error)
}

// HandshakeFunc adapts a function to Handshake.
type HandshakeFunc func(ctx context.Context) (any, error)

func (f HandshakeFunc) WaitForBridge(ctx context.Context) (any, error) { return f(ctx) }

// StartupCreator creates the startup page. The result encoding varies across
// runtime versions; see IsStartupSuccess.
type StartupCreator interface {
	CreateStartUpPageContainer(ctx context.Context, payload StartupPayload) (StartupResult, error)
}

// PageRebuilder replaces the device's whole container set.
type PageRebuilder interface {
	RebuildPageContainer(ctx context.Context, payload RebuildPayload) (bool, error)
}

// TextUpgrader patches one text container.
type TextUpgrader interface {
	TextContainerUpgrade(ctx context.Context, upgrade TextUpgrade) (bool, error)
}

// EventEmitter delivers raw device events until the returned function is
// called.
type EventEmitter interface {
	OnEvenHubEvent(fn func(input.RawEvent)) (unsubscribe func())
}

// LocalStorage is the host's per-app key/value store.
type LocalStorage interface {
	GetLocalStorage(ctx context.Context, key string) (string, error)
	SetLocalStorage(ctx context.Context, key, value string) (bool, error)
}
