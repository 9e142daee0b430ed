// Package render turns screen view models into device page mutations.
package render

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/jask/evenhub/internal/bridge"
	"github.com/jask/evenhub/internal/layout"
)

// ErrRejected is returned when the device refuses a page mutation.
var ErrRejected = errors.New("render: device rejected page")

// Device is the page surface of bridge.Adapter.
type Device interface {
	CreateStartup(ctx context.Context, payload bridge.StartupPayload) bool
	Rebuild(ctx context.Context, payload bridge.RebuildPayload) bool
	UpdateText(ctx context.Context, upgrade bridge.TextUpgrade) bool
}

// Op is the mutation a render performed.
type Op int

const (
	OpNone Op = iota
	OpCreate
	OpRebuild
	OpUpgrade
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpRebuild:
		return "rebuild"
	case OpUpgrade:
		return "upgrade"
	default:
		return "none"
	}
}

// Pipeline renders view models. The first render creates the startup page,
// later renders patch text in place when only text content changed and
// rebuild the page otherwise.
type Pipeline struct {
	device  Device
	builder *layout.Builder
	log     zerolog.Logger

	mu   sync.Mutex
	last *layout.Payload
}

func New(device Device, builder *layout.Builder, log zerolog.Logger) *Pipeline {
	if builder == nil {
		builder = layout.NewBuilder(layout.DefaultContainerIDs)
	}
	return &Pipeline{device: device, builder: builder, log: log}
}

// Render sends vm to the device. Renders are serialized; an unchanged page is
// not sent again.
func (p *Pipeline) Render(ctx context.Context, vm layout.ViewModel) (Op, error) {
	payload := p.builder.Build(vm)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last == nil {
		if !p.device.CreateStartup(ctx, payload) {
			p.log.Warn().Str("view", vm.Title).Msg("startup page not created")
			return OpCreate, ErrRejected
		}
		p.remember(payload)
		return OpCreate, nil
	}
	if reflect.DeepEqual(*p.last, payload) {
		return OpNone, nil
	}
	if upgrades, ok := textChanges(*p.last, payload); ok {
		if p.upgrade(ctx, upgrades) {
			p.remember(payload)
			return OpUpgrade, nil
		}
		p.log.Debug().Str("view", vm.Title).Msg("text upgrade refused; rebuilding")
	}
	if !p.device.Rebuild(ctx, payload) {
		p.log.Warn().Str("view", vm.Title).Msg("page rebuild failed")
		return OpRebuild, ErrRejected
	}
	p.remember(payload)
	return OpRebuild, nil
}

// Reset forgets the last page, so the next render creates a startup page.
// Call it after the bridge reconnects.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	p.last = nil
	p.mu.Unlock()
}

func (p *Pipeline) upgrade(ctx context.Context, upgrades []bridge.TextUpgrade) bool {
	for _, u := range upgrades {
		if !p.device.UpdateText(ctx, u) {
			return false
		}
	}
	return true
}

func (p *Pipeline) remember(payload layout.Payload) {
	p.last = &payload
}

// textChanges reports the upgrades turning prev into next when both share
// their container structure and differ in text content only. Text containers
// must have distinct IDs to be addressable.
func textChanges(prev, next layout.Payload) ([]bridge.TextUpgrade, bool) {
	if prev.ContainerTotalNum != next.ContainerTotalNum ||
		len(prev.TextObject) != len(next.TextObject) ||
		!reflect.DeepEqual(prev.ListObject, next.ListObject) {
		return nil, false
	}
	seen := make(map[int]bool, len(next.TextObject))
	var out []bridge.TextUpgrade
	for i, n := range next.TextObject {
		o := prev.TextObject[i]
		if seen[n.ContainerID] {
			return nil, false
		}
		seen[n.ContainerID] = true
		content := o.Content
		o.Content = n.Content
		if o != n {
			return nil, false
		}
		if content == n.Content {
			continue
		}
		out = append(out, bridge.TextUpgrade{
			ContainerID:   n.ContainerID,
			ContainerName: n.ContainerName,
			ContentOffset: 0,
			ContentLength: utf8.RuneCountInString(n.Content),
			Content:       n.Content,
		})
	}
	return out, len(out) > 0
}
