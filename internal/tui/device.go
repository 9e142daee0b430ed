// Package tui runs the device in a terminal: a bubbletea program that holds
// the page containers, draws them on a scaled canvas and turns key presses
// into device events.
package tui

import (
	"context"
	"encoding/json"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/jask/evenhub/internal/bridge"
	"github.com/jask/evenhub/internal/database/repository"
	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
)

// Device limits enforced on every page.
const (
	MaxContainers = 4
	MaxTextRunes  = 1000
	DisplayWidth  = 576
	DisplayHeight = 288

	legacySuccess = "APP_REQUEST_CREATE_PAGE_SUCCESS"
)

// Storage is the local storage backend of the device.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// PageLog records page mutations.
type PageLog interface {
	Add(ctx context.Context, e repository.PageLogEntry) error
}

// Gesture is a user action on the device touchpad.
type Gesture int

const (
	GestureClick Gesture = iota
	GestureUp
	GestureDown
	GestureDoubleClick
)

var gestureCodes = map[Gesture]int{
	GestureClick:       input.ClickEvent,
	GestureUp:          input.ScrollTopEvent,
	GestureDown:        input.ScrollBottomEvent,
	GestureDoubleClick: input.DoubleClickEvent,
}

// Device implements every bridge capability in memory.
type Device struct {
	store   Storage
	pageLog PageLog
	log     zerolog.Logger
	legacy  bool

	mu         sync.Mutex
	page       *layout.Payload
	selected   int
	foreground bool
	subs       map[int]func(input.RawEvent)
	nextSub    int
	onChange   func()
}

type Option func(*Device)

func WithLogger(log zerolog.Logger) Option { return func(d *Device) { d.log = log } }

// WithStorage backs local storage; without it storage calls fail.
func WithStorage(s Storage) Option { return func(d *Device) { d.store = s } }

func WithPageLog(l PageLog) Option { return func(d *Device) { d.pageLog = l } }

// WithLegacyResults makes startup creation answer with the string result of
// early runtime builds instead of the enum code.
func WithLegacyResults() Option { return func(d *Device) { d.legacy = true } }

func NewDevice(opts ...Option) *Device {
	d := &Device{
		log:        zerolog.Nop(),
		subs:       map[int]func(input.RawEvent){},
		foreground: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WaitForBridge publishes the device itself; it implements bridge.Handshake.
func (d *Device) WaitForBridge(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// OnChange registers fn to run after every page change. fn runs on the
// goroutine that changed the page.
func (d *Device) OnChange(fn func()) {
	d.mu.Lock()
	d.onChange = fn
	d.mu.Unlock()
}

func (d *Device) CreateStartUpPageContainer(ctx context.Context, p bridge.StartupPayload) (bridge.StartupResult, error) {
	code := validate(p)
	d.mu.Lock()
	if code == bridge.StartupSuccess && d.page != nil {
		code = bridge.StartupInvalid
	}
	if code == bridge.StartupSuccess {
		d.setPage(p)
	}
	d.mu.Unlock()

	result := bridge.CodeResult(code)
	if d.legacy && code == bridge.StartupSuccess {
		result = bridge.StringResult(legacySuccess)
	}
	d.record(ctx, repository.OpCreate, p, result.String())
	if code == bridge.StartupSuccess {
		d.changed()
	}
	return result, nil
}

func (d *Device) RebuildPageContainer(ctx context.Context, p bridge.RebuildPayload) (bool, error) {
	ok := validate(p) == bridge.StartupSuccess
	d.mu.Lock()
	if d.page == nil {
		ok = false
	}
	if ok {
		d.setPage(p)
	}
	d.mu.Unlock()

	d.record(ctx, repository.OpRebuild, p, boolString(ok))
	if ok {
		d.changed()
	}
	return ok, nil
}

func (d *Device) TextContainerUpgrade(ctx context.Context, u bridge.TextUpgrade) (bool, error) {
	d.mu.Lock()
	ok := false
	if d.page != nil && utf8.RuneCountInString(u.Content) <= MaxTextRunes {
		for i := range d.page.TextObject {
			t := &d.page.TextObject[i]
			if t.ContainerID == u.ContainerID && t.ContainerName == u.ContainerName {
				t.Content = u.Content
				ok = true
				break
			}
		}
	}
	d.mu.Unlock()

	d.record(ctx, repository.OpUpgrade, u, boolString(ok))
	if ok {
		d.changed()
	}
	return ok, nil
}

// OnEvenHubEvent subscribes fn to device events. The app session ends when
// the last subscriber leaves; the device then accepts a new startup page.
func (d *Device) OnEvenHubEvent(fn func(input.RawEvent)) func() {
	d.mu.Lock()
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.subs, id)
			ended := len(d.subs) == 0
			if ended {
				d.page = nil
				d.selected = 0
			}
			d.mu.Unlock()
			if ended {
				d.changed()
			}
		})
	}
}

// GetLocalStorage returns "" for missing keys.
func (d *Device) GetLocalStorage(ctx context.Context, key string) (string, error) {
	if d.store == nil {
		return "", bridge.ErrNoStorage
	}
	value, _, err := d.store.Get(ctx, key)
	return value, err
}

func (d *Device) SetLocalStorage(ctx context.Context, key, value string) (bool, error) {
	if d.store == nil {
		return false, bridge.ErrNoStorage
	}
	if err := d.store.Set(ctx, key, value); err != nil {
		return false, err
	}
	return true, nil
}

// Press performs a gesture. Scrolling moves the selection of an
// event-capturing list before the event is emitted, as the glasses do.
func (d *Device) Press(g Gesture) {
	code, ok := gestureCodes[g]
	if !ok {
		return
	}
	d.mu.Lock()
	raw := d.eventFor(g, code)
	d.mu.Unlock()
	d.emit(raw)
}

// ToggleForeground emits a foreground enter or exit system event.
func (d *Device) ToggleForeground() {
	d.mu.Lock()
	d.foreground = !d.foreground
	name := "FOREGROUND_EXIT_EVENT"
	if d.foreground {
		name = "FOREGROUND_ENTER_EVENT"
	}
	d.mu.Unlock()
	d.emit(input.RawEvent{SysEvent: &input.SysEvent{EventType: name}})
}

// Snapshot is a copy of the device state for drawing.
type Snapshot struct {
	Page     *layout.Payload
	Selected int
}

func (d *Device) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.page == nil {
		return Snapshot{}
	}
	page := clonePayload(*d.page)
	return Snapshot{Page: &page, Selected: d.selected}
}

func (d *Device) eventFor(g Gesture, code int) input.RawEvent {
	if d.page == nil {
		return input.RawEvent{SysEvent: &input.SysEvent{EventType: code}}
	}
	for _, l := range d.page.ListObject {
		if l.IsEventCapture != 1 {
			continue
		}
		last := len(l.ItemContainer.ItemName) - 1
		switch g {
		case GestureUp:
			d.selected = max(0, d.selected-1)
		case GestureDown:
			d.selected = max(0, min(last, d.selected+1))
		}
		name := ""
		if d.selected <= last {
			name = l.ItemContainer.ItemName[d.selected]
		}
		return input.RawEvent{ListEvent: &input.ListEvent{
			ContainerID:            l.ContainerID,
			ContainerName:          l.ContainerName,
			CurrentSelectItemName:  name,
			CurrentSelectItemIndex: d.selected,
			EventType:              code,
		}}
	}
	for _, t := range d.page.TextObject {
		if t.IsEventCapture == 1 {
			return input.RawEvent{TextEvent: &input.TextEvent{
				ContainerID:   t.ContainerID,
				ContainerName: t.ContainerName,
				EventType:     code,
			}}
		}
	}
	return input.RawEvent{SysEvent: &input.SysEvent{EventType: code}}
}

func (d *Device) emit(raw input.RawEvent) {
	d.mu.Lock()
	subs := make([]func(input.RawEvent), 0, len(d.subs))
	for _, fn := range d.subs {
		subs = append(subs, fn)
	}
	d.mu.Unlock()
	for _, fn := range subs {
		fn(raw)
	}
}

// setPage must be called with d.mu held. A new page resets the selection.
func (d *Device) setPage(p layout.Payload) {
	page := clonePayload(p)
	d.page = &page
	d.selected = 0
}

func (d *Device) changed() {
	d.mu.Lock()
	fn := d.onChange
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (d *Device) record(ctx context.Context, op string, payload any, result string) {
	total := 0
	if p, ok := payload.(layout.Payload); ok {
		total = p.ContainerTotalNum
	}
	d.log.Debug().Str("op", op).Int("containers", total).Str("result", result).Msg("device page")
	if d.pageLog == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	err = d.pageLog.Add(ctx, repository.PageLogEntry{
		Op:             op,
		ContainerTotal: total,
		Payload:        string(data),
		Result:         result,
	})
	if err != nil {
		d.log.Warn().Err(err).Str("op", op).Msg("page log write failed")
	}
}

// validate applies the device limits and returns the startup code a page
// would get.
func validate(p layout.Payload) bridge.StartupCode {
	total := len(p.TextObject) + len(p.ListObject)
	if total == 0 || total != p.ContainerTotalNum || total > MaxContainers {
		return bridge.StartupInvalid
	}
	captures := 0
	for _, t := range p.TextObject {
		captures += t.IsEventCapture
		if utf8.RuneCountInString(t.Content) > MaxTextRunes {
			return bridge.StartupOversize
		}
	}
	for _, l := range p.ListObject {
		captures += l.IsEventCapture
		if len(l.ItemContainer.ItemName) > layout.MaxListItems || l.ItemContainer.ItemCount != len(l.ItemContainer.ItemName) {
			return bridge.StartupOversize
		}
	}
	if captures > 1 {
		return bridge.StartupInvalid
	}
	return bridge.StartupSuccess
}

func clonePayload(p layout.Payload) layout.Payload {
	out := layout.Payload{ContainerTotalNum: p.ContainerTotalNum}
	out.TextObject = append([]layout.TextObject(nil), p.TextObject...)
	for _, l := range p.ListObject {
		l.ItemContainer.ItemName = append([]string(nil), l.ItemContainer.ItemName...)
		out.ListObject = append(out.ListObject, l)
	}
	return out
}

func boolString(ok bool) string {
	if ok {
		return "true"
	}
	return "false"
}
