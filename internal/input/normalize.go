package input

// Resolver turns an unnormalized device event code into the runtime's
// numeric event type. It reports false for codes it does not recognize.
type Resolver interface {
	FromJSON(v any) (int, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(v any) (int, bool)

func (f ResolverFunc) FromJSON(v any) (int, bool) { return f(v) }

var typeTable = map[int]EventType{
	0: Click,
	1: Up,
	2: Down,
	3: DoubleClick,
}

// Normalize maps a raw device event to an input Event. Events without a code,
// codes the resolver rejects, and codes outside the gesture table all yield
// false; unknown hardware events are dropped, never reported.
func Normalize(raw RawEvent, r Resolver) (Event, bool) {
	code, ok := raw.rawType()
	if !ok || r == nil {
		return Event{}, false
	}
	normalized, ok := r.FromJSON(code)
	if !ok {
		return Event{}, false
	}
	typ, ok := typeTable[normalized]
	if !ok {
		return Event{}, false
	}
	return Event{Type: typ, Raw: raw}, true
}
