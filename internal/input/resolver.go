package input

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// OS event type codes as published by the host runtime.
const (
	ClickEvent           = 0
	ScrollTopEvent       = 1
	ScrollBottomEvent    = 2
	DoubleClickEvent     = 3
	ForegroundEnterEvent = 4
	ForegroundExitEvent  = 5
	AbnormalExitEvent    = 6
)

var osEventNames = map[string]int{
	"CLICK_EVENT":            ClickEvent,
	"SCROLL_TOP_EVENT":       ScrollTopEvent,
	"SCROLL_BOTTOM_EVENT":    ScrollBottomEvent,
	"DOUBLE_CLICK_EVENT":     DoubleClickEvent,
	"FOREGROUND_ENTER_EVENT": ForegroundEnterEvent,
	"FOREGROUND_EXIT_EVENT":  ForegroundExitEvent,
	"ABNORMAL_EXIT_EVENT":    AbnormalExitEvent,
}

// OSEventTypes resolves the runtime's event type enum from its JSON forms:
// integral numbers, numeric strings, and enum names.
var OSEventTypes Resolver = ResolverFunc(resolveOSEventType)

func resolveOSEventType(v any) (int, bool) {
	switch typed := v.(type) {
	case int:
		return knownCode(typed)
	case int32:
		return knownCode(int(typed))
	case int64:
		return knownCode(int(typed))
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) || typed != math.Trunc(typed) {
			return 0, false
		}
		return knownCode(int(typed))
	case json.Number:
		n, err := typed.Int64()
		if err != nil {
			return 0, false
		}
		return knownCode(int(n))
	case string:
		s := strings.TrimSpace(typed)
		if code, ok := osEventNames[strings.ToUpper(s)]; ok {
			return code, true
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return knownCode(n)
	default:
		return 0, false
	}
}

func knownCode(n int) (int, bool) {
	if n < ClickEvent || n > AbnormalExitEvent {
		return 0, false
	}
	return n, true
}
