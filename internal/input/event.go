package input

// EventType is the closed set of input gestures the screens react to.
type EventType string

const (
	Click       EventType = "Click"
	Up          EventType = "Up"
	Down        EventType = "Down"
	DoubleClick EventType = "DoubleClick"
)

// Event is a normalized device input. Raw keeps the original device event for
// diagnostics; it must not be mutated after construction.
type Event struct {
	Type EventType
	Raw  RawEvent
}

// RawEvent is the device event envelope. At most one of the sub-events is
// populated by the host runtime.
type RawEvent struct {
	ListEvent *ListEvent `json:"listEvent,omitempty"`
	TextEvent *TextEvent `json:"textEvent,omitempty"`
	SysEvent  *SysEvent  `json:"sysEvent,omitempty"`
}

// ListEvent is emitted by a list container that captures input.
type ListEvent struct {
	ContainerID            int    `json:"containerID,omitempty"`
	ContainerName          string `json:"containerName,omitempty"`
	CurrentSelectItemName  string `json:"currentSelectItemName,omitempty"`
	CurrentSelectItemIndex int    `json:"currentSelectItemIndex,omitempty"`
	EventType              any    `json:"eventType,omitempty"`
}

// TextEvent is emitted by a text container that captures input.
type TextEvent struct {
	ContainerID   int    `json:"containerID,omitempty"`
	ContainerName string `json:"containerName,omitempty"`
	EventType     any    `json:"eventType,omitempty"`
}

// SysEvent is emitted by the host runtime itself.
type SysEvent struct {
	EventType any `json:"eventType,omitempty"`
}

// rawType picks the candidate code with list > text > sys priority. A nil
// code counts as absent so the next source is consulted.
func (r RawEvent) rawType() (any, bool) {
	if r.ListEvent != nil && r.ListEvent.EventType != nil {
		return r.ListEvent.EventType, true
	}
	if r.TextEvent != nil && r.TextEvent.EventType != nil {
		return r.TextEvent.EventType, true
	}
	if r.SysEvent != nil && r.SysEvent.EventType != nil {
		return r.SysEvent.EventType, true
	}
	return nil, false
}
