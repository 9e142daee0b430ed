package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Simulator actions.
const (
	ActionUp          = "up"
	ActionDown        = "down"
	ActionClick       = "click"
	ActionDoubleClick = "double_click"
	ActionForeground  = "foreground"
	ActionQuit        = "quit"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultKeyRegistry maps the touchpad gestures onto the keyboard.
func DefaultKeyRegistry() *KeyRegistry {
	return NewKeyRegistry([]KeyBinding{
		{Keys: []string{"up", "k"}, Action: ActionUp, Description: "scroll up"},
		{Keys: []string{"down", "j"}, Action: ActionDown, Description: "scroll down"},
		{Keys: []string{"enter", " "}, Action: ActionClick, Description: "click"},
		{Keys: []string{"esc", "backspace"}, Action: ActionDoubleClick, Description: "double click"},
		{Keys: []string{"f"}, Action: ActionForeground, Description: "fore/background"},
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit"},
	})
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) Bindings() []KeyBinding {
	return slices.Clone(r.bindings)
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action string) bool {
	return r.Action(msg) == action
}

// Action returns the action bound to msg, or "" when the key is unbound.
// The first matching binding wins.
func (r *KeyRegistry) Action(msg tea.KeyMsg) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// Help renders "key description" pairs for the footer.
func (r *KeyRegistry) Help() string {
	parts := make([]string, 0, len(r.bindings))
	for _, b := range r.bindings {
		if len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, keyLabel(b.Keys[0])+" "+b.Description)
	}
	return strings.Join(parts, "  ")
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// normalizeKey keeps a lone space, which bubbletea reports as " ".
func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}
