package screens

import "github.com/jask/evenhub/internal/input"

// cursor tracks the selected row of a list container.
type cursor struct {
	index int
}

// move applies ev to a list of n rows and reports whether the cursor was
// already pinned at the edge the event pushes against. A list event carries
// the device's own selection, which wins over local bookkeeping.
func (c *cursor) move(ev input.Event, n int) (pinned bool) {
	prev := clamp(c.index, 0, n-1)
	next := prev
	switch ev.Type {
	case input.Up:
		next = prev - 1
	case input.Down:
		next = prev + 1
	}
	if le := ev.Raw.ListEvent; le != nil {
		next = le.CurrentSelectItemIndex
	}
	c.index = clamp(next, 0, n-1)
	switch ev.Type {
	case input.Up:
		return prev == 0 && c.index == 0
	case input.Down:
		return prev == n-1 && c.index == n-1
	}
	return false
}

func (c *cursor) reset() { c.index = 0 }

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
