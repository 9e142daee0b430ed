// Package navigation keeps the screen stack and routes device input to the
// screen on top of it.
package navigation

import (
	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
)

// Screen is one navigable page. OnInput may navigate through a Router; the
// dispatcher re-renders afterwards.
type Screen interface {
	ID() string
	OnEnter()
	OnExit()
	OnInput(ev input.Event)
	ViewModel() layout.ViewModel
}
