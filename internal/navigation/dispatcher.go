package navigation

import (
	"github.com/rs/zerolog"

	"github.com/jask/evenhub/internal/input"
)

// Dispatcher forwards input to the current screen and re-renders.
type Dispatcher struct {
	stack *Stack
	log   zerolog.Logger
}

func NewDispatcher(stack *Stack, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{stack: stack, log: log}
}

// Dispatch has the signature of bridge.InputHandler.
func (d *Dispatcher) Dispatch(ev input.Event) {
	d.log.Debug().Str("input", string(ev.Type)).Msg("input")
	screen := d.stack.Current()
	if screen == nil {
		return
	}
	screen.OnInput(ev)
	d.stack.Render()
}
