package screens

import (
	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
	"github.com/jask/evenhub/internal/service"
)

// Actions overlays an action list on the detail it belongs to. Picking an
// action or double clicking returns to the detail.
type Actions struct {
	f       *Factory
	detail  service.DetailData
	actions service.ActionsData
	sel     cursor
}

func (a *Actions) ID() string { return "actions:" + a.detail.ID }
func (a *Actions) OnEnter()   { a.f.Log.Info().Str("owner", a.detail.ID).Msg("enter actions") }
func (a *Actions) OnExit()    { a.f.Log.Info().Str("owner", a.detail.ID).Msg("exit actions") }

func (a *Actions) OnInput(ev input.Event) {
	a.sel.move(ev, len(a.actions.Items))
	switch ev.Type {
	case input.Click:
		if len(a.actions.Items) == 0 {
			return
		}
		action := a.actions.Items[a.sel.index]
		a.f.Log.Info().Str("owner", a.detail.ID).Str("action", action.Label).Msg("action")
		a.f.Nav.Back()
	case input.DoubleClick:
		a.f.Nav.Back()
	}
}

func (a *Actions) ViewModel() layout.ViewModel {
	labels := make([]string, len(a.actions.Items))
	for i, it := range a.actions.Items {
		labels[i] = it.Label
	}
	return layout.ViewModel{
		Title: a.actions.Title,
		Containers: []layout.Container{
			detailText(a.detail, false),
			&layout.ListContainer{
				ID:            "actions",
				Title:         a.actions.Title,
				Items:         labels,
				SelectedIndex: a.sel.index,
				EventCapture:  true,
			},
		},
	}
}
