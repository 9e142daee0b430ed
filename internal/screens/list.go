package screens

import (
	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
)

// List shows one data list; Click opens the selected item.
type List struct {
	f      *Factory
	listID string
	sel    cursor
}

func (l *List) ID() string { return "list:" + l.listID }
func (l *List) OnEnter()   { l.f.Log.Info().Str("list", l.listID).Msg("enter list") }
func (l *List) OnExit()    { l.f.Log.Info().Str("list", l.listID).Msg("exit list") }

func (l *List) OnInput(ev input.Event) {
	list := l.f.Data.List(l.listID)
	l.sel.move(ev, len(list.Items))
	switch ev.Type {
	case input.Click:
		if len(list.Items) > 0 {
			l.f.Nav.ToDetail(list.Items[l.sel.index].ID)
		}
	case input.DoubleClick:
		l.f.Nav.Back()
	}
}

func (l *List) ViewModel() layout.ViewModel {
	list := l.f.Data.List(l.listID)
	labels := make([]string, len(list.Items))
	for i, it := range list.Items {
		labels[i] = it.Label
	}
	return layout.ViewModel{
		Title: list.Title,
		Containers: []layout.Container{
			&layout.ListContainer{
				ID:            "list",
				Title:         list.Title,
				Items:         labels,
				SelectedIndex: l.sel.index,
				EventCapture:  true,
			},
		},
	}
}
