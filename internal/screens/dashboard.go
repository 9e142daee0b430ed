package screens

import (
	"fmt"

	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
	"github.com/jask/evenhub/internal/service"
)

// Dashboard is the root screen: a menu list beside an info text that
// describes the selected entry.
type Dashboard struct {
	f   *Factory
	sel cursor
}

func (d *Dashboard) ID() string { return "dashboard" }
func (d *Dashboard) OnEnter()   { d.f.Log.Info().Msg("enter dashboard") }
func (d *Dashboard) OnExit()    { d.f.Log.Info().Msg("exit dashboard") }

func (d *Dashboard) OnInput(ev input.Event) {
	menu := d.f.Data.Dashboard().Menu
	d.sel.move(ev, len(menu))
	if ev.Type != input.Click || len(menu) == 0 {
		return
	}
	entry := menu[d.sel.index]
	switch entry.Kind {
	case service.MenuList:
		d.f.Nav.ToList(entry.Target)
	case service.MenuFeed:
		d.f.Nav.ToFeed(entry.Target)
	case service.MenuShopping:
		d.f.Nav.ToShopping()
	}
}

func (d *Dashboard) ViewModel() layout.ViewModel {
	data := d.f.Data.Dashboard()
	labels := make([]string, len(data.Menu))
	for i, e := range data.Menu {
		labels[i] = e.Label
	}
	hint := ""
	if len(data.Menu) > 0 {
		hint = data.Menu[clamp(d.sel.index, 0, len(data.Menu)-1)].Hint
	}
	return layout.ViewModel{
		Title:      "Dashboard",
		LayoutMode: layout.ModeTwoColumn,
		Containers: []layout.Container{
			&layout.ListContainer{
				ID:            "menu",
				Title:         data.Title,
				Items:         labels,
				SelectedIndex: d.sel.index,
				EventCapture:  true,
			},
			&layout.TextContainer{
				ID:      "info",
				Content: fmt.Sprintf("%s\n\n%s\n\n%s", data.Title, data.Subtitle, hint),
			},
		},
	}
}
