package screens

import (
	"fmt"

	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
	"github.com/jask/evenhub/internal/service"
)

// Detail shows a single item as text. Click opens its actions.
type Detail struct {
	f      *Factory
	detail service.DetailData
	// owned details come from the data service and route actions by ID.
	owned bool
}

// NewDetail returns a detail screen for content that is not served by the
// data service, such as a feed entry.
func (f *Factory) NewDetail(detail service.DetailData) *Detail {
	return &Detail{f: f, detail: detail}
}

func (d *Detail) ID() string { return "detail:" + d.detail.ID }
func (d *Detail) OnEnter()   { d.f.Log.Info().Str("item", d.detail.ID).Msg("enter detail") }
func (d *Detail) OnExit()    { d.f.Log.Info().Str("item", d.detail.ID).Msg("exit detail") }

func (d *Detail) OnInput(ev input.Event) {
	switch ev.Type {
	case input.Click:
		if d.owned {
			d.f.Nav.ToActions(d.detail.ID)
			return
		}
		d.f.Nav.Show(&Actions{f: d.f, detail: d.detail, actions: d.f.Data.Actions(d.detail.ID)})
	case input.DoubleClick:
		d.f.Nav.Back()
	}
}

func (d *Detail) ViewModel() layout.ViewModel {
	return layout.ViewModel{
		Title:      "Detail",
		Containers: []layout.Container{detailText(d.detail, true)},
	}
}

func detailText(d service.DetailData, capture bool) *layout.TextContainer {
	return &layout.TextContainer{
		ID:           "detail",
		Content:      fmt.Sprintf("Detail\n\n%s\n\n%s\n\nClick: Actions", d.Title, d.Description),
		EventCapture: capture,
	}
}
