package screens

import (
	"fmt"

	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
)

// Shopping shows the stored shopping list. Click checks off the selected item.
type Shopping struct {
	f     *Factory
	items []string
	err   error
	sel   cursor
}

func (s *Shopping) ID() string { return "shopping" }

func (s *Shopping) OnEnter() {
	s.f.Log.Info().Msg("enter shopping list")
	s.items, s.err = s.f.Cart.Items(s.f.context())
	if s.err != nil {
		s.f.Log.Error().Err(s.err).Msg("shopping list load failed")
	}
}

func (s *Shopping) OnExit() { s.f.Log.Info().Msg("exit shopping list") }

func (s *Shopping) OnInput(ev input.Event) {
	s.sel.move(ev, len(s.items))
	switch ev.Type {
	case input.Click:
		if len(s.items) == 0 {
			return
		}
		items, err := s.f.Cart.Remove(s.f.context(), s.sel.index)
		if err != nil {
			s.f.Log.Error().Err(err).Msg("shopping list update failed")
			return
		}
		s.items = items
		// the rebuilt list starts at the top again
		s.sel.reset()
	case input.DoubleClick:
		s.f.Nav.Back()
	}
}

func (s *Shopping) ViewModel() layout.ViewModel {
	status := fmt.Sprintf("%d offen", len(s.items))
	if s.err != nil {
		status = "Fehler"
	}
	return layout.ViewModel{
		Title:      "Einkaufsliste",
		LayoutMode: layout.ModeListFooter,
		Containers: []layout.Container{
			&layout.ListContainer{
				ID:            "shopping",
				Title:         "Einkaufsliste",
				Items:         s.items,
				SelectedIndex: s.sel.index,
				EventCapture:  true,
			},
			&layout.TextContainer{ID: "shopping-status", Content: status},
		},
	}
}
