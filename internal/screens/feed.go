package screens

import (
	"fmt"
	"sync"

	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
	"github.com/jask/evenhub/internal/service"
)

const (
	feedLoading     = "Lade Feed..."
	feedUnavailable = "Feed nicht erreichbar."
)

// Feed lists the entries of one RSS feed in pages of the device's list
// capacity. Scrolling past either end of a page turns the page; a footer
// shows "page/total".
type Feed struct {
	f   *Factory
	src service.FeedSource

	mu      sync.Mutex
	loading bool
	failed  bool
	entries []service.FeedEntry
	page    int
	sel     cursor
}

func (s *Feed) ID() string { return "feed:" + s.src.ID }

// OnEnter starts loading the feed in the background; the screen re-renders
// once entries arrive.
func (s *Feed) OnEnter() {
	s.f.Log.Info().Str("feed", s.src.ID).Msg("enter feed")
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.f.spawn(s.load)
}

func (s *Feed) OnExit() { s.f.Log.Info().Str("feed", s.src.ID).Msg("exit feed") }

func (s *Feed) load() {
	entries, err := s.f.Feeds.Fetch(s.f.context(), s.src)
	s.mu.Lock()
	s.loading = false
	s.failed = err != nil
	s.entries = entries
	s.page = 0
	s.sel.reset()
	s.mu.Unlock()
	if err != nil {
		s.f.Log.Error().Err(err).Str("feed", s.src.ID).Msg("feed load failed")
	}
	if s.f.Stack != nil {
		s.f.Stack.RenderIf(s)
	}
}

func (s *Feed) OnInput(ev input.Event) {
	if ev.Type == input.DoubleClick {
		s.f.Nav.Back()
		return
	}
	s.mu.Lock()
	if s.loading || len(s.entries) == 0 {
		s.mu.Unlock()
		return
	}
	page := s.pageEntries()
	pinned := s.sel.move(ev, len(page))
	switch {
	case pinned && ev.Type == input.Down && s.page < s.pages()-1:
		s.page++
		s.sel.reset()
	case pinned && ev.Type == input.Up && s.page > 0:
		s.page--
		s.sel.reset()
	}
	var open *service.FeedEntry
	if ev.Type == input.Click {
		entry := page[s.sel.index]
		open = &entry
	}
	s.mu.Unlock()

	if open != nil {
		s.f.Nav.Show(s.f.NewDetail(service.DetailData{
			ID:          open.ID,
			Title:       open.Title,
			Description: open.Summary,
		}))
	}
}

func (s *Feed) ViewModel() layout.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	var labels []string
	status := "-"
	switch {
	case s.loading:
		labels = []string{feedLoading}
	case len(s.entries) == 0 && s.failed:
		labels = []string{feedUnavailable}
	default:
		for _, e := range s.pageEntries() {
			labels = append(labels, e.Title)
		}
		if len(s.entries) > 0 {
			status = fmt.Sprintf("%d/%d", s.page+1, s.pages())
		}
	}
	return layout.ViewModel{
		Title:      s.src.Title,
		LayoutMode: layout.ModeListFooter,
		Containers: []layout.Container{
			&layout.ListContainer{
				ID:            "rss-list",
				Title:         s.src.Title,
				Items:         labels,
				SelectedIndex: s.sel.index,
				EventCapture:  true,
			},
			&layout.TextContainer{ID: "rss-page-status", Content: status},
		},
	}
}

func (s *Feed) pages() int {
	return (len(s.entries) + layout.MaxListItems - 1) / layout.MaxListItems
}

func (s *Feed) pageEntries() []service.FeedEntry {
	start := s.page * layout.MaxListItems
	if start >= len(s.entries) {
		return nil
	}
	end := min(start+layout.MaxListItems, len(s.entries))
	return s.entries[start:end]
}
