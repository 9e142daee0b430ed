// Package screens holds the screens of the display app.
package screens

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jask/evenhub/internal/navigation"
	"github.com/jask/evenhub/internal/service"
)

// FeedLoader fetches feed entries.
type FeedLoader interface {
	Fetch(ctx context.Context, src service.FeedSource) ([]service.FeedEntry, error)
}

// ShoppingStore reads and edits the shopping list.
type ShoppingStore interface {
	Items(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, index int) ([]string, error)
}

// Factory builds screens and implements navigation.ScreenFactory. Nav must be
// set before any screen handles input.
type Factory struct {
	Data  service.DataService
	Feeds FeedLoader
	Cart  ShoppingStore
	Stack *navigation.Stack
	Nav   navigation.Navigator
	Log   zerolog.Logger
	Ctx   context.Context

	// Go runs background loads; nil means a new goroutine.
	Go func(func())
}

var _ navigation.ScreenFactory = (*Factory)(nil)

func (f *Factory) context() context.Context {
	if f.Ctx == nil {
		return context.Background()
	}
	return f.Ctx
}

func (f *Factory) spawn(fn func()) {
	if f.Go != nil {
		f.Go(fn)
		return
	}
	go fn()
}

func (f *Factory) List(listID string) navigation.Screen {
	return &List{f: f, listID: listID}
}

func (f *Factory) Detail(itemID string) navigation.Screen {
	return &Detail{f: f, detail: f.Data.Detail(itemID), owned: true}
}

func (f *Factory) Actions(ownerID string) navigation.Screen {
	return &Actions{f: f, detail: f.Data.Detail(ownerID), actions: f.Data.Actions(ownerID)}
}

func (f *Factory) Feed(feedID string) navigation.Screen {
	src := service.FeedSource{ID: feedID, Title: feedID}
	for _, s := range f.Data.Feeds() {
		if s.ID == feedID {
			src = s
			break
		}
	}
	return &Feed{f: f, src: src}
}

func (f *Factory) Shopping() navigation.Screen {
	return &Shopping{f: f}
}

// Dashboard builds the root screen.
func (f *Factory) Dashboard() navigation.Screen {
	return &Dashboard{f: f}
}
