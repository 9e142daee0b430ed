// Package app wires the bridge, render pipeline and screens into the
// running display app.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jask/evenhub/internal/bridge"
	"github.com/jask/evenhub/internal/layout"
	"github.com/jask/evenhub/internal/navigation"
	"github.com/jask/evenhub/internal/render"
	"github.com/jask/evenhub/internal/screens"
	"github.com/jask/evenhub/internal/service"
)

// Services are the content sources of the app.
type Services struct {
	Data     service.DataService
	Feeds    screens.FeedLoader
	Shopping screens.ShoppingStore
}

// Controller owns one app session on one bridge.
type Controller struct {
	adapter  *bridge.Adapter
	builder  *layout.Builder
	services Services
	log      zerolog.Logger

	stack    *navigation.Stack
	pipeline *render.Pipeline
}

func New(handshake bridge.Handshake, ids layout.ContainerIDs, services Services, log zerolog.Logger) *Controller {
	return &Controller{
		adapter:  bridge.New(handshake, bridge.WithLogger(log.With().Str("component", "bridge").Logger())),
		builder:  layout.NewBuilder(ids),
		services: services,
		log:      log,
	}
}

// Start connects the bridge, shows the dashboard and starts handling input.
// ctx bounds the handshake and is used for all later device and data calls.
func (c *Controller) Start(ctx context.Context) error {
	c.log.Info().Msg("app starting")
	if err := c.adapter.Connect(ctx); err != nil {
		return fmt.Errorf("connect bridge: %w", err)
	}
	c.pipeline = render.New(c.adapter, c.builder, c.log.With().Str("component", "render").Logger())
	c.stack = navigation.NewStack()

	factory := &screens.Factory{
		Data:  c.services.Data,
		Feeds: c.services.Feeds,
		Cart:  c.services.Shopping,
		Stack: c.stack,
		Log:   c.log.With().Str("component", "screens").Logger(),
		Ctx:   ctx,
	}
	factory.Nav = navigation.NewRouter(c.stack, factory)

	c.stack.SetRenderer(func(s navigation.Screen) {
		op, err := c.pipeline.Render(ctx, s.ViewModel())
		if err != nil {
			c.log.Error().Err(err).Str("screen", s.ID()).Stringer("op", op).Msg("render failed")
			return
		}
		c.log.Debug().Str("screen", s.ID()).Stringer("op", op).Msg("rendered")
	})
	c.stack.Push(factory.Dashboard())

	dispatcher := navigation.NewDispatcher(c.stack, c.log.With().Str("component", "input").Logger())
	c.adapter.OnInput(dispatcher.Dispatch)
	return nil
}

// Stop disconnects the bridge. A later Start creates a fresh startup page.
func (c *Controller) Stop() {
	c.adapter.Disconnect()
	if c.pipeline != nil {
		c.pipeline.Reset()
	}
}

// Current returns the screen on top of the stack.
func (c *Controller) Current() navigation.Screen {
	if c.stack == nil {
		return nil
	}
	return c.stack.Current()
}
