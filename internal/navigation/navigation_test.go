package navigation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/evenhub/internal/input"
	"github.com/jask/evenhub/internal/layout"
)

type stubScreen struct {
	id      string
	entered int
	exited  int
	inputs  []input.EventType
	onInput func(input.Event)
}

func (s *stubScreen) ID() string { return s.id }
func (s *stubScreen) OnEnter()   { s.entered++ }
func (s *stubScreen) OnExit()    { s.exited++ }
func (s *stubScreen) OnInput(ev input.Event) {
	s.inputs = append(s.inputs, ev.Type)
	if s.onInput != nil {
		s.onInput(ev)
	}
}
func (s *stubScreen) ViewModel() layout.ViewModel { return layout.ViewModel{Title: s.id} }

type stubFactory struct{}

func (stubFactory) List(id string) Screen    { return &stubScreen{id: "list:" + id} }
func (stubFactory) Detail(id string) Screen  { return &stubScreen{id: "detail:" + id} }
func (stubFactory) Actions(id string) Screen { return &stubScreen{id: "actions:" + id} }
func (stubFactory) Feed(id string) Screen    { return &stubScreen{id: "feed:" + id} }
func (stubFactory) Shopping() Screen         { return &stubScreen{id: "shopping"} }

func recordRenders(s *Stack) *[]string {
	var rendered []string
	s.SetRenderer(func(screen Screen) { rendered = append(rendered, screen.ID()) })
	return &rendered
}

func TestStackPushPopKeepsRoot(t *testing.T) {
	s := NewStack()
	rendered := recordRenders(s)
	root := &stubScreen{id: "root"}
	child := &stubScreen{id: "child"}

	require.Nil(t, s.Current())
	s.Push(nil)
	require.Equal(t, 0, s.Len())

	s.Push(root)
	s.Push(child)
	require.Equal(t, 2, s.Len())
	require.Same(t, child, s.Current())
	require.Equal(t, 1, child.entered)

	require.Same(t, child, s.Pop())
	require.Equal(t, 1, child.exited)
	require.Nil(t, s.Pop(), "root stays")
	require.Equal(t, 0, root.exited)
	require.Same(t, root, s.Current())

	require.Equal(t, []string{"root", "child", "root"}, *rendered)
}

func TestRenderWithoutRendererIsNoop(t *testing.T) {
	s := NewStack()
	s.Push(&stubScreen{id: "root"})
	s.Render()
	require.Equal(t, 1, s.Len())
}

func TestRenderIfSkipsHiddenScreens(t *testing.T) {
	s := NewStack()
	rendered := recordRenders(s)
	root := &stubScreen{id: "root"}
	s.Push(root)
	s.Push(&stubScreen{id: "top"})
	*rendered = nil

	s.RenderIf(root)
	require.Empty(t, *rendered)
	s.RenderIf(s.Current())
	require.Equal(t, []string{"top"}, *rendered)
}

func TestRouterUsesFactory(t *testing.T) {
	s := NewStack()
	r := NewRouter(s, stubFactory{})
	s.Push(&stubScreen{id: "root"})

	r.ToList("default")
	require.Equal(t, "list:default", s.Current().ID())
	r.ToDetail("item-1")
	require.Equal(t, "detail:item-1", s.Current().ID())
	r.ToActions("item-1")
	require.Equal(t, "actions:item-1", s.Current().ID())
	r.ToFeed("ts")
	require.Equal(t, "feed:ts", s.Current().ID())
	r.ToShopping()
	require.Equal(t, "shopping", s.Current().ID())
	r.Show(&stubScreen{id: "custom"})
	require.Equal(t, 7, s.Len())

	for range 10 {
		r.Back()
	}
	require.Equal(t, "root", s.Current().ID())
}

func TestDispatcherForwardsAndRenders(t *testing.T) {
	s := NewStack()
	rendered := recordRenders(s)
	r := NewRouter(s, stubFactory{})
	root := &stubScreen{id: "root"}
	root.onInput = func(ev input.Event) {
		if ev.Type == input.Click {
			r.ToList("default")
		}
	}
	s.Push(root)
	d := NewDispatcher(s, zerolog.Nop())

	d.Dispatch(input.Event{Type: input.Down})
	d.Dispatch(input.Event{Type: input.Click})
	require.Equal(t, []input.EventType{input.Down, input.Click}, root.inputs)
	require.Equal(t, "list:default", s.Current().ID())
	require.Equal(t, []string{"root", "root", "list:default", "list:default"}, *rendered)
}

func TestDispatcherWithoutScreen(t *testing.T) {
	d := NewDispatcher(NewStack(), zerolog.Nop())
	require.NotPanics(t, func() { d.Dispatch(input.Event{Type: input.Click}) })
}
