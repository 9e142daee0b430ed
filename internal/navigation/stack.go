package navigation

import "sync"

// Renderer draws a screen on the device.
type Renderer func(Screen)

// Stack holds the screen history. The first pushed screen is the root and
// is never popped.
type Stack struct {
	mu     sync.Mutex
	items  []Screen
	render Renderer
}

func NewStack() *Stack { return &Stack{} }

func (s *Stack) SetRenderer(r Renderer) {
	s.mu.Lock()
	s.render = r
	s.mu.Unlock()
}

// Push enters screen and renders it.
func (s *Stack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.mu.Lock()
	s.items = append(s.items, screen)
	s.mu.Unlock()
	screen.OnEnter()
	s.Render()
}

// Pop exits the top screen and renders the one below. It returns nil when
// only the root is left.
func (s *Stack) Pop() Screen {
	s.mu.Lock()
	if len(s.items) <= 1 {
		s.mu.Unlock()
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	s.mu.Unlock()
	last.OnExit()
	s.Render()
	return last
}

func (s *Stack) Current() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Render draws the current screen. It is a no-op without a renderer or screen.
func (s *Stack) Render() {
	s.mu.Lock()
	render := s.render
	var top Screen
	if len(s.items) > 0 {
		top = s.items[len(s.items)-1]
	}
	s.mu.Unlock()
	if render == nil || top == nil {
		return
	}
	render(top)
}

// RenderIf draws screen only while it is on top. Background work uses it to
// refresh a screen that may have been left meanwhile.
func (s *Stack) RenderIf(screen Screen) {
	if s.Current() == screen {
		s.Render()
	}
}
