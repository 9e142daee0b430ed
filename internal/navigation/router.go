package navigation

// ScreenFactory builds the screens a Router navigates to.
type ScreenFactory interface {
	List(listID string) Screen
	Detail(itemID string) Screen
	Actions(ownerID string) Screen
	Feed(feedID string) Screen
	Shopping() Screen
}

// Navigator is the navigation surface handed to screens.
type Navigator interface {
	ToList(listID string)
	ToDetail(itemID string)
	ToActions(ownerID string)
	ToFeed(feedID string)
	ToShopping()
	Show(screen Screen)
	Back()
}

// Router pushes factory-built screens onto a Stack.
type Router struct {
	stack   *Stack
	factory ScreenFactory
}

func NewRouter(stack *Stack, factory ScreenFactory) *Router {
	return &Router{stack: stack, factory: factory}
}

func (r *Router) ToList(listID string)     { r.stack.Push(r.factory.List(listID)) }
func (r *Router) ToDetail(itemID string)   { r.stack.Push(r.factory.Detail(itemID)) }
func (r *Router) ToActions(ownerID string) { r.stack.Push(r.factory.Actions(ownerID)) }
func (r *Router) ToFeed(feedID string)     { r.stack.Push(r.factory.Feed(feedID)) }
func (r *Router) ToShopping()              { r.stack.Push(r.factory.Shopping()) }

// Show pushes a screen built by the caller.
func (r *Router) Show(screen Screen) { r.stack.Push(screen) }

func (r *Router) Back() { r.stack.Pop() }
