package service

// DashboardData is the content of the start screen.
type DashboardData struct {
	Title    string
	Subtitle string
	Menu     []MenuEntry
}

// MenuKind selects where a dashboard entry navigates to.
type MenuKind string

const (
	MenuList     MenuKind = "list"
	MenuFeed     MenuKind = "feed"
	MenuShopping MenuKind = "shopping"
)

// MenuEntry is one dashboard menu line. Target is a list or feed ID.
type MenuEntry struct {
	Label  string
	Kind   MenuKind
	Target string
	Hint   string
}

type ListItem struct {
	ID    string
	Label string
}

type ListData struct {
	ID    string
	Title string
	Items []ListItem
}

type DetailData struct {
	ID          string
	Title       string
	Description string
}

type ActionsData struct {
	OwnerID string
	Title   string
	Items   []ListItem
}

// DataService supplies screen content. Implementations never fail: unknown
// IDs resolve to a fallback.
type DataService interface {
	Dashboard() DashboardData
	List(listID string) ListData
	Detail(itemID string) DetailData
	Actions(ownerID string) ActionsData
	Feeds() []FeedSource
}
