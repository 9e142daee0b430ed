package service

import "fmt"

// DefaultListID is the list opened from the dashboard.
const DefaultListID = "default"

// MockDataService serves static content plus the configured feeds.
type MockDataService struct {
	lists []ListData
	feeds []FeedSource
}

func NewMockDataService(feeds []FeedSource) *MockDataService {
	return &MockDataService{
		lists: []ListData{{
			ID:    DefaultListID,
			Title: "Elemente",
			Items: []ListItem{
				{ID: "item-1", Label: "Element 1"},
				{ID: "item-2", Label: "Element 2"},
				{ID: "item-3", Label: "Element 3"},
			},
		}},
		feeds: feeds,
	}
}

func (m *MockDataService) Dashboard() DashboardData {
	menu := []MenuEntry{{
		Label:  "Liste",
		Kind:   MenuList,
		Target: DefaultListID,
		Hint:   "Click: Liste oeffnen",
	}}
	for _, f := range m.feeds {
		menu = append(menu, MenuEntry{
			Label:  f.Title,
			Kind:   MenuFeed,
			Target: f.ID,
			Hint:   "Click: Feed laden",
		})
	}
	menu = append(menu, MenuEntry{
		Label: "Einkaufsliste",
		Kind:  MenuShopping,
		Hint:  "Click: Einkaufsliste",
	})
	return DashboardData{
		Title:    "EvenHub Prototype",
		Subtitle: "Click: Auswahl\nDoubleClick: Zurueck",
		Menu:     menu,
	}
}

// List falls back to the first list for unknown IDs.
func (m *MockDataService) List(listID string) ListData {
	for _, l := range m.lists {
		if l.ID == listID {
			return l
		}
	}
	return m.lists[0]
}

func (m *MockDataService) Detail(itemID string) DetailData {
	return DetailData{
		ID:          itemID,
		Title:       fmt.Sprintf("Detail %s", itemID),
		Description: "Click: Actions-Layer\nDoubleClick: Zurueck",
	}
}

func (m *MockDataService) Actions(ownerID string) ActionsData {
	return ActionsData{
		OwnerID: ownerID,
		Title:   "Aktionen",
		Items: []ListItem{
			{ID: "action-1", Label: "Start"},
			{ID: "action-2", Label: "Stop"},
			{ID: "action-3", Label: "Reset"},
		},
	}
}

func (m *MockDataService) Feeds() []FeedSource {
	return m.feeds
}

// Feed returns the configured feed with the given ID.
func (m *MockDataService) Feed(id string) (FeedSource, bool) {
	for _, f := range m.feeds {
		if f.ID == id {
			return f, true
		}
	}
	return FeedSource{}, false
}
