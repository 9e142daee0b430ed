package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorText   lipgloss.Color = "#cdd6f4"
	colorMuted  lipgloss.Color = "#a6adc8"
	colorBorder lipgloss.Color = "#585b70"
	colorAccent lipgloss.Color = "#89b4fa"
	colorLens   lipgloss.Color = "#a6e3a1"
	colorSelect lipgloss.Color = "#313244"

	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(colorMuted)
	lensStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorLens)
	selectStyle = lipgloss.NewStyle().Background(colorSelect).Foreground(colorText).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// PageChangedMsg asks the program to redraw after the device page changed
// outside of a key press.
type PageChangedMsg struct{}

var gestureActions = map[string]Gesture{
	ActionUp:          GestureUp,
	ActionDown:        GestureDown,
	ActionClick:       GestureClick,
	ActionDoubleClick: GestureDoubleClick,
}

var gestureNames = map[Gesture]string{
	GestureUp:          "scroll up",
	GestureDown:        "scroll down",
	GestureClick:       "click",
	GestureDoubleClick: "double click",
}

// Model is the bubbletea model of the simulator.
type Model struct {
	device *Device
	keys   *KeyRegistry
	width  int
	height int
	status string
}

func NewModel(device *Device, keys *KeyRegistry) Model {
	if keys == nil {
		keys = DefaultKeyRegistry()
	}
	return Model{device: device, keys: keys, status: "ready"}
}

func (m Model) Init() tea.Cmd { return nil }

// Update performs gestures synchronously so device input reaches the app one
// event at a time.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case PageChangedMsg:
	case tea.KeyMsg:
		action := m.keys.Action(msg)
		switch action {
		case ActionQuit:
			return m, tea.Quit
		case ActionForeground:
			m.device.ToggleForeground()
			m.status = "foreground toggled"
		default:
			if g, ok := gestureActions[action]; ok {
				m.device.Press(g)
				m.status = gestureNames[g]
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	snap := m.device.Snapshot()
	c := draw(snap)
	lines := c.lines()
	if h := c.highlight; h != nil && h.y < len(lines) {
		lines[h.y] = highlightRow(lines[h.y], h.x, h.w)
	}
	header := headerStyle.Render("EvenHub") + statusStyle.Render(fmt.Sprintf("  %dx%d  %s", DisplayWidth, DisplayHeight, m.status))
	if snap.Page != nil {
		header += statusStyle.Render(fmt.Sprintf("  containers %d", snap.Page.ContainerTotalNum))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lensStyle.Render(strings.Join(lines, "\n")),
		helpStyle.Render(m.keys.Help()),
	)
}

func highlightRow(line string, x, w int) string {
	runes := []rune(line)
	if x < 0 || x >= len(runes) {
		return line
	}
	end := min(len(runes), x+w)
	return string(runes[:x]) + selectStyle.Render(string(runes[x:end])) + string(runes[end:])
}
