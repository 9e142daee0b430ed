package layout

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type viewFile struct {
	Title      string          `yaml:"title"`
	Layout     string          `yaml:"layout"`
	Containers []containerFile `yaml:"containers"`
}

type containerFile struct {
	Type     string   `yaml:"type"`
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	Items    []string `yaml:"items"`
	Selected int      `yaml:"selected"`
	Capture  bool     `yaml:"capture"`
}

// LoadViewModel decodes a YAML view description:
//
//	title: RSS
//	layout: list-footer
//	containers:
//	  - type: list
//	    items: [First, Second]
//	    capture: true
//	  - type: text
//	    content: 1/2
func LoadViewModel(r io.Reader) (ViewModel, error) {
	var f viewFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return ViewModel{}, fmt.Errorf("decode view: %w", err)
	}
	vm := ViewModel{Title: f.Title}
	switch Mode(strings.TrimSpace(f.Layout)) {
	case ModeStackedSplit, "stacked-split":
		vm.LayoutMode = ModeStackedSplit
	case ModeTwoColumn:
		vm.LayoutMode = ModeTwoColumn
	case ModeListFooter:
		vm.LayoutMode = ModeListFooter
	default:
		return ViewModel{}, fmt.Errorf("unknown layout %q", f.Layout)
	}
	for i, c := range f.Containers {
		switch strings.ToLower(strings.TrimSpace(c.Type)) {
		case "text":
			vm.Containers = append(vm.Containers, &TextContainer{ID: c.ID, Content: c.Content, EventCapture: c.Capture})
		case "list":
			vm.Containers = append(vm.Containers, &ListContainer{
				ID:            c.ID,
				Title:         c.Title,
				Items:         c.Items,
				SelectedIndex: c.Selected,
				EventCapture:  c.Capture,
			})
		default:
			return ViewModel{}, fmt.Errorf("container %d: unknown type %q", i, c.Type)
		}
	}
	return vm, nil
}
