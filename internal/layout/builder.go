package layout

// Device capacity limits.
const (
	MaxListItems         = 20
	MaxListItemLength    = 64
	EmptyListPlaceholder = "Keine Eintraege verfuegbar."

	minItemWidth   = 20
	itemWidthInset = 11
	ellipsis       = "..."
)

type geometry struct {
	x, y, width, height int
	border, radius, pad int
}

// resolvedMode is the geometry mode after checking which kinds are present.
type resolvedMode int

const (
	resolvedSingle resolvedMode = iota
	resolvedStacked
	resolvedTwoColumn
	resolvedListFooter
)

var geometryTable = map[resolvedMode]map[kind]geometry{
	resolvedSingle: {
		kindText: {x: 0, y: 0, width: 576, height: 288},
		kindList: {x: 0, y: 0, width: 576, height: 288},
	},
	resolvedStacked: {
		kindText: {x: 0, y: 0, width: 576, height: 96},
		kindList: {x: 0, y: 96, width: 576, height: 192},
	},
	resolvedTwoColumn: {
		kindText: {x: 288, y: 0, width: 288, height: 288, border: 1, radius: 4, pad: 6},
		kindList: {x: 0, y: 0, width: 280, height: 288},
	},
	resolvedListFooter: {
		kindText: {x: 488, y: 264, width: 88, height: 24},
		kindList: {x: 0, y: 0, width: 576, height: 288},
	},
}

// Builder maps view models to device payloads for a fixed set of container
// identities.
type Builder struct {
	ids ContainerIDs
}

// NewBuilder returns a Builder that stamps the given identities on every
// emitted descriptor.
func NewBuilder(ids ContainerIDs) *Builder {
	return &Builder{ids: ids}
}

// BuildLayout builds a payload using DefaultContainerIDs.
func BuildLayout(vm ViewModel) Payload {
	return NewBuilder(DefaultContainerIDs).Build(vm)
}

// Build is pure and total: every view model yields a payload that fits the
// device, with at most one event-capturing container.
func (b *Builder) Build(vm ViewModel) Payload {
	mode := resolveMode(vm)
	var (
		texts    []TextObject
		lists    []ListObject
		captured bool
	)
	for _, c := range vm.Containers {
		if !present(c) {
			continue
		}
		capture := 0
		if c.capturesEvents() && !captured {
			capture = 1
			captured = true
		}
		g := geometryTable[mode][c.kind()]
		switch typed := c.(type) {
		case *TextContainer:
			texts = append(texts, TextObject{
				XPosition:      g.x,
				YPosition:      g.y,
				Width:          g.width,
				Height:         g.height,
				BorderWidth:    g.border,
				BorderRadius:   g.radius,
				PaddingLength:  g.pad,
				ContainerID:    b.ids.Text.ID,
				ContainerName:  b.ids.Text.Name,
				Content:        typed.Content,
				IsEventCapture: capture,
			})
		case *ListContainer:
			items := normalizeItems(typed.Items)
			lists = append(lists, ListObject{
				XPosition:      g.x,
				YPosition:      g.y,
				Width:          g.width,
				Height:         g.height,
				ContainerID:    b.ids.List.ID,
				ContainerName:  b.ids.List.Name,
				IsEventCapture: capture,
				ItemContainer: ItemContainer{
					ItemCount:            len(items),
					ItemWidth:            max(minItemWidth, g.width-itemWidthInset),
					IsItemSelectBorderEn: 1,
					ItemName:             items,
				},
			})
		}
	}
	return Payload{
		TextObject:        texts,
		ListObject:        lists,
		ContainerTotalNum: len(texts) + len(lists),
	}
}

func resolveMode(vm ViewModel) resolvedMode {
	var hasText, hasList bool
	for _, c := range vm.Containers {
		if !present(c) {
			continue
		}
		switch c.kind() {
		case kindText:
			hasText = true
		case kindList:
			hasList = true
		}
	}
	if !hasText || !hasList {
		return resolvedSingle
	}
	switch vm.LayoutMode {
	case ModeTwoColumn:
		return resolvedTwoColumn
	case ModeListFooter:
		return resolvedListFooter
	default:
		return resolvedStacked
	}
}

// present reports whether c holds a non-nil container.
func present(c Container) bool {
	switch typed := c.(type) {
	case *TextContainer:
		return typed != nil
	case *ListContainer:
		return typed != nil
	default:
		return false
	}
}

func normalizeItems(items []string) []string {
	if len(items) == 0 {
		return []string{EmptyListPlaceholder}
	}
	if len(items) > MaxListItems {
		items = items[:MaxListItems]
	}
	out := make([]string, len(items))
	for i, label := range items {
		out[i] = truncateLabel(label)
	}
	return out
}

// truncateLabel counts runes so multi-byte labels are never split mid-rune.
func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= MaxListItemLength {
		return label
	}
	return string(runes[:MaxListItemLength-len(ellipsis)]) + ellipsis
}
