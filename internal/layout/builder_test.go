package layout

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTwoColumnGeometry(t *testing.T) {
	vm := ViewModel{
		Title:      "Dashboard",
		LayoutMode: ModeTwoColumn,
		Containers: []Container{
			&ListContainer{ID: "dashboard-list", Items: []string{"RSS-Feeds", "Shopping List"}, EventCapture: true},
			&TextContainer{ID: "dashboard-info", Content: "Info"},
		},
	}
	got := BuildLayout(vm)

	want := Payload{
		TextObject: []TextObject{{
			XPosition: 288, YPosition: 0, Width: 288, Height: 288,
			BorderWidth: 1, BorderRadius: 4, PaddingLength: 6,
			ContainerID: 1, ContainerName: "main-text", Content: "Info",
		}},
		ListObject: []ListObject{{
			XPosition: 0, YPosition: 0, Width: 280, Height: 288,
			ContainerID: 2, ContainerName: "main-list", IsEventCapture: 1,
			ItemContainer: ItemContainer{
				ItemCount: 2, ItemWidth: 269, IsItemSelectBorderEn: 1,
				ItemName: []string{"RSS-Feeds", "Shopping List"},
			},
		}},
		ContainerTotalNum: 2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestListFooterGeometry(t *testing.T) {
	vm := ViewModel{
		LayoutMode: ModeListFooter,
		Containers: []Container{
			&ListContainer{Items: []string{"Eintrag 1", "Eintrag 2"}, EventCapture: true},
			&TextContainer{Content: "1/2"},
		},
	}
	got := BuildLayout(vm)
	require.Equal(t, 2, got.ContainerTotalNum)

	list := got.ListObject[0]
	require.Equal(t, [4]int{0, 0, 576, 288}, [4]int{list.XPosition, list.YPosition, list.Width, list.Height})
	require.Equal(t, 1, list.IsEventCapture)
	require.Equal(t, 565, list.ItemContainer.ItemWidth)

	text := got.TextObject[0]
	require.Equal(t, [4]int{488, 264, 88, 24}, [4]int{text.XPosition, text.YPosition, text.Width, text.Height})
	require.Zero(t, text.BorderWidth)
	require.Zero(t, text.IsEventCapture)
	require.Equal(t, "1/2", text.Content)
}

func TestStackedSplitFallback(t *testing.T) {
	for _, mode := range []Mode{ModeStackedSplit, "unknown"} {
		vm := ViewModel{
			LayoutMode: mode,
			Containers: []Container{
				&TextContainer{Content: "Top"},
				&ListContainer{Items: []string{"A"}, EventCapture: true},
			},
		}
		got := BuildLayout(vm)
		text, list := got.TextObject[0], got.ListObject[0]
		require.Equal(t, [4]int{0, 0, 576, 96}, [4]int{text.XPosition, text.YPosition, text.Width, text.Height}, "mode %q", mode)
		require.Equal(t, [4]int{0, 96, 576, 192}, [4]int{list.XPosition, list.YPosition, list.Width, list.Height}, "mode %q", mode)
		require.Zero(t, text.BorderWidth)
	}
}

func TestRequestedModeNeedsBothKinds(t *testing.T) {
	text := BuildLayout(ViewModel{
		LayoutMode: ModeTwoColumn,
		Containers: []Container{&TextContainer{Content: "only text", EventCapture: true}},
	})
	require.Nil(t, text.ListObject)
	require.Len(t, text.TextObject, 1)
	got := text.TextObject[0]
	require.Equal(t, [4]int{0, 0, 576, 288}, [4]int{got.XPosition, got.YPosition, got.Width, got.Height})
	require.Zero(t, got.BorderWidth, "two-column borders only apply when honored")

	list := BuildLayout(ViewModel{
		LayoutMode: ModeListFooter,
		Containers: []Container{&ListContainer{Items: []string{"x"}}},
	})
	require.Nil(t, list.TextObject)
	l := list.ListObject[0]
	require.Equal(t, [4]int{0, 0, 576, 288}, [4]int{l.XPosition, l.YPosition, l.Width, l.Height})
}

func TestEventCaptureFirstEligibleWins(t *testing.T) {
	vm := ViewModel{
		LayoutMode: ModeTwoColumn,
		Containers: []Container{
			&TextContainer{Content: "Info", EventCapture: true},
			&ListContainer{Items: []string{"RSS-Feeds"}, EventCapture: true},
		},
	}
	got := BuildLayout(vm)
	require.Equal(t, 1, got.TextObject[0].IsEventCapture)
	require.Equal(t, 0, got.ListObject[0].IsEventCapture)

	vm.Containers = []Container{
		&TextContainer{Content: "no capture"},
		&ListContainer{Items: []string{"a"}},
	}
	got = BuildLayout(vm)
	require.Zero(t, got.TextObject[0].IsEventCapture)
	require.Zero(t, got.ListObject[0].IsEventCapture)
}

func TestListCapacity(t *testing.T) {
	items := make([]string, 25)
	for i := range items {
		items[i] = fmt.Sprintf("Item %d", i+1)
	}
	got := BuildLayout(ViewModel{Containers: []Container{&ListContainer{Items: items}}})
	names := got.ListObject[0].ItemContainer.ItemName
	require.Len(t, names, MaxListItems)
	require.Equal(t, "Item 20", names[len(names)-1])
	require.Equal(t, MaxListItems, got.ListObject[0].ItemContainer.ItemCount)
	require.Len(t, items, 25, "input must not be modified")
}

func TestEmptyListPlaceholder(t *testing.T) {
	got := BuildLayout(ViewModel{Containers: []Container{&ListContainer{}}})
	ic := got.ListObject[0].ItemContainer
	require.Equal(t, 1, ic.ItemCount)
	require.Equal(t, []string{"Keine Eintraege verfuegbar."}, ic.ItemName)
}

func TestLongLabelTruncation(t *testing.T) {
	got := BuildLayout(ViewModel{Containers: []Container{
		&ListContainer{Items: []string{strings.Repeat("A", 100), strings.Repeat("B", 64), strings.Repeat("ü", 70)}},
	}})
	names := got.ListObject[0].ItemContainer.ItemName
	require.Len(t, names[0], 64)
	require.True(t, strings.HasSuffix(names[0], "..."))
	require.Equal(t, strings.Repeat("B", 64), names[1])
	require.Equal(t, 64, len([]rune(names[2])))
	require.Equal(t, strings.Repeat("ü", 61)+"...", names[2])
}

func TestContainerTotalNum(t *testing.T) {
	views := []ViewModel{
		{},
		{Containers: []Container{&TextContainer{}}},
		{Containers: []Container{&ListContainer{}, &ListContainer{}}},
		{Containers: []Container{&TextContainer{}, nil, (*ListContainer)(nil), &ListContainer{}}},
		{LayoutMode: ModeListFooter, Containers: []Container{&ListContainer{}, &TextContainer{}, &TextContainer{}}},
	}
	for i, vm := range views {
		got := BuildLayout(vm)
		require.Equal(t, len(got.TextObject)+len(got.ListObject), got.ContainerTotalNum, "view %d", i)
	}
}

func TestPayloadWireShape(t *testing.T) {
	got := NewBuilder(ContainerIDs{
		Text: Identity{ID: 7, Name: "status"},
		List: Identity{ID: 8, Name: "feed"},
	}).Build(ViewModel{Containers: []Container{&TextContainer{Content: "hi", EventCapture: true}}})

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"textObject": [{
			"xPosition": 0, "yPosition": 0, "width": 576, "height": 288,
			"borderWidth": 0, "borderRdaius": 0, "paddingLength": 0,
			"containerID": 7, "containerName": "status",
			"content": "hi", "isEventCapture": 1
		}],
		"containerTotalNum": 1
	}`, string(raw))
}
