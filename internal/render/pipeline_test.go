package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/evenhub/internal/bridge"
	"github.com/jask/evenhub/internal/layout"
)

type recorder struct {
	creates  []bridge.StartupPayload
	rebuilds []bridge.RebuildPayload
	upgrades []bridge.TextUpgrade

	failCreate  bool
	failRebuild bool
	failUpgrade bool
}

func (r *recorder) CreateStartup(_ context.Context, p bridge.StartupPayload) bool {
	r.creates = append(r.creates, p)
	return !r.failCreate
}

func (r *recorder) Rebuild(_ context.Context, p bridge.RebuildPayload) bool {
	r.rebuilds = append(r.rebuilds, p)
	return !r.failRebuild
}

func (r *recorder) UpdateText(_ context.Context, u bridge.TextUpgrade) bool {
	r.upgrades = append(r.upgrades, u)
	return !r.failUpgrade
}

func dashboard(info string) layout.ViewModel {
	return layout.ViewModel{
		Title:      "Dashboard",
		LayoutMode: layout.ModeTwoColumn,
		Containers: []layout.Container{
			&layout.ListContainer{ID: "menu", Items: []string{"Liste", "Feed"}, EventCapture: true},
			&layout.TextContainer{ID: "info", Content: info},
		},
	}
}

func TestFirstRenderCreatesStartupPage(t *testing.T) {
	t.Parallel()
	dev := &recorder{}
	p := New(dev, nil, zerolog.Nop())

	op, err := p.Render(context.Background(), dashboard("a"))
	require.NoError(t, err)
	require.Equal(t, OpCreate, op)
	require.Len(t, dev.creates, 1)
	require.Empty(t, dev.rebuilds)

	op, err = p.Render(context.Background(), dashboard("a"))
	require.NoError(t, err)
	require.Equal(t, OpNone, op, "unchanged pages are not resent")
	require.Len(t, dev.creates, 1)
}

func TestTextOnlyChangeUpgradesInPlace(t *testing.T) {
	t.Parallel()
	dev := &recorder{}
	p := New(dev, nil, zerolog.Nop())
	ctx := context.Background()

	_, err := p.Render(ctx, dashboard("Liste oeffnen"))
	require.NoError(t, err)
	op, err := p.Render(ctx, dashboard("Feld öffnen"))
	require.NoError(t, err)
	require.Equal(t, OpUpgrade, op)
	require.Empty(t, dev.rebuilds)

	want := []bridge.TextUpgrade{{
		ContainerID:   layout.DefaultContainerIDs.Text.ID,
		ContainerName: layout.DefaultContainerIDs.Text.Name,
		ContentOffset: 0,
		ContentLength: 11,
		Content:       "Feld öffnen",
	}}
	if diff := cmp.Diff(want, dev.upgrades); diff != "" {
		t.Fatalf("upgrades mismatch (-want +got):\n%s", diff)
	}
}

func TestStructureChangeRebuilds(t *testing.T) {
	t.Parallel()
	dev := &recorder{}
	p := New(dev, nil, zerolog.Nop())
	ctx := context.Background()

	_, err := p.Render(ctx, dashboard("a"))
	require.NoError(t, err)

	list := layout.ViewModel{Containers: []layout.Container{
		&layout.ListContainer{ID: "l", Items: []string{"x"}, EventCapture: true},
	}}
	op, err := p.Render(ctx, list)
	require.NoError(t, err)
	require.Equal(t, OpRebuild, op)

	changedItems := dashboard("a")
	changedItems.Containers[0].(*layout.ListContainer).Items = []string{"Liste"}
	_, err = p.Render(ctx, dashboard("a"))
	require.NoError(t, err)
	op, err = p.Render(ctx, changedItems)
	require.NoError(t, err)
	require.Equal(t, OpRebuild, op, "list changes need a rebuild")
	require.Len(t, dev.rebuilds, 3)
	require.Empty(t, dev.upgrades)
}

func TestDuplicateTextIDsRebuild(t *testing.T) {
	t.Parallel()
	dev := &recorder{}
	p := New(dev, nil, zerolog.Nop())
	ctx := context.Background()

	two := func(a, b string) layout.ViewModel {
		return layout.ViewModel{Containers: []layout.Container{
			&layout.TextContainer{ID: "a", Content: a},
			&layout.TextContainer{ID: "b", Content: b},
		}}
	}
	_, err := p.Render(ctx, two("1", "2"))
	require.NoError(t, err)
	op, err := p.Render(ctx, two("1", "3"))
	require.NoError(t, err)
	require.Equal(t, OpRebuild, op)
	require.Empty(t, dev.upgrades)
}

func TestRefusedUpgradeFallsBackToRebuild(t *testing.T) {
	t.Parallel()
	dev := &recorder{failUpgrade: true}
	p := New(dev, nil, zerolog.Nop())
	ctx := context.Background()

	_, err := p.Render(ctx, dashboard("a"))
	require.NoError(t, err)
	op, err := p.Render(ctx, dashboard("b"))
	require.NoError(t, err)
	require.Equal(t, OpRebuild, op)
	require.Len(t, dev.upgrades, 1)
	require.Len(t, dev.rebuilds, 1)
}

func TestFailedCreateIsRetried(t *testing.T) {
	t.Parallel()
	dev := &recorder{failCreate: true}
	p := New(dev, nil, zerolog.Nop())
	ctx := context.Background()

	op, err := p.Render(ctx, dashboard("a"))
	require.ErrorIs(t, err, ErrRejected)
	require.Equal(t, OpCreate, op)

	dev.failCreate = false
	op, err = p.Render(ctx, dashboard("a"))
	require.NoError(t, err)
	require.Equal(t, OpCreate, op)
	require.Len(t, dev.creates, 2)
}

func TestFailedRebuildKeepsLastPage(t *testing.T) {
	t.Parallel()
	dev := &recorder{}
	p := New(dev, nil, zerolog.Nop())
	ctx := context.Background()

	_, err := p.Render(ctx, dashboard("a"))
	require.NoError(t, err)
	dev.failRebuild = true
	single := layout.ViewModel{Containers: []layout.Container{&layout.TextContainer{ID: "t", Content: "x"}}}
	_, err = p.Render(ctx, single)
	require.ErrorIs(t, err, ErrRejected)

	dev.failRebuild = false
	op, err := p.Render(ctx, single)
	require.NoError(t, err)
	require.Equal(t, OpRebuild, op, "the failed page was not remembered")
}

func TestResetCreatesAgain(t *testing.T) {
	t.Parallel()
	dev := &recorder{}
	p := New(dev, nil, zerolog.Nop())
	ctx := context.Background()

	_, err := p.Render(ctx, dashboard("a"))
	require.NoError(t, err)
	p.Reset()
	op, err := p.Render(ctx, dashboard("a"))
	require.NoError(t, err)
	require.Equal(t, OpCreate, op)
	require.Len(t, dev.creates, 2)
}
