package app

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/config"
	"github.com/depeter/atelier/internal/ui"
)

type fakeScreen struct {
	name   string
	cat    *catalog.Catalog
	exited bool
}

func (s *fakeScreen) Update(*ui.Input) error { return nil }
func (s *fakeScreen) Draw(*ebiten.Image)     {}
func (s *fakeScreen) OnEnter()               {}
func (s *fakeScreen) OnExit()                { s.exited = true }
func (s *fakeScreen) Name() string           { return s.name }

type recorder struct {
	built []*fakeScreen
}

func (r *recorder) factory(name string, cat *catalog.Catalog, _ *ui.Deps) ui.Screen {
	if !KnownScreen(name) {
		return nil
	}
	s := &fakeScreen{name: name, cat: cat}
	r.built = append(r.built, s)
	return s
}

func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	r := &recorder{}
	return NewGame(config.DefaultConfig(), cat, nil, r.factory, nil), r
}

func TestNewGameShowsFirstScreen(t *testing.T) {
	g, r := newTestGame(t)
	require.Len(t, r.built, 1)
	assert.Equal(t, "lookbook", g.Screens.Current().Name())
	assert.Equal(t, "lookbook", g.Screens.Tabs.Active)
	assert.NotNil(t, g.Deps.Film)
	assert.False(t, g.Deps.Film.Playing(), "no player before the first Play")
	assert.Equal(t, 3, g.Deps.RowsPerPage)
}

func TestShowScreen(t *testing.T) {
	g, r := newTestGame(t)

	g.ShowScreen("lookbook")
	assert.Len(t, r.built, 1, "showing the current screen is a no-op")

	g.ShowScreen("archive")
	require.Len(t, r.built, 2)
	assert.True(t, r.built[0].exited)
	assert.Equal(t, "archive", g.Screens.Tabs.Active)

	g.ShowScreen("nowhere")
	assert.Equal(t, "archive", g.Screens.Current().Name())
}

func TestCatalogUpdates(t *testing.T) {
	g, r := newTestGame(t)
	g.ShowScreen("showcase")

	updates := make(chan catalog.Update, 1)
	g.Watch(updates)

	updates <- catalog.Update{Err: errors.New("bad toml")}
	g.drainUpdates()
	assert.Contains(t, g.errs.Text, "bad toml")
	assert.Len(t, r.built, 2)

	next := &catalog.Catalog{Looks: []catalog.Item{{ID: "x", CTATarget: "/x"}}}
	updates <- catalog.Update{Catalog: next}
	g.drainUpdates()
	assert.Empty(t, g.errs.Text)
	require.Len(t, r.built, 3)
	assert.Equal(t, "showcase", r.built[2].name, "reload keeps the current screen")
	assert.Same(t, next, r.built[2].cat)
	assert.Same(t, next, g.Catalog())

	g.drainUpdates()
	assert.Len(t, r.built, 3, "nothing pending")
}

func TestLayoutFollowsWindow(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	assert.Equal(t, 1920, g.Width)
}
