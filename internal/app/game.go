// Package app ties the screens, catalog, image cache and film player into
// an ebiten.Game.
package app

import (
	"fmt"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/config"
	"github.com/depeter/atelier/internal/ui"
	"github.com/depeter/atelier/internal/viewer"
)

// ScreenNames lists the top-level screens in tab order.
var ScreenNames = []string{"lookbook", "showcase", "latest", "archive", "film"}

// ScreenFactory builds the named screen over cat. It returns nil for an
// unknown name.
type ScreenFactory func(name string, cat *catalog.Catalog, deps *ui.Deps) ui.Screen

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager
	Lock    *viewer.BodyLock
	Deps    *ui.Deps

	Width, Height int

	log     *zap.Logger
	keys    Bindings
	factory ScreenFactory
	catalog *catalog.Catalog
	updates <-chan catalog.Update

	debug ui.DebugOverlay
	errs  ui.ErrorDisplay
	film  *lazyFilm
}

// NewGame creates the Game with all dependencies and shows the first screen.
func NewGame(cfg *config.Config, cat *catalog.Catalog, imgCache *cache.ImageCache, factory ScreenFactory, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		Config:  cfg,
		Cache:   imgCache,
		Screens: ui.NewScreenManager(),
		Lock:    viewer.NewBodyLock(viewer.OverflowAuto),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		log:     log,
		factory: factory,
		catalog: cat,
		film:    &lazyFilm{cfg: cfg.Film, log: log},
	}
	keys, err := NewBindings(cfg.Keybinds)
	if err != nil {
		log.Warn("keybinds", zap.Error(err))
	}
	g.keys = keys

	g.Deps = &ui.Deps{
		Images:      imgCache,
		Lock:        g.Lock,
		Carousel:    cfg.CarouselSettings(),
		Breakpoints: cfg.Breakpoints(),
		RowsPerPage: cfg.Showcase.RowsPerPage,
		Now:         time.Now,
		Log:         log,
		Film:        g.film,
	}

	g.Screens.Tabs = ui.NewTabBar(ScreenNames)
	g.Screens.Tabs.OnSelect = g.ShowScreen
	g.ShowScreen(ScreenNames[0])
	return g
}

// SetOpenCTA installs the call-to-action handler used by viewers.
func (g *Game) SetOpenCTA(fn func(target string)) { g.Deps.OpenCTA = fn }

// SetDebug shows or hides the debug overlay.
func (g *Game) SetDebug(on bool) { g.debug.Visible = on }

// Watch delivers catalog reloads to the game loop.
func (g *Game) Watch(updates <-chan catalog.Update) { g.updates = updates }

// Catalog is the catalog the screens are currently built from.
func (g *Game) Catalog() *catalog.Catalog { return g.catalog }

// ShowScreen replaces the current screen with a fresh one by name. Showing
// the current screen again is a no-op.
func (g *Game) ShowScreen(name string) {
	if cur := g.Screens.Current(); cur != nil && cur.Name() == name {
		return
	}
	s := g.factory(name, g.catalog, g.Deps)
	if s == nil {
		g.log.Warn("unknown screen", zap.String("name", name))
		return
	}
	g.Screens.Replace(s)
	g.Screens.Tabs.Active = name
}

// SetCatalog swaps in a reloaded catalog and rebuilds the current screen
// over it. Any open viewer is closed by the old screen's OnExit.
func (g *Game) SetCatalog(cat *catalog.Catalog) {
	g.catalog = cat
	name := ScreenNames[0]
	if cur := g.Screens.Current(); cur != nil {
		name = cur.Name()
	}
	g.Screens.Clear()
	if g.Cache != nil {
		g.Cache.Clear()
	}
	g.ShowScreen(name)
	g.log.Info("catalog reloaded", zap.String("screen", name))
}

func (g *Game) drainUpdates() {
	if g.updates == nil {
		return
	}
	select {
	case u := <-g.updates:
		if u.Err != nil {
			g.errs.Text = "Catalog not reloaded: " + u.Err.Error()
			return
		}
		g.errs.Text = ""
		g.SetCatalog(u.Catalog)
	default:
	}
}

// Close exits the current screen and releases the film player.
func (g *Game) Close() {
	g.Screens.Clear()
	g.film.destroy()
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if g.keys.justPressed(g.keys.Debug) {
		g.debug.Toggle()
	}

	g.drainUpdates()
	in := g.keys.pollInput()
	defer ui.UpdateInputState()

	if in.Pressed && g.errs.HandleClick(in.CursorX, in.CursorY) {
		return nil
	}

	if !g.Screens.ModalOpen() {
		switch {
		case g.keys.justPressed(g.keys.NextScreen):
			g.ShowScreen(g.Screens.Tabs.Next())
			return nil
		case g.keys.justPressed(g.keys.Film):
			g.ShowScreen("film")
			return nil
		}
	}

	return g.Screens.Update(in)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	g.errs.Draw(screen)
	g.debug.Draw(screen, g.Screens.Current(), g.debugLines()...)
}

func (g *Game) debugLines() []string {
	owner := g.Lock.Owner()
	if owner == "" {
		owner = "-"
	}
	return []string{
		fmt.Sprintf("tps=%.0f fps=%.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("scroll lock=%s overflow=%q", owner, g.Lock.Value()),
		fmt.Sprintf("film playing=%v url=%s", g.film.Playing(), g.film.URL()),
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// KnownScreen reports whether name is one of ScreenNames.
func KnownScreen(name string) bool { return slices.Contains(ScreenNames, name) }
