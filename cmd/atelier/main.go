package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/depeter/atelier/assets/icon"
	"github.com/depeter/atelier/internal/app"
	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/config"
	"github.com/depeter/atelier/internal/logging"
	"github.com/depeter/atelier/internal/ui"
)

type options struct {
	configPath string
	envFile    string
	catalog    string
	screen     string
	debug      bool
	watch      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "atelier",
		Short:         "Lookbook, showcase and archive carousels for the atelier collection",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.screen != "" && !app.KnownScreen(opts.screen) {
				return fmt.Errorf("unknown screen %q (want one of %v)", opts.screen, app.ScreenNames)
			}
			return run(cmd.Context(), opts)
		},
	}
	f := root.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/atelier/config.toml)")
	f.StringVar(&opts.envFile, "env", ".env", "dotenv file with ATELIER_* overrides")
	f.StringVar(&opts.catalog, "catalog", "", "catalog file (.toml, .yaml); default is the built-in catalog")
	f.StringVar(&opts.screen, "screen", "", "screen to start on")
	f.BoolVar(&opts.debug, "debug", false, "development logging and the debug overlay")
	f.BoolVar(&opts.watch, "watch", false, "reload the catalog file when it changes")

	root.AddCommand(newCatalogCmd())
	return root
}

func run(ctx context.Context, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	env, err := config.Env(opts.envFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(env)
	if opts.catalog != "" {
		cfg.Catalog.Path = opts.catalog
	}
	if opts.watch {
		cfg.Catalog.Watch = true
	}

	log, err := logging.New(cfg.LogLevel, opts.debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := ui.InitDefaultFonts(); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}

	cacheDir := filepath.Join(os.TempDir(), "atelier", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	assetRoot := cfg.Catalog.AssetRoot
	if assetRoot == "" && cfg.Catalog.Path != "" {
		assetRoot = filepath.Dir(cfg.Catalog.Path)
	}
	imgCache, err := cache.NewImageCache(assetRoot, cacheDir, log)
	if err != nil {
		return fmt.Errorf("init image cache: %w", err)
	}

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	if cfg.Film.URL != "" {
		cat.Film.URL = cfg.Film.URL
	}

	game := app.NewGame(cfg, cat, imgCache, newScreen, log)
	defer game.Close()
	game.SetOpenCTA(func(target string) {
		if err := openURL(cfg.Catalog.BaseURL + target); err != nil {
			log.Warn("open cta", zap.String("target", target), zap.Error(err))
		}
	})
	if opts.debug {
		game.SetDebug(true)
	}
	if opts.screen != "" {
		game.ShowScreen(opts.screen)
	}

	if cfg.Catalog.Watch && cfg.Catalog.Path != "" {
		w, err := catalog.NewWatcher(cfg.Catalog.Path, 0, log)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
		game.Watch(w.Updates())
	}

	go func() {
		if err := imgCache.Preload(ctx, cat.Images(), cache.Full); err != nil {
			log.Debug("preload", zap.Error(err))
		}
	}()

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Atelier")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	log.Info("starting", zap.String("catalog", catalogName(cfg.Catalog.Path)), zap.Int("looks", len(cat.Looks)))
	return ebiten.RunGame(game)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func catalogName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
