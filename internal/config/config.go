package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/depeter/atelier/internal/carousel"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvCatalog  = "ATELIER_CATALOG"
	EnvFilmURL  = "ATELIER_FILM_URL"
	EnvLogLevel = "ATELIER_LOG_LEVEL"
)

type Config struct {
	UI       UIConfig       `toml:"ui"`
	Carousel CarouselConfig `toml:"carousel"`
	Showcase ShowcaseConfig `toml:"showcase"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Film     FilmConfig     `toml:"film"`
	Keybinds KeybindConfig  `toml:"keybinds"`
	LogLevel string         `toml:"log_level"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type CarouselConfig struct {
	CommitMS      int     `toml:"commit_ms"`
	RebaseFrames  int     `toml:"rebase_frames"`
	DragMin       float64 `toml:"drag_min"`
	DragMax       float64 `toml:"drag_max"`
	DragRatio     float64 `toml:"drag_ratio"`
	WheelMin      float64 `toml:"wheel_min"`
	WheelMax      float64 `toml:"wheel_max"`
	WheelRatio    float64 `toml:"wheel_ratio"`
	WheelIdleMS   int     `toml:"wheel_idle_ms"`
	WheelDeadZone float64 `toml:"wheel_dead_zone"`
}

type ShowcaseConfig struct {
	LG          float64 `toml:"lg"`
	XL          float64 `toml:"xl"`
	BaseCols    int     `toml:"base_cols"`
	LGCols      int     `toml:"lg_cols"`
	XLCols      int     `toml:"xl_cols"`
	RowsPerPage int     `toml:"rows_per_page"`
}

type CatalogConfig struct {
	// Path to a TOML or YAML catalog; empty uses the embedded one.
	Path string `toml:"path"`
	// AssetRoot resolves image references that start with '/'.
	AssetRoot string `toml:"asset_root"`
	Watch     bool   `toml:"watch"`
	// BaseURL is prefixed to call-to-action paths before opening them.
	BaseURL string `toml:"base_url"`
}

type FilmConfig struct {
	URL    string `toml:"url"`
	HWDec  string `toml:"hwdec"`
	Volume int    `toml:"volume"`
}

type KeybindConfig struct {
	Prev       string `toml:"prev"`
	Next       string `toml:"next"`
	Open       string `toml:"open"`
	Close      string `toml:"close"`
	Film       string `toml:"film"`
	NextScreen string `toml:"next_screen"`
	Debug      string `toml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1440,
			Height:     900,
		},
		Carousel: CarouselConfig{
			CommitMS:      500,
			RebaseFrames:  2,
			DragMin:       52,
			DragMax:       160,
			DragRatio:     0.22,
			WheelMin:      70,
			WheelMax:      220,
			WheelRatio:    0.45,
			WheelIdleMS:   120,
			WheelDeadZone: 2,
		},
		Showcase: ShowcaseConfig{
			LG:          1024,
			XL:          1280,
			BaseCols:    2,
			LGCols:      3,
			XLCols:      5,
			RowsPerPage: 3,
		},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:3000",
		},
		Film: FilmConfig{
			HWDec:  "auto-safe",
			Volume: 100,
		},
		Keybinds: KeybindConfig{
			Prev:       "Left",
			Next:       "Right",
			Open:       "Enter",
			Close:      "Escape",
			Film:       "P",
			NextScreen: "Tab",
			Debug:      "F3",
		},
		LogLevel: "info",
	}
}

// CarouselSettings converts the [carousel] section into carousel tunables.
func (c *Config) CarouselSettings() carousel.Config {
	cc := c.Carousel
	return carousel.Config{
		Track: carousel.TrackConfig{
			Commit:       time.Duration(cc.CommitMS) * time.Millisecond,
			RebaseFrames: cc.RebaseFrames,
		},
		Drag: carousel.DragConfig{Min: cc.DragMin, Max: cc.DragMax, Ratio: cc.DragRatio},
		Wheel: carousel.WheelConfig{
			Min:      cc.WheelMin,
			Max:      cc.WheelMax,
			Ratio:    cc.WheelRatio,
			Idle:     time.Duration(cc.WheelIdleMS) * time.Millisecond,
			DeadZone: cc.WheelDeadZone,
		},
	}
}

// Breakpoints converts the [showcase] section.
func (c *Config) Breakpoints() carousel.Breakpoints {
	s := c.Showcase
	return carousel.Breakpoints{LG: s.LG, XL: s.XL, BaseCols: s.BaseCols, LGCols: s.LGCols, XLCols: s.XLCols}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "atelier"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Env gathers overrides from a .env file and the process environment. The
// process environment wins. A missing .env file is not an error.
func Env(dotenv string) (map[string]string, error) {
	env, err := godotenv.Read(dotenv)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", dotenv, err)
		}
		env = map[string]string{}
	}
	for _, k := range []string{EnvCatalog, EnvFilmURL, EnvLogLevel} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overlays the recognised variables in env onto c.
func (c *Config) ApplyEnv(env map[string]string) {
	if v := env[EnvCatalog]; v != "" {
		c.Catalog.Path = v
	}
	if v := env[EnvFilmURL]; v != "" {
		c.Film.URL = v
	}
	if v := env[EnvLogLevel]; v != "" {
		c.LogLevel = v
	}
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
