package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog  = errors.New("catalog has no items")
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrMissingID     = errors.New("item without id")
	ErrMissingCTA    = errors.New("viewer item without cta target")
	ErrUnknownFormat = errors.New("unknown catalog format")
)

// Catalog groups the item lists each screen is mounted with.
type Catalog struct {
	// Looks feed the lookbook coverflow.
	Looks []Item `toml:"looks" yaml:"looks"`
	// Bespoke feeds the paginated showcase grid.
	Bespoke []Item `toml:"bespoke" yaml:"bespoke"`
	// Latest feeds the snap-scrolling attire rail.
	Latest []Item `toml:"latest" yaml:"latest"`
	// Archive feeds the infinite visual archive carousel.
	Archive []Item `toml:"archive" yaml:"archive"`
	// Film is the craft film shown on the film screen.
	Film Film `toml:"film" yaml:"film"`
}

// Film describes the craft video and its poster.
type Film struct {
	Title  string `toml:"title" yaml:"title"`
	URL    string `toml:"url" yaml:"url"`
	Poster string `toml:"poster" yaml:"poster"`
}

// Format is a catalog encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Parse decodes and validates a catalog.
func Parse(data []byte, f Format) (*Catalog, error) {
	c := &Catalog{}
	switch f {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(c); err != nil {
			return nil, fmt.Errorf("decode toml catalog: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a catalog file, choosing the decoder by extension.
func Load(path string) (*Catalog, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks ids are present and unique within each list and that
// every item the viewer can open carries a call-to-action target.
func (c *Catalog) Validate() error {
	if len(c.Looks)+len(c.Bespoke)+len(c.Latest)+len(c.Archive) == 0 {
		return ErrEmptyCatalog
	}
	lists := []struct {
		name   string
		items  []Item
		viewer bool
	}{
		{"looks", c.Looks, true},
		{"bespoke", c.Bespoke, true},
		{"latest", c.Latest, true},
		{"archive", c.Archive, false},
	}
	for _, l := range lists {
		seen := make(map[string]bool, len(l.items))
		for i, it := range l.items {
			if it.ID == "" {
				return fmt.Errorf("%s[%d]: %w", l.name, i, ErrMissingID)
			}
			if seen[it.ID] {
				return fmt.Errorf("%s: %w %q", l.name, ErrDuplicateID, it.ID)
			}
			seen[it.ID] = true
			if l.viewer && it.CTATarget == "" {
				return fmt.Errorf("%s %q: %w", l.name, it.ID, ErrMissingCTA)
			}
		}
	}
	return nil
}

// Images lists every distinct image reference in the catalog, in first-seen
// order, for preloading.
func (c *Catalog) Images() []string {
	seen := map[string]bool{}
	var out []string
	add := func(ref string) {
		if ref != "" && !seen[ref] {
			seen[ref] = true
			out = append(out, ref)
		}
	}
	for _, list := range [][]Item{c.Looks, c.Bespoke, c.Latest, c.Archive} {
		for _, it := range list {
			add(it.HeroImage)
			for _, g := range it.Gallery {
				add(g)
			}
		}
	}
	add(c.Film.Poster)
	return out
}
