// Package catalog holds the static look, attire and archive records the
// carousels are mounted with, and loads them from TOML or YAML files.
package catalog

import (
	"slices"
	"strings"
	"unicode"
)

// Item is one navigable look or attire. Items are built once when a
// carousel mounts and never change afterwards.
type Item struct {
	ID          string   `toml:"id" yaml:"id"`
	Title       string   `toml:"title" yaml:"title"`
	HeroImage   string   `toml:"image" yaml:"image"`
	Gallery     []string `toml:"gallery,omitempty" yaml:"gallery,omitempty"`
	Eyebrow     string   `toml:"eyebrow,omitempty" yaml:"eyebrow,omitempty"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty"`
	Alt         string   `toml:"alt,omitempty" yaml:"alt,omitempty"`

	// CardLabel is the label on the card itself, e.g. "VIEW LOOK".
	CardLabel string `toml:"card_label,omitempty" yaml:"card_label,omitempty"`
	// CTALabel and CTATarget drive the viewer's call to action.
	CTALabel  string `toml:"cta_label,omitempty" yaml:"cta_label,omitempty"`
	CTATarget string `toml:"cta_target,omitempty" yaml:"cta_target,omitempty"`
}

// Shots returns the viewer gallery. An empty gallery falls back to the hero
// image alone, so thumbnail rails never render an empty sequence.
func (it Item) Shots() []string {
	if len(it.Gallery) > 0 {
		return it.Gallery
	}
	if it.HeroImage == "" {
		return nil
	}
	return []string{it.HeroImage}
}

// HasShot reports whether shot belongs to the item's gallery.
func (it Item) HasShot(shot string) bool {
	return slices.Contains(it.Shots(), shot)
}

// Label returns the card label, defaulting to "VIEW".
func (it Item) Label() string {
	if it.CardLabel != "" {
		return it.CardLabel
	}
	return "VIEW"
}

// Heading returns the eyebrow shown above the title in the viewer.
func (it Item) Heading() string {
	if it.Eyebrow != "" {
		return it.Eyebrow
	}
	return "Explore Look"
}

// MakeGallery puts base first and follows it with every other pool image.
func MakeGallery(base string, pool []string) []string {
	out := []string{base}
	for _, p := range pool {
		if p != base {
			out = append(out, p)
		}
	}
	return out
}

// Slugify lowercases title and joins whitespace-separated words with '-'.
func Slugify(title string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(title), unicode.IsSpace), "-")
}
