package catalog

import (
	"fmt"

	"github.com/depeter/atelier/assets/data"
)

// bespokePool is the set of images the generated bespoke placeholders rotate
// through and build their galleries from.
var bespokePool = []string{"/images/F1.png", "/images/F2.png", "/images/F3.png"}

var bespokeTitles = []string{"Adire Print Gown", "African Top Shirt", "African Print Pants"}

// Default returns the embedded catalog, with the bespoke list topped up to
// 18 entries so the showcase grid has several pages to page through.
func Default() (*Catalog, error) {
	c, err := Parse(data.Catalog, FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	c.Bespoke = append(c.Bespoke, bespokePlaceholders(len(c.Bespoke), 18-len(c.Bespoke))...)
	for i := range c.Bespoke {
		if len(c.Bespoke[i].Gallery) == 0 {
			c.Bespoke[i].Gallery = MakeGallery(c.Bespoke[i].HeroImage, bespokePool)
		}
	}
	return c, c.Validate()
}

func bespokePlaceholders(offset, n int) []Item {
	if n <= 0 {
		return nil
	}
	items := make([]Item, n)
	for i := range items {
		k := i % 3
		base := bespokePool[2-k]
		title := bespokeTitles[k]
		items[i] = Item{
			ID:          fmt.Sprintf("b%d", offset+i+1),
			Title:       title,
			HeroImage:   base,
			Eyebrow:     "Bespoke",
			Description: "A signature look, crafted with intention, heritage and modern elegance.",
			CardLabel:   "VIEW LOOK",
			CTALabel:    "Talk an order",
			CTATarget:   "/inquiry/bespoke/" + Slugify(title),
			Gallery:     MakeGallery(base, bespokePool),
		}
	}
	return items
}
