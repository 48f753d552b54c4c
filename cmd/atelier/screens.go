package main

import (
	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/ui"
)

// newScreen builds the named top-level screen over cat.
func newScreen(name string, cat *catalog.Catalog, deps *ui.Deps) ui.Screen {
	switch name {
	case "lookbook":
		return ui.NewLookbookScreen(cat.Looks, deps)
	case "showcase":
		return ui.NewShowcaseScreen(cat.Bespoke, deps)
	case "latest":
		return ui.NewLatestScreen(cat.Latest, deps)
	case "archive":
		return ui.NewArchiveScreen(cat.Archive, deps)
	case "film":
		return ui.NewFilmScreen(cat.Film, deps)
	}
	return nil
}
