// Package data embeds the catalog shipped with the binary.
package data

import _ "embed"

// Catalog is the default lookbook catalog in TOML.
//
//go:embed catalog.toml
var Catalog []byte
