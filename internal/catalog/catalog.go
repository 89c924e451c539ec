// Package catalog loads the immutable game content definitions (assets,
// quest templates, achievements and market listings) from JSON config
// files and exposes indexed read-only views of them.
package catalog

import (
	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

// Catalog is the loaded, validated content set. It is built once at
// startup and never mutated afterwards, so it is safe for concurrent use.
type Catalog struct {
	assets       []domain.AssetDef
	assetsByID   map[string]domain.AssetDef
	templates    []domain.QuestTemplate
	achievements []domain.AchievementDef
	listings     []domain.MarketListing
	listingsByID map[string]domain.MarketListing
}

// Assets returns all asset definitions in config order
func (c *Catalog) Assets() []domain.AssetDef {
	return c.assets
}

// Asset looks up an asset definition by id
func (c *Catalog) Asset(id string) (domain.AssetDef, bool) {
	def, ok := c.assetsByID[id]
	return def, ok
}

// QuestTemplates returns the daily quest template pool
func (c *Catalog) QuestTemplates() []domain.QuestTemplate {
	return c.templates
}

// Achievements returns all achievement definitions in evaluation order
func (c *Catalog) Achievements() []domain.AchievementDef {
	return c.achievements
}

// Listings returns all market listings in config order
func (c *Catalog) Listings() []domain.MarketListing {
	return c.listings
}

// Listing looks up a market listing by id
func (c *Catalog) Listing(id string) (domain.MarketListing, bool) {
	l, ok := c.listingsByID[id]
	return l, ok
}
