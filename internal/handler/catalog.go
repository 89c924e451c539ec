package handler

import (
	"net/http"

	"github.com/steppeworks/CryptoAul_Go/internal/catalog"
)

// CatalogHandler serves the immutable game content
type CatalogHandler struct {
	cat *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// GetAssets lists all purchasable asset definitions
// @Summary List asset definitions
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.AssetDef
// @Router /catalog/assets [get]
func (h *CatalogHandler) GetAssets(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.cat.Assets())
}

// GetAchievements lists all achievement definitions
// @Summary List achievement definitions
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.AchievementDef
// @Router /catalog/achievements [get]
func (h *CatalogHandler) GetAchievements(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.cat.Achievements())
}

// GetListings lists all market listings
// @Summary List market listings
// @Tags market
// @Produce json
// @Success 200 {array} domain.MarketListing
// @Router /market/listings [get]
func (h *CatalogHandler) GetListings(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.cat.Listings())
}
