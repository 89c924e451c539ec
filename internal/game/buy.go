package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/event"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

func newInstanceID() string {
	return uuid.NewString()
}

// BuyAsset purchases an asset from the shop at catalog price
func (s *service) BuyAsset(ctx context.Context, defID string) (*domain.GameState, error) {
	def, ok := s.cat.Asset(defID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, defID)
	}
	return s.buy(ctx, def, def.Price)
}

// BuyListing purchases an asset through a market listing at the
// listing's price instead of the catalog price
func (s *service) BuyListing(ctx context.Context, listingID string) (*domain.GameState, error) {
	listing, ok := s.cat.Listing(listingID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrListingNotFound, listingID)
	}
	def, ok := s.cat.Asset(listing.AssetDefID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, listing.AssetDefID)
	}

	logger.FromContext(ctx).Info(LogMsgListingBought,
		"listing_id", listing.ID, "seller", listing.SellerName, "price", listing.Price)
	return s.buy(ctx, def, listing.Price)
}

// buy debits the price, places the new instance on the field and starts
// its income cooldown at the purchase moment
func (s *service) buy(ctx context.Context, def domain.AssetDef, price float64) (*domain.GameState, error) {
	log := logger.FromContext(ctx)

	return s.mutate(ctx, func(st *domain.GameState) ([]event.Event, error) {
		if st.Balance < price {
			return nil, fmt.Errorf("%w: need %.2f, have %.2f", domain.ErrInsufficientFunds, price, st.Balance)
		}

		x, y := spawnPosition(def, s.rnd)
		asset := domain.PlacedAsset{
			InstanceID:      s.newID(),
			DefID:           def.ID,
			X:               x,
			Y:               y,
			LastCollectedAt: s.now().UnixMilli(),
		}

		st.Balance -= price
		st.Inventory = append(st.Inventory, asset)
		st.Stats.TotalAssetsBought++

		events := []event.Event{event.NewAssetBoughtEvent(asset.InstanceID, def.ID, def.Category, price)}
		events = append(events, advanceQuests(st, domain.QuestTypeBuy, 1)...)
		events = append(events, s.evaluateAchievements(st)...)

		log.Info(LogMsgAssetBought, "def_id", def.ID, "instance_id", asset.InstanceID, "price", price)
		return events, nil
	})
}
