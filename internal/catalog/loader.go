package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
	"github.com/steppeworks/CryptoAul_Go/internal/logger"
	"github.com/steppeworks/CryptoAul_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Paths names the config files a catalog is assembled from
type Paths struct {
	Assets       string
	QuestPool    string
	Achievements string
	Market       string
}

// DefaultPaths returns the standard config file locations
func DefaultPaths() Paths {
	return Paths{
		Assets:       DefaultAssetsPath,
		QuestPool:    DefaultQuestPoolPath,
		Achievements: DefaultAchievementsPath,
		Market:       DefaultMarketPath,
	}
}

// assetsConfig is the JSON shape of the assets file
type assetsConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Assets []assetDef `json:"assets"`
}

type assetDef struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Category         string  `json:"category"`
	Icon             string  `json:"icon"`
	IncomeIntervalMS int64   `json:"income_interval_ms"`
	IncomeRate       float64 `json:"income_rate"`
}

type questPoolConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Templates []questTemplate `json:"templates"`
}

type questTemplate struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Target      float64 `json:"target"`
	Reward      float64 `json:"reward"`
}

type achievementsConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Achievements []achievementDef `json:"achievements"`
}

type achievementDef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type marketConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Listings []marketListing `json:"listings"`
}

type marketListing struct {
	ID         string  `json:"id"`
	SellerName string  `json:"seller_name"`
	AssetDefID string  `json:"asset_def_id"`
	Price      float64 `json:"price"`
}

// Load reads, validates and indexes all catalog config files
func Load(ctx context.Context, paths Paths) (*Catalog, error) {
	log := logger.FromContext(ctx)

	var assets assetsConfig
	if err := readConfig(paths.Assets, &assets); err != nil {
		return nil, err
	}
	var pool questPoolConfig
	if err := readConfig(paths.QuestPool, &pool); err != nil {
		return nil, err
	}
	var achievements achievementsConfig
	if err := readConfig(paths.Achievements, &achievements); err != nil {
		return nil, err
	}
	var market marketConfig
	if err := readConfig(paths.Market, &market); err != nil {
		return nil, err
	}

	c, err := build(&assets, &pool, &achievements, &market)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded,
		"assets", len(c.assets),
		"quest_templates", len(c.templates),
		"achievements", len(c.achievements),
		"market_listings", len(c.listings))

	return c, nil
}

var schemaValidator = validation.NewSchemaValidator()

func readConfig(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against the schema shipped next to the config, if present
	if schemaPath, ok := schemaFor(path); ok {
		if err := schemaValidator.ValidateBytes(data, schemaPath); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, path, err)
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return nil
}

// schemaFor maps configs/<name>.json to configs/schemas/<name>.schema.json
func schemaFor(configPath string) (string, bool) {
	base := strings.TrimSuffix(filepath.Base(configPath), filepath.Ext(configPath))
	schemaPath := filepath.Join(filepath.Dir(configPath), SchemaDirName, base+SchemaFileSuffix)
	if _, err := os.Stat(schemaPath); err != nil {
		return "", false
	}
	return schemaPath, true
}

var titleCaser = cases.Title(language.English)

func build(assets *assetsConfig, pool *questPoolConfig, achievements *achievementsConfig, market *marketConfig) (*Catalog, error) {
	c := &Catalog{
		assetsByID:   make(map[string]domain.AssetDef, len(assets.Assets)),
		listingsByID: make(map[string]domain.MarketListing, len(market.Listings)),
	}

	if err := validateAssets(assets); err != nil {
		return nil, err
	}
	for _, a := range assets.Assets {
		name := a.Name
		if name == "" {
			// Display name falls back to the title-cased id
			name = titleCaser.String(strings.ReplaceAll(a.ID, "_", " "))
		}
		def := domain.AssetDef{
			ID:             a.ID,
			Name:           name,
			Price:          a.Price,
			Category:       domain.AssetCategory(a.Category),
			Icon:           a.Icon,
			IncomeInterval: time.Duration(a.IncomeIntervalMS) * time.Millisecond,
			IncomeRate:     a.IncomeRate,
		}
		c.assets = append(c.assets, def)
		c.assetsByID[def.ID] = def
	}

	if err := validateQuestPool(pool); err != nil {
		return nil, err
	}
	for _, t := range pool.Templates {
		c.templates = append(c.templates, domain.QuestTemplate{
			Type:        domain.QuestType(t.Type),
			Description: t.Description,
			Target:      t.Target,
			Reward:      t.Reward,
		})
	}

	if err := validateAchievements(achievements); err != nil {
		return nil, err
	}
	for _, a := range achievements.Achievements {
		c.achievements = append(c.achievements, domain.AchievementDef{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
		})
	}

	for i, l := range market.Listings {
		if l.ID == "" {
			return nil, fmt.Errorf(ErrFmtEmptyID, ErrInvalidConfig, "market", i)
		}
		if _, ok := c.listingsByID[l.ID]; ok {
			return nil, fmt.Errorf(ErrFmtDuplicateID, ErrInvalidConfig, l.ID)
		}
		if _, ok := c.assetsByID[l.AssetDefID]; !ok {
			return nil, fmt.Errorf(ErrFmtUnknownListingsRef, ErrInvalidConfig, l.ID, l.AssetDefID)
		}
		listing := domain.MarketListing{
			ID:         l.ID,
			SellerName: l.SellerName,
			AssetDefID: l.AssetDefID,
			Price:      l.Price,
		}
		c.listings = append(c.listings, listing)
		c.listingsByID[listing.ID] = listing
	}

	return c, nil
}

func validateAssets(config *assetsConfig) error {
	if config == nil {
		return fmt.Errorf(ErrFmtConfigNil, ErrInvalidConfig)
	}
	if len(config.Assets) == 0 {
		return fmt.Errorf(ErrFmtNoEntriesDefined, ErrInvalidConfig, "assets")
	}

	seen := make(map[string]bool, len(config.Assets))
	for i, a := range config.Assets {
		if a.ID == "" {
			return fmt.Errorf(ErrFmtEmptyID, ErrInvalidConfig, "asset", i)
		}
		if seen[a.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, ErrInvalidConfig, a.ID)
		}
		seen[a.ID] = true

		if a.Price <= 0 {
			return fmt.Errorf(ErrFmtNegativePrice, ErrInvalidConfig, a.ID)
		}
		if a.IncomeRate <= 0 {
			return fmt.Errorf(ErrFmtNegativeRate, ErrInvalidConfig, a.ID)
		}
		if a.IncomeIntervalMS <= 0 {
			return fmt.Errorf(ErrFmtNegativeInterval, ErrInvalidConfig, a.ID)
		}

		switch domain.AssetCategory(a.Category) {
		case domain.CategoryLivestock, domain.CategoryBuilding, domain.CategoryTool:
		default:
			return fmt.Errorf(ErrFmtUnknownCategory, ErrInvalidConfig, a.ID, a.Category)
		}
	}
	return nil
}

func validateQuestPool(config *questPoolConfig) error {
	if config == nil {
		return fmt.Errorf(ErrFmtConfigNil, ErrInvalidConfig)
	}
	if len(config.Templates) == 0 {
		return fmt.Errorf(ErrFmtNoEntriesDefined, ErrInvalidConfig, "quest pool")
	}

	for i, t := range config.Templates {
		switch domain.QuestType(t.Type) {
		case domain.QuestTypeCollect, domain.QuestTypeTap, domain.QuestTypeBuy:
		default:
			return fmt.Errorf(ErrFmtUnknownQuestType, ErrInvalidConfig, i, t.Type)
		}
		if t.Target <= 0 {
			return fmt.Errorf(ErrFmtNonPositiveTarget, ErrInvalidConfig, i)
		}
		if t.Reward < 0 {
			return fmt.Errorf(ErrFmtNegativeReward, ErrInvalidConfig, i)
		}
	}
	return nil
}

func validateAchievements(config *achievementsConfig) error {
	if config == nil {
		return fmt.Errorf(ErrFmtConfigNil, ErrInvalidConfig)
	}
	if len(config.Achievements) == 0 {
		return fmt.Errorf(ErrFmtNoEntriesDefined, ErrInvalidConfig, "achievements")
	}

	seen := make(map[string]bool, len(config.Achievements))
	for i, a := range config.Achievements {
		if a.ID == "" {
			return fmt.Errorf(ErrFmtEmptyID, ErrInvalidConfig, "achievement", i)
		}
		if seen[a.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, ErrInvalidConfig, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}
