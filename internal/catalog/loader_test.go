package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fixturePaths(t *testing.T, assets, pool, achievements, market string) Paths {
	t.Helper()
	dir := t.TempDir()
	return Paths{
		Assets:       writeFixture(t, dir, "assets.json", assets),
		QuestPool:    writeFixture(t, dir, "quest_pool.json", pool),
		Achievements: writeFixture(t, dir, "achievements.json", achievements),
		Market:       writeFixture(t, dir, "market.json", market),
	}
}

const (
	validAssets = `{"version":"1.0","assets":[
		{"id":"chicken","name":"Chicken","price":1,"category":"livestock","icon":"c","income_interval_ms":3000,"income_rate":0.01},
		{"id":"solar_panel","price":200,"category":"building","icon":"s","income_interval_ms":12000,"income_rate":0.01}
	]}`
	validPool = `{"version":"1.0","templates":[
		{"type":"tap","description":"Harvest 5 times","target":5,"reward":5}
	]}`
	validAchievements = `{"version":"1.0","achievements":[
		{"id":"first_steps","title":"First Steps","description":"d","icon":"i"}
	]}`
	validMarket = `{"version":"1.0","listings":[
		{"id":"m1","seller_name":"NomadKing","asset_def_id":"chicken","price":0.9}
	]}`
)

func TestLoadValidCatalog(t *testing.T) {
	paths := fixturePaths(t, validAssets, validPool, validAchievements, validMarket)

	c, err := Load(context.Background(), paths)
	require.NoError(t, err)

	def, ok := c.Asset("chicken")
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, def.IncomeInterval)
	assert.Equal(t, domain.CategoryLivestock, def.Category)
	assert.InDelta(t, 0.01, def.IncomePerCollection(), 1e-9)

	listing, ok := c.Listing("m1")
	require.True(t, ok)
	assert.Equal(t, "chicken", listing.AssetDefID)

	assert.Len(t, c.QuestTemplates(), 1)
	assert.Len(t, c.Achievements(), 1)
}

func TestLoadMissingNameFallsBackToTitleCasedID(t *testing.T) {
	paths := fixturePaths(t, validAssets, validPool, validAchievements, validMarket)

	c, err := Load(context.Background(), paths)
	require.NoError(t, err)

	def, ok := c.Asset("solar_panel")
	require.True(t, ok)
	assert.Equal(t, "Solar Panel", def.Name)
}

func TestLoadRejectsDuplicateAssetID(t *testing.T) {
	assets := `{"assets":[
		{"id":"cow","price":50,"category":"livestock","income_interval_ms":7000,"income_rate":0.01},
		{"id":"cow","price":50,"category":"livestock","income_interval_ms":7000,"income_rate":0.01}
	]}`
	paths := fixturePaths(t, assets, validPool, validAchievements, `{"listings":[]}`)

	_, err := Load(context.Background(), paths)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	assets := `{"assets":[
		{"id":"ufo","price":50,"category":"vehicle","income_interval_ms":7000,"income_rate":0.01}
	]}`
	paths := fixturePaths(t, assets, validPool, validAchievements, `{"listings":[]}`)

	_, err := Load(context.Background(), paths)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsUnknownQuestType(t *testing.T) {
	pool := `{"templates":[{"type":"fly","description":"x","target":1,"reward":1}]}`
	paths := fixturePaths(t, validAssets, pool, validAchievements, `{"listings":[]}`)

	_, err := Load(context.Background(), paths)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsListingWithUnknownAsset(t *testing.T) {
	market := `{"listings":[{"id":"m9","seller_name":"x","asset_def_id":"dragon","price":5}]}`
	paths := fixturePaths(t, validAssets, validPool, validAchievements, market)

	_, err := Load(context.Background(), paths)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadValidatesAgainstShippedSchema(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, SchemaDirName), 0o755))

	schema, err := os.ReadFile("../../configs/schemas/assets.schema.json")
	require.NoError(t, err)
	writeFixture(t, filepath.Join(dir, SchemaDirName), "assets.schema.json", string(schema))

	// Structurally valid JSON that the schema rejects: price missing
	assets := `{"assets":[{"id":"cow","category":"livestock","income_interval_ms":7000,"income_rate":0.01}]}`
	paths := Paths{
		Assets:       writeFixture(t, dir, "assets.json", assets),
		QuestPool:    writeFixture(t, dir, "quest_pool.json", validPool),
		Achievements: writeFixture(t, dir, "achievements.json", validAchievements),
		Market:       writeFixture(t, dir, "market.json", `{"listings":[]}`),
	}

	_, err = Load(context.Background(), paths)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoadMissingFile(t *testing.T) {
	paths := fixturePaths(t, validAssets, validPool, validAchievements, validMarket)
	paths.Assets = filepath.Join(t.TempDir(), "absent.json")

	_, err := Load(context.Background(), paths)
	assert.Error(t, err)
}

// The shipped config files must always load.
func TestLoadShippedConfigs(t *testing.T) {
	paths := Paths{
		Assets:       "../../configs/assets.json",
		QuestPool:    "../../configs/quest_pool.json",
		Achievements: "../../configs/achievements.json",
		Market:       "../../configs/market.json",
	}

	c, err := Load(context.Background(), paths)
	require.NoError(t, err)

	assert.Len(t, c.Assets(), 9)
	assert.Len(t, c.QuestTemplates(), 6)
	assert.Len(t, c.Achievements(), 5)
	assert.Len(t, c.Listings(), 3)

	yurt, ok := c.Asset("yurt")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryBuilding, yurt.Category)
	assert.Equal(t, 20*time.Second, yurt.IncomeInterval)
}
