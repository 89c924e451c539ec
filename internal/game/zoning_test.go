package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

func TestSpawnPositionZones(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))

	tests := []struct {
		name                   string
		def                    domain.AssetDef
		xMin, xMax, yMin, yMax float64
	}{
		{"chicken sky band", domain.AssetDef{ID: "chicken", Category: domain.CategoryLivestock}, 10, 90, 10, 25},
		{"tool sky band", domain.AssetDef{ID: "hammer", Category: domain.CategoryTool}, 10, 90, 10, 25},
		{"building bottom left", domain.AssetDef{ID: "yurt", Category: domain.CategoryBuilding}, 2, 20, 65, 85},
		{"sheep paddock", domain.AssetDef{ID: "sheep", Category: domain.CategoryLivestock}, 25, 40, 70, 90},
		{"cow paddock", domain.AssetDef{ID: "cow", Category: domain.CategoryLivestock}, 45, 60, 70, 90},
		{"horse paddock", domain.AssetDef{ID: "horse", Category: domain.CategoryLivestock}, 65, 80, 65, 85},
		{"camel paddock", domain.AssetDef{ID: "camel", Category: domain.CategoryLivestock}, 82, 97, 65, 80},
		{"unknown livestock fallback", domain.AssetDef{ID: "yak", Category: domain.CategoryLivestock}, 40, 60, 70, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				x, y := spawnPosition(tt.def, rnd)
				assert.GreaterOrEqual(t, x, tt.xMin)
				assert.LessOrEqual(t, x, tt.xMax)
				assert.GreaterOrEqual(t, y, tt.yMin)
				assert.LessOrEqual(t, y, tt.yMax)
			}
		})
	}
}
