package game

import (
	"math/rand"

	"github.com/steppeworks/CryptoAul_Go/internal/domain"
)

// zone is a rectangular spawn region in percent coordinates
type zone struct {
	xMin, xSpan float64
	yMin, ySpan float64
}

func (z zone) pick(rnd *rand.Rand) (x, y float64) {
	return z.xMin + rnd.Float64()*z.xSpan, z.yMin + rnd.Float64()*z.ySpan
}

// Spawn regions. Chickens and tools float in the sky band; buildings
// anchor the bottom-left corner; each herd species gets its own paddock
// along the bottom.
var (
	zoneSky      = zone{10, 80, 10, 15}
	zoneBuilding = zone{2, 18, 65, 20}
	zoneFallback = zone{40, 20, 70, 20}

	paddocks = map[string]zone{
		"sheep": {25, 15, 70, 20},
		"cow":   {45, 15, 70, 20},
		"horse": {65, 15, 65, 20},
		"camel": {82, 15, 65, 15},
	}
)

// spawnPosition assigns a field position to a newly placed (or
// re-zoned) asset according to the layout rules
func spawnPosition(def domain.AssetDef, rnd *rand.Rand) (x, y float64) {
	if def.ID == "chicken" || def.Category == domain.CategoryTool {
		return zoneSky.pick(rnd)
	}
	if def.Category == domain.CategoryBuilding {
		return zoneBuilding.pick(rnd)
	}
	if p, ok := paddocks[def.ID]; ok {
		return p.pick(rnd)
	}
	return zoneFallback.pick(rnd)
}
