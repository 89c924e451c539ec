package domain

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"
)

// AssetCategory classifies purchasable assets
type AssetCategory string

const (
	CategoryLivestock AssetCategory = "livestock"
	CategoryBuilding  AssetCategory = "building"
	CategoryTool      AssetCategory = "tool"
)

// AssetDef is an immutable catalog definition of a purchasable asset
type AssetDef struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Price          float64       `json:"price"`
	Category       AssetCategory `json:"category"`
	Icon           string        `json:"icon"`
	IncomeInterval time.Duration `json:"-"`
	IncomeRate     float64       `json:"incomeRate"`
}

// IncomePerCollection returns the amount paid out per eligible collection
func (d AssetDef) IncomePerCollection() float64 {
	return d.Price * d.IncomeRate
}

// MarshalJSON renders the income interval in milliseconds, the unit the
// config files and clients use
func (d AssetDef) MarshalJSON() ([]byte, error) {
	type alias AssetDef
	return json.Marshal(struct {
		alias
		IncomeIntervalMS int64 `json:"incomeIntervalMs"`
	}{alias(d), d.IncomeInterval.Milliseconds()})
}

// PlacedAsset is an owned instance of an asset placed on the field.
// X and Y are percent positions (0-100) assigned by the zoning policy;
// they are cosmetic and may be recomputed on load.
type PlacedAsset struct {
	InstanceID      string  `json:"instanceId"`
	DefID           string  `json:"defId"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	LastCollectedAt int64   `json:"lastCollectedAt"` // epoch ms
}

// GameStats tracks cumulative lifetime counters. All fields are monotonic.
type GameStats struct {
	TotalCollected    float64 `json:"totalCollected"`
	TotalTaps         int64   `json:"totalTaps"`
	TotalAssetsBought int64   `json:"totalAssetsBought"`
}

// QuestType identifies which player activity advances a quest
type QuestType string

const (
	QuestTypeCollect QuestType = "collect"
	QuestTypeTap     QuestType = "tap"
	QuestTypeBuy     QuestType = "buy"
)

// Quest is a daily objective. Current is clamped to [0, Target] and
// IsClaimed is one-way.
type Quest struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Type        QuestType `json:"type"`
	Target      float64   `json:"target"`
	Current     float64   `json:"current"`
	Reward      float64   `json:"reward"`
	IsClaimed   bool      `json:"isClaimed"`
}

// IsComplete reports whether the quest target has been reached
func (q Quest) IsComplete() bool {
	return q.Current >= q.Target
}

// QuestTemplate is a catalog entry the daily cycle draws quests from
type QuestTemplate struct {
	Type        QuestType `json:"type"`
	Description string    `json:"description"`
	Target      float64   `json:"target"`
	Reward      float64   `json:"reward"`
}

// AchievementDef is an immutable catalog definition of an achievement.
// The unlock predicate is a fixed function of GameState, keyed by ID.
type AchievementDef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MarketListing is a simulated peer-to-peer marketplace offer
type MarketListing struct {
	ID         string  `json:"id"`
	SellerName string  `json:"sellerName"`
	AssetDefID string  `json:"assetDefId"`
	Price      float64 `json:"price"`
}

// GameState is the root aggregate: the single persisted document per
// installation. It is exclusively owned by the game service; callers
// only ever see copies.
type GameState struct {
	Balance              float64       `json:"balance"`
	Inventory            []PlacedAsset `json:"inventory"`
	Stats                GameStats     `json:"stats"`
	Quests               []Quest       `json:"quests"`
	UnlockedAchievements []string      `json:"unlockedAchievements"`
	LastDailyReset       int64         `json:"lastDailyReset"` // epoch ms
	ReferralCode         string        `json:"referralCode"`
	ReferredBy           *string       `json:"referredBy"`
	ReferralEarnings     float64       `json:"referralEarnings"`
}

// Economy constants
const (
	InitialBalance = 200.0
	DepositAmount  = 100.0

	// ReferralReward is credited to the referrer when a join is simulated
	ReferralReward = 50.0
	// RefereeBonus is credited once for redeeming another player's code
	RefereeBonus = 25.0

	// MinReferralCodeLength is the shortest code accepted for redemption
	MinReferralCodeLength = 3

	// DailyQuestCount is the size of each regenerated quest batch
	DailyQuestCount = 3
)

const referralCodePrefix = "STEPPE-"
const referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const referralCodeSuffixLength = 4

// NewReferralCode generates a per-install referral code
func NewReferralCode() string {
	var b strings.Builder
	b.WriteString(referralCodePrefix)
	for i := 0; i < referralCodeSuffixLength; i++ {
		b.WriteByte(referralCodeAlphabet[rand.Intn(len(referralCodeAlphabet))]) //nolint:gosec
	}
	return b.String()
}

// NewInitialState returns a fresh save: starting balance, empty
// inventory and quest list, a freshly generated referral code.
func NewInitialState() *GameState {
	return &GameState{
		Balance:              InitialBalance,
		Inventory:            []PlacedAsset{},
		Quests:               []Quest{},
		UnlockedAchievements: []string{},
		ReferralCode:         NewReferralCode(),
	}
}

// Clone returns a deep copy of the state. The service hands copies to
// callers so the owned aggregate can never be mutated from outside.
func (g *GameState) Clone() *GameState {
	c := *g
	c.Inventory = make([]PlacedAsset, len(g.Inventory))
	copy(c.Inventory, g.Inventory)
	c.Quests = make([]Quest, len(g.Quests))
	copy(c.Quests, g.Quests)
	c.UnlockedAchievements = make([]string, len(g.UnlockedAchievements))
	copy(c.UnlockedAchievements, g.UnlockedAchievements)
	if g.ReferredBy != nil {
		ref := *g.ReferredBy
		c.ReferredBy = &ref
	}
	return &c
}

// HasAchievement reports whether the achievement id is already unlocked
func (g *GameState) HasAchievement(id string) bool {
	for _, a := range g.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}

// FindAsset returns a pointer into the inventory for the given instance id
func (g *GameState) FindAsset(instanceID string) (*PlacedAsset, bool) {
	for i := range g.Inventory {
		if g.Inventory[i].InstanceID == instanceID {
			return &g.Inventory[i], true
		}
	}
	return nil, false
}

// FindQuest returns a pointer into the quest list for the given quest id
func (g *GameState) FindQuest(questID string) (*Quest, bool) {
	for i := range g.Quests {
		if g.Quests[i].ID == questID {
			return &g.Quests[i], true
		}
	}
	return nil, false
}
