package domain

// Event type constants shared between publishers and subscribers
const (
	EventTypeAssetBought         = "asset.bought"
	EventTypeIncomeCollected     = "income.collected"
	EventTypeQuestCompleted      = "quest.completed"
	EventTypeQuestClaimed        = "quest.claimed"
	EventTypeAchievementUnlocked = "achievement.unlocked"
	EventTypeDailyQuestsReset    = "daily.quests.reset"
	EventTypeDepositCompleted    = "deposit.completed"
	EventTypeReferralRedeemed    = "referral.redeemed"
	EventTypeReferralJoined      = "referral.joined"
)

// AssetBoughtPayload is published after a successful purchase
type AssetBoughtPayload struct {
	InstanceID string  `json:"instance_id"`
	DefID      string  `json:"def_id"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Timestamp  int64   `json:"timestamp"`
}

// IncomeCollectedPayload is published after a successful collection
type IncomeCollectedPayload struct {
	InstanceID string  `json:"instance_id"`
	DefID      string  `json:"def_id"`
	Amount     float64 `json:"amount"`
	Timestamp  int64   `json:"timestamp"`
}

// QuestCompletedPayload is published when a quest reaches its target
type QuestCompletedPayload struct {
	QuestID   string `json:"quest_id"`
	QuestType string `json:"quest_type"`
}

// QuestClaimedPayload is published when a completed quest is claimed
type QuestClaimedPayload struct {
	QuestID string  `json:"quest_id"`
	Reward  float64 `json:"reward"`
}

// AchievementUnlockedPayload is published once per unlock. The
// presentation layer uses it to trigger the celebration audio cue.
type AchievementUnlockedPayload struct {
	AchievementID string `json:"achievement_id"`
	Title         string `json:"title"`
}

// DailyQuestsResetPayload is published after quest regeneration
type DailyQuestsResetPayload struct {
	ResetTime       int64 `json:"reset_time"` // epoch ms
	QuestsGenerated int   `json:"quests_generated"`
}

// DepositCompletedPayload is published after a simulated deposit
type DepositCompletedPayload struct {
	Amount     float64 `json:"amount"`
	NewBalance float64 `json:"new_balance"`
}

// ReferralRedeemedPayload is published when the player redeems a code
type ReferralRedeemedPayload struct {
	Code  string  `json:"code"`
	Bonus float64 `json:"bonus"`
}

// ReferralJoinedPayload is published when a referral join is simulated
type ReferralJoinedPayload struct {
	Reward        float64 `json:"reward"`
	TotalEarnings float64 `json:"total_earnings"`
}
