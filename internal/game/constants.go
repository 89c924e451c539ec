package game

// Log messages
const (
	LogMsgSnapshotSaveFailed = "Failed to save state snapshot"
	LogMsgDailyQuestsReset   = "Daily quests regenerated"
	LogMsgAssetBought        = "Asset purchased"
	LogMsgListingBought      = "Market listing purchased"
	LogMsgIncomeCollected    = "Income collected"
	LogMsgQuestClaimed       = "Quest reward claimed"
	LogMsgDepositCompleted   = "Deposit completed"
	LogMsgReferralRedeemed   = "Referral code redeemed"
	LogMsgReferralJoined     = "Referral join simulated"
	LogMsgAchievementUnlock  = "Achievement unlocked"
)
