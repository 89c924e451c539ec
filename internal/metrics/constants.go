package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameAssetsBought         = "assets_bought_total"
	MetricNameAmountSpent          = "amount_spent_total"
	MetricNameIncomeCollections    = "income_collections_total"
	MetricNameIncomeAmount         = "income_amount_total"
	MetricNameQuestsCompleted      = "quests_completed_total"
	MetricNameQuestsClaimed        = "quests_claimed_total"
	MetricNameQuestRewardsPaid     = "quest_rewards_paid_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameDeposits             = "deposits_total"
	MetricNameReferralsRedeemed    = "referrals_redeemed_total"
	MetricNameReferralJoins        = "referral_joins_total"
	MetricNameDailyResets          = "daily_quest_resets_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextAssetsBought         = "Total number of assets purchased"
	HelpTextAmountSpent          = "Total AMANAT spent on purchases"
	HelpTextIncomeCollections    = "Total number of income collections"
	HelpTextIncomeAmount         = "Total AMANAT collected as income"
	HelpTextQuestsCompleted      = "Total number of quests completed"
	HelpTextQuestsClaimed        = "Total number of quest rewards claimed"
	HelpTextQuestRewardsPaid     = "Total AMANAT paid out as quest rewards"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextDeposits             = "Total number of simulated deposits"
	HelpTextReferralsRedeemed    = "Total number of referral codes redeemed"
	HelpTextReferralJoins        = "Total number of simulated referral joins"
	HelpTextDailyResets          = "Total number of daily quest regenerations"
)

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelAsset       = "asset"
	LabelQuestType   = "quest_type"
	LabelAchievement = "achievement"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request
// duration in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgUnknownEventType = "No metrics mapped for event type"
	LogMsgMetricsRecorded  = "Metrics recorded for event"
)
