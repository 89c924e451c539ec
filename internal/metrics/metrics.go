package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	AssetsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAssetsBought,
			Help: HelpTextAssetsBought,
		},
		[]string{LabelAsset},
	)

	AmountSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountSpent,
			Help: HelpTextAmountSpent,
		},
	)

	IncomeCollections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIncomeCollections,
			Help: HelpTextIncomeCollections,
		},
		[]string{LabelAsset},
	)

	IncomeAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIncomeAmount,
			Help: HelpTextIncomeAmount,
		},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelQuestType},
	)

	QuestsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsClaimed,
			Help: HelpTextQuestsClaimed,
		},
	)

	QuestRewardsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestRewardsPaid,
			Help: HelpTextQuestRewardsPaid,
		},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	Deposits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDeposits,
			Help: HelpTextDeposits,
		},
	)

	ReferralsRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReferralsRedeemed,
			Help: HelpTextReferralsRedeemed,
		},
	)

	ReferralJoins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReferralJoins,
			Help: HelpTextReferralJoins,
		},
	)

	DailyResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyResets,
			Help: HelpTextDailyResets,
		},
	)
)
