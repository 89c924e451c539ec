package catalog

// Default config paths
const (
	DefaultAssetsPath       = "configs/assets.json"
	DefaultQuestPoolPath    = "configs/quest_pool.json"
	DefaultAchievementsPath = "configs/achievements.json"
	DefaultMarketPath       = "configs/market.json"
)

// Schema location convention relative to the config directory
const (
	SchemaDirName    = "schemas"
	SchemaFileSuffix = ".schema.json"
)

// Error message formats
const (
	ErrMsgReadConfigFileFailed = "failed to read config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse config file: %w"

	ErrFmtConfigNil          = "%w: config is nil"
	ErrFmtNoEntriesDefined   = "%w: %s defines no entries"
	ErrFmtEmptyID            = "%w: %s entry at index %d has empty id"
	ErrFmtDuplicateID        = "%w: duplicate id '%s'"
	ErrFmtNegativePrice      = "%w: '%s' has non-positive price"
	ErrFmtNegativeRate       = "%w: '%s' has non-positive income rate"
	ErrFmtNegativeInterval   = "%w: '%s' has non-positive income interval"
	ErrFmtUnknownCategory    = "%w: '%s' has unknown category '%s'"
	ErrFmtUnknownQuestType   = "%w: template %d has unknown quest type '%s'"
	ErrFmtNonPositiveTarget  = "%w: template %d has non-positive target"
	ErrFmtNegativeReward     = "%w: template %d has negative reward"
	ErrFmtUnknownListingsRef = "%w: listing '%s' references unknown asset '%s'"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
)
