package storage

// Error message formats
const (
	ErrMsgEncodeSnapshotFailed = "failed to encode snapshot: %w"
	ErrMsgDecodeSnapshotFailed = "failed to decode snapshot: %w"
	ErrMsgCreateSaveDirFailed  = "failed to create save directory: %w"
	ErrMsgWriteSnapshotFailed  = "failed to write snapshot: %w"
	ErrMsgReadSnapshotFailed   = "failed to read snapshot: %w"
	ErrMsgUpsertSnapshotFailed = "failed to upsert snapshot row: %w"
	ErrMsgQuerySnapshotFailed  = "failed to query snapshot row: %w"

	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgConnectedToDatabase = "Connected to database"
	LogMsgSnapshotLoaded      = "Snapshot loaded"
	LogMsgNoSnapshotFound     = "No snapshot found, starting fresh"
)

// Connection pool defaults
const (
	DefaultMaxConnections  = 10
	DefaultMinConnections  = 2
	DefaultMaxConnIdleTime = "5m"
	DefaultMaxConnLifetime = "30m"
)
