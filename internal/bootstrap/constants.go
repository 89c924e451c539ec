package bootstrap

import "time"

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// Event system defaults
const (
	EventDefaultMaxRetries = 3
	EventDefaultRetryDelay = 1 * time.Second
)

// Snapshot cache configuration
const (
	SnapshotCacheSize = 4
	SnapshotCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgStorageInitialized             = "Snapshot storage initialized"
	LogMsgSaveLoaded                     = "Save loaded"
	LogMsgNewSaveCreated                 = "No existing save found, starting fresh"
	LogMsgSaveUnreadable                 = "Save could not be read, starting fresh"
	LogMsgShuttingDownServer             = "Shutting down server"
	LogMsgServerForcedShutdown           = "Server forced to shutdown"
	LogMsgShuttingDownEventPublisher     = "Shutting down event publisher"
	LogMsgResilientPublisherFailed       = "Resilient publisher shutdown failed"
	LogMsgDailyWorkerShutdownFailed      = "Daily quest worker shutdown failed"
	LogMsgServerStopped                  = "Server stopped"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)
