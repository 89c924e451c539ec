package event

// EventSchemaVersion is stamped on every published event
const EventSchemaVersion = "1.0"

// RetryQueueBufferSize bounds the background retry queue. A single
// installation publishes a handful of events per player action, so the
// queue only fills when a subscriber is persistently broken; overflow
// goes straight to the dead-letter file.
const RetryQueueBufferSize = 256

const deadLetterFileMode = 0644

// Log messages
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dead-lettered"
	LogMsgDeadLetterWriteFailed = "Failed to write dead-letter entry"
	LogMsgEventRetryExhausted   = "Event retries exhausted, dead-lettering"
	LogMsgEventRetryFailed      = "Event retry failed"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Event publisher shutdown timed out"
	LogMsgEventDeadLettered     = "Event written to dead-letter file"
)

// ErrFmtHandlerFailures reports aggregated subscriber errors from Publish
const ErrFmtHandlerFailures = "%d of %d handlers failed for event %s: %v"
