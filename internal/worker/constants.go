package worker

// Log messages for daily quest worker operations
const (
	LogMsgDailyCheckStarting       = "Daily quest check starting"
	LogMsgDailyQuestsRefreshed     = "Daily quests refreshed"
	LogMsgDailyCheckFailed         = "Daily quest check failed"
	LogMsgDailyWorkerStarted       = "Daily quest worker started"
	LogMsgDailyWorkerShuttingDown  = "Shutting down daily quest worker"
	LogMsgDailyWorkerShutdownDone  = "Daily quest worker shutdown complete"
	LogMsgDailyWorkerShutdownSlow  = "Daily quest worker shutdown timeout, a check may still be running"
)
