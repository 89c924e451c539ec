package worker

import (
	"context"
	"sync"
	"time"

	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// QuestRefresher rolls the daily quest set over when the current one is stale.
type QuestRefresher interface {
	RefreshDailyQuests(ctx context.Context) (bool, error)
}

// DailyQuestWorker polls the game service so a save that crosses a calendar
// day while the process is running still gets fresh quests. The refresher
// itself decides whether the current set is stale, so polling more often than
// needed is harmless.
type DailyQuestWorker struct {
	refresher QuestRefresher
	interval  time.Duration
	shutdown  chan struct{}
	wg        sync.WaitGroup
	once      sync.Once
}

// NewDailyQuestWorker creates a new DailyQuestWorker
func NewDailyQuestWorker(refresher QuestRefresher, interval time.Duration) *DailyQuestWorker {
	return &DailyQuestWorker{
		refresher: refresher,
		interval:  interval,
		shutdown:  make(chan struct{}),
	}
}

// Start launches the polling loop
func (w *DailyQuestWorker) Start() {
	log := logger.FromContext(context.Background())
	log.Info(LogMsgDailyWorkerStarted, "interval", w.interval)

	w.wg.Add(1)
	go w.run()
}

func (w *DailyQuestWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdown:
			return
		case <-ticker.C:
			w.check()
		}
	}
}

func (w *DailyQuestWorker) check() {
	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Debug(LogMsgDailyCheckStarting)

	refreshed, err := w.refresher.RefreshDailyQuests(ctx)
	if err != nil {
		log.Error(LogMsgDailyCheckFailed, "error", err)
		return
	}
	if refreshed {
		log.Info(LogMsgDailyQuestsRefreshed)
	}
}

// Shutdown gracefully stops the worker and waits for an in-flight check
func (w *DailyQuestWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDailyWorkerShuttingDown)

	w.once.Do(func() {
		close(w.shutdown)
	})

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgDailyWorkerShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgDailyWorkerShutdownSlow)
		return ctx.Err()
	}
}
