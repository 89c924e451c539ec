package event

import (
	"context"
	"sync"
	"time"

	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// retryEntry tracks an event awaiting republication
type retryEntry struct {
	event    Event
	attempts int
}

// ResilientPublisher wraps an Event Bus with a bounded retry queue and a
// dead-letter file for events that exhaust their retries. Callers are never
// blocked by a failing subscriber.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry attempts to publish the event once, queueing it for
// background retry on failure. It returns immediately.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryEntry{event: event, attempts: 1})
}

// Publish satisfies the Bus interface, delegating to PublishWithRetry
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry, nil)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			p.drainQueue()
			return
		case entry := <-p.retryQueue:
			// Exponential backoff keyed on the attempt number. During
			// shutdown the wait is cut short and the attempt made anyway.
			delay := backoffDelay(p.retryDelay, entry.attempts)
			select {
			case <-time.After(delay):
			case <-p.shutdown:
			}

			err := p.bus.Publish(context.Background(), entry.event)
			if err == nil {
				logger.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempts)
				continue
			}

			if entry.attempts >= p.maxRetries {
				logger.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
				p.writeDeadLetter(entry, err)
				continue
			}

			logger.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
			entry.attempts++
			p.enqueue(entry)
		}
	}
}

// drainQueue makes one final publish attempt for each queued event and
// dead-letters whatever still fails
func (p *ResilientPublisher) drainQueue() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				p.writeDeadLetter(entry, err)
			}
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "events", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry, lastError error) {
	if err := p.deadLetter.Write(entry.event, entry.attempts, lastError); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// backoffDelay is the exponential backoff for the nth retry attempt:
// base, 2*base, 4*base, ...
func backoffDelay(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(1<<(attempt-1))
}

// Shutdown stops the retry worker, drains pending events, and closes the
// dead-letter file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	select {
	case <-p.shutdown:
		// Already shut down
	default:
		close(p.shutdown)
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		err = ctx.Err()
	}

	if closeErr := p.deadLetter.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
