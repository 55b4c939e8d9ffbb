package events

import (
	"log/slog"
	"sync"
	"time"

	"leaveflow/internal/infra/ops"
)

const (
	queueCapacity = 256
	maxAttempts   = 3
)

// Sink accepts one event delivery attempt. Downstream transport lives behind
// this seam; the default sink logs.
type Sink interface {
	Deliver(eventType string, payload map[string]any) error
}

type slogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) Sink {
	return &slogSink{logger: logger}
}

func (s *slogSink) Deliver(eventType string, payload map[string]any) error {
	s.logger.Info("publishing event", "event_type", eventType, "payload", payload)
	return nil
}

type event struct {
	eventType string
	payload   map[string]any
}

// Publisher fans lifecycle events out to the sink from a single worker
// goroutine. Delivery is best-effort: a full queue drops the event with a
// warning, and delivery retries run as a bounded loop with computed backoff
// rather than recursive re-scheduling. Publish never blocks and never fails
// the transition that emitted the event.
type Publisher struct {
	sink    Sink
	monitor ops.Monitor
	logger  *slog.Logger
	sleep   func(time.Duration)

	queue chan event
	done  chan struct{}
	once  sync.Once
}

func NewPublisher(sink Sink, monitor ops.Monitor, logger *slog.Logger) *Publisher {
	return &Publisher{
		sink:    sink,
		monitor: monitor,
		logger:  logger,
		sleep:   time.Sleep,
		queue:   make(chan event, queueCapacity),
		done:    make(chan struct{}),
	}
}

// PublishPostCommit emits an event for a committed state transition. Callers
// invoke it only after their persistence has succeeded.
func (p *Publisher) PublishPostCommit(eventType string, payload map[string]any) {
	p.enqueue(eventType, payload)
}

// PublishImmediate emits a degraded-mode signal right away, without waiting
// for any surrounding transition to commit.
func (p *Publisher) PublishImmediate(eventType string, payload map[string]any) {
	p.enqueue(eventType, payload)
}

func (p *Publisher) enqueue(eventType string, payload map[string]any) {
	select {
	case p.queue <- event{eventType: eventType, payload: payload}:
	default:
		p.logger.Warn("event queue full, dropping event", "event_type", eventType)
	}
}

func (p *Publisher) Start() {
	go p.run()
}

// Stop drains the queue and waits for the worker to exit.
func (p *Publisher) Stop() {
	p.once.Do(func() {
		close(p.queue)
	})
	<-p.done
}

func (p *Publisher) run() {
	defer close(p.done)
	for ev := range p.queue {
		p.attemptDelivery(ev)
	}
}

func (p *Publisher) attemptDelivery(ev event) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := p.sink.Deliver(ev.eventType, ev.payload)
		if err == nil {
			return
		}
		p.logger.Warn("event publish failed",
			"event_type", ev.eventType,
			"attempt", attempt,
			"error", err.Error(),
		)
		if attempt < maxAttempts {
			p.sleep(time.Duration(1<<attempt) * time.Second)
		}
	}
	p.monitor.RecordEventFailure(ev.eventType, maxAttempts)
}
