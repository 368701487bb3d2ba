package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finai/internal/amqp"
	"finai/internal/ledger"
)

// Publisher sends a ledger event to the broker. *amqp.Client implements it.
type Publisher interface {
	PublishLedgerEvent(ctx context.Context, msg *amqp.LedgerEventMessage) error
}

type ForwarderConfig struct {
	// BufferSize bounds events waiting to be published (default: 256).
	BufferSize int

	// PublishTimeout bounds each publish attempt (default: 5s).
	PublishTimeout time.Duration
}

func DefaultForwarderConfig() ForwarderConfig {
	return ForwarderConfig{
		BufferSize:     256,
		PublishTimeout: 5 * time.Second,
	}
}

// EventForwarder relays ledger mutations to the message broker. Publishing
// is best-effort: a full buffer or a broker failure drops the event with a
// log line and never affects the ledger.
type EventForwarder struct {
	publisher Publisher
	config    ForwarderConfig
	events    chan ledger.Event

	mu          sync.Mutex
	running     bool
	unsubscribe func()
	stopCh      chan struct{}
	doneCh      chan struct{}
}

func NewEventForwarder(publisher Publisher, config ForwarderConfig) *EventForwarder {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultForwarderConfig().BufferSize
	}
	if config.PublishTimeout <= 0 {
		config.PublishTimeout = DefaultForwarderConfig().PublishTimeout
	}
	return &EventForwarder{
		publisher: publisher,
		config:    config,
		events:    make(chan ledger.Event, config.BufferSize),
	}
}

// Start subscribes to l and begins publishing. The loop keeps ctx's values
// but not its cancellation: it runs until Stop, which drains the buffer.
// Returns an error if already running.
func (f *EventForwarder) Start(ctx context.Context, l *ledger.Ledger) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return fmt.Errorf("event forwarder is already running")
	}
	f.running = true
	f.stopCh = make(chan struct{})
	f.doneCh = make(chan struct{})
	f.unsubscribe = l.Subscribe(f.enqueue)

	go f.runLoop(context.WithoutCancel(ctx))

	slog.InfoContext(ctx, "Event forwarder started", "buffer_size", f.config.BufferSize)
	return nil
}

// Stop unsubscribes, publishes what is already buffered and waits for the
// loop to exit or ctx to expire.
func (f *EventForwarder) Stop(ctx context.Context) error {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return nil
	}
	f.unsubscribe()
	close(f.stopCh)
	f.mu.Unlock()

	select {
	case <-f.doneCh:
		slog.InfoContext(ctx, "Event forwarder stopped gracefully")
	case <-ctx.Done():
		slog.WarnContext(ctx, "Event forwarder stop timed out")
		return ctx.Err()
	}

	f.mu.Lock()
	f.running = false
	f.mu.Unlock()
	return nil
}

func (f *EventForwarder) IsRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *EventForwarder) enqueue(ev ledger.Event) {
	select {
	case f.events <- ev:
	default:
		slog.Warn("Event buffer full, dropping ledger event", "kind", ev.Kind)
	}
}

func (f *EventForwarder) runLoop(ctx context.Context) {
	defer close(f.doneCh)
	for {
		select {
		case ev := <-f.events:
			f.publish(ctx, ev)
		case <-f.stopCh:
			f.drain(ctx)
			return
		}
	}
}

func (f *EventForwarder) drain(ctx context.Context) {
	for {
		select {
		case ev := <-f.events:
			f.publish(ctx, ev)
		default:
			return
		}
	}
}

func (f *EventForwarder) publish(ctx context.Context, ev ledger.Event) {
	if f.publisher == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping ledger event", "kind", ev.Kind)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, f.config.PublishTimeout)
	defer cancel()

	msg := MessageFromEvent(ev)
	if err := f.publisher.PublishLedgerEvent(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"kind", msg.Kind,
			"id", msg.ID,
			"error", err)
	}
}

// MessageFromEvent flattens a ledger event into its wire form.
func MessageFromEvent(ev ledger.Event) *amqp.LedgerEventMessage {
	msg := &amqp.LedgerEventMessage{
		Kind:      string(ev.Kind),
		Category:  ev.Category,
		Amount:    ev.Amount,
		Savings:   ev.Savings,
		Timestamp: ev.At,
	}
	if e := ev.Expense; e != nil {
		msg.ID = e.ID
		msg.Description = e.Description
		msg.Date = e.Date
	}
	if inv := ev.Investment; inv != nil {
		msg.ID = inv.ID
		msg.Tier = string(inv.Risk)
		msg.Name = inv.Name
		msg.Description = inv.Description
		msg.ReturnRate = inv.ReturnRate
		msg.Date = ev.At.Format(time.DateOnly)
	}
	return msg
}
