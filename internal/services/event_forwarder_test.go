package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"finai/internal/amqp"
	"finai/internal/core"
	"finai/internal/ledger"
)

type fakeSignal struct{}

func (fakeSignal) IsSignedIn() bool { return true }

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []*amqp.LedgerEventMessage
	err  error
}

func (p *recordingPublisher) PublishLedgerEvent(_ context.Context, msg *amqp.LedgerEventMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return p.err
}

func (p *recordingPublisher) published() []*amqp.LedgerEventMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*amqp.LedgerEventMessage(nil), p.msgs...)
}

func TestDefaultForwarderConfig(t *testing.T) {
	config := DefaultForwarderConfig()
	if config.BufferSize != 256 {
		t.Errorf("expected BufferSize 256, got %d", config.BufferSize)
	}
	if config.PublishTimeout != 5*time.Second {
		t.Errorf("expected PublishTimeout 5s, got %v", config.PublishTimeout)
	}
}

func TestEventForwarder_StartTwice(t *testing.T) {
	ctx := context.Background()
	f := NewEventForwarder(nil, ForwarderConfig{})
	l := ledger.New()

	if f.IsRunning() {
		t.Fatal("forwarder should not be running initially")
	}
	if err := f.Start(ctx, l); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := f.Start(ctx, l); err == nil {
		t.Error("second Start should fail")
	}
	if err := f.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if f.IsRunning() {
		t.Error("forwarder should not be running after Stop")
	}
}

func TestEventForwarder_PublishesLedgerEvents(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	f := NewEventForwarder(pub, DefaultForwarderConfig())
	l := ledger.New(ledger.WithAuth(fakeSignal{}))

	if err := f.Start(ctx, l); err != nil {
		t.Fatalf("Start: %v", err)
	}
	exp, err := l.RecordExpense(ctx, "Food", 300, "Dinner", core.NewDate(2024, 5, 4))
	if err != nil {
		t.Fatalf("RecordExpense: %v", err)
	}
	inv, err := l.RecordInvestment(ctx, 1000, core.RiskLow)
	if err != nil {
		t.Fatalf("RecordInvestment: %v", err)
	}
	if err := f.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	msgs := pub.published()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Kind != amqp.KindExpenseRecorded || msgs[0].ID != exp.ID || msgs[0].Date != "2024-05-04" {
		t.Errorf("unexpected expense message: %+v", msgs[0])
	}
	if msgs[1].Kind != amqp.KindInvestmentRecorded || msgs[1].ID != inv.ID || msgs[1].Tier != "low" {
		t.Errorf("unexpected investment message: %+v", msgs[1])
	}

	// Events after Stop are not forwarded.
	_ = l.SetIncome(ctx, 1)
	if got := len(pub.published()); got != 2 {
		t.Errorf("expected no more messages after Stop, got %d", got)
	}
}

type slowPublisher struct {
	delay time.Duration

	mu        sync.Mutex
	delivered int
	cancelled int
}

func (p *slowPublisher) PublishLedgerEvent(ctx context.Context, _ *amqp.LedgerEventMessage) error {
	time.Sleep(p.delay)
	p.mu.Lock()
	defer p.mu.Unlock()
	if ctx.Err() != nil {
		p.cancelled++
		return ctx.Err()
	}
	p.delivered++
	return nil
}

func TestEventForwarder_DrainsAfterStartContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pub := &slowPublisher{delay: 20 * time.Millisecond}
	f := NewEventForwarder(pub, DefaultForwarderConfig())
	l := ledger.New()

	if err := f.Start(ctx, l); err != nil {
		t.Fatalf("Start: %v", err)
	}
	const n = 10
	for i := 0; i < n; i++ {
		if _, err := l.QuickAddToCategory(context.Background(), "Food", 10); err != nil {
			t.Fatalf("QuickAddToCategory: %v", err)
		}
	}
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	if err := f.Stop(stopCtx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if pub.delivered != n || pub.cancelled != 0 {
		t.Fatalf("delivered %d of %d events, %d with a cancelled context", pub.delivered, n, pub.cancelled)
	}
}

func TestEventForwarder_PublishFailureDoesNotAffectLedger(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{err: errors.New("broker down")}
	f := NewEventForwarder(pub, DefaultForwarderConfig())
	l := ledger.New()

	if err := f.Start(ctx, l); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.SetIncome(ctx, 90000); err != nil {
		t.Fatalf("SetIncome: %v", err)
	}
	_ = f.Stop(ctx)

	if got := l.Snapshot().Income; got != 90000 {
		t.Fatalf("expected income 90000, got %v", got)
	}
}

func TestMessageFromEvent(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	msg := MessageFromEvent(ledger.Event{
		Kind:     ledger.EventLimitAdjusted,
		At:       at,
		Category: "Housing",
		Amount:   30000,
		Savings:  38500,
	})
	if msg.Kind != "limit_adjusted" || msg.Category != "Housing" || msg.Amount != 30000 || msg.ID != "" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if !msg.Timestamp.Equal(at) {
		t.Fatalf("unexpected timestamp %v", msg.Timestamp)
	}
}
