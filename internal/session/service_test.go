package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/muzaffarov/splitbill/internal/billing"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryStore())
}

func TestManagerCreatesBillOnFirstAccess(t *testing.T) {
	m := newTestManager()
	bill, err := m.Snapshot(context.Background(), "chan-1")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(bill.Participants) != 0 || len(bill.Dishes) != 0 {
		t.Errorf("fresh bill is not empty: %+v", bill)
	}
}

func TestManagerBillFlow(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	if _, err := m.AddParticipant(ctx, "chan", "Алишер"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	if _, err := m.AddParticipant(ctx, "chan", "Бахтиёр"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	bill, err := m.AddDish(ctx, "chan", "Шашлык сет 2 шт 28000")
	if err != nil {
		t.Fatalf("AddDish() error = %v", err)
	}
	if len(bill.Dishes) != 1 || len(bill.Dishes[0].Assigned) != 2 {
		t.Fatalf("dish not appended with widened matrix: %+v", bill.Dishes)
	}

	if _, err := m.AssignUnit(ctx, "chan", 0, 0); err != nil {
		t.Fatalf("AssignUnit() error = %v", err)
	}
	if _, err := m.AssignUnit(ctx, "chan", 0, 1); err != nil {
		t.Fatalf("AssignUnit() error = %v", err)
	}
	if err := m.SetServicePct(ctx, "chan", decimal.NewFromInt(10)); err != nil {
		t.Fatalf("SetServicePct() error = %v", err)
	}

	summary, err := m.Summary(ctx, "chan")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	for _, want := range []string{
		"Без сервиса: 28 000 UZS",
		"Сервис 10%: 2 800 UZS",
		"💰 Итого: 30 800 UZS",
		"1. Алишер — 15 400 UZS  (до сервиса: 14 000 UZS, +1 400 UZS)",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() missing %q in:\n%s", want, summary)
		}
	}
}

func TestManagerNewBillResets(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	if _, err := m.AddParticipant(ctx, "chan", "Алишер"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	if err := m.NewBill(ctx, "chan"); err != nil {
		t.Fatalf("NewBill() error = %v", err)
	}
	bill, err := m.Snapshot(ctx, "chan")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(bill.Participants) != 0 {
		t.Errorf("participants survived reset: %+v", bill.Participants)
	}
}

func TestManagerChannelsAreIsolated(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	if _, err := m.AddParticipant(ctx, "a", "Алишер"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	bill, err := m.Snapshot(ctx, "b")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(bill.Participants) != 0 {
		t.Errorf("channel b sees channel a's participants")
	}
}

func TestManagerSnapshotIsACopy(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	if _, err := m.AddParticipant(ctx, "chan", "Алишер"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	snap, err := m.Snapshot(ctx, "chan")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	snap.Participants[0].Name = "изменено"
	snap.AddDish("лишнее", decimal.NewFromInt(1), decimal.NewFromInt(1))

	fresh, err := m.Snapshot(ctx, "chan")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if fresh.Participants[0].Name != "Алишер" || len(fresh.Dishes) != 0 {
		t.Errorf("snapshot mutation leaked into the store: %+v", fresh)
	}
}

func TestManagerValidation(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	if _, err := m.AddParticipant(ctx, "chan", "   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("AddParticipant(blank) error = %v, want ErrEmptyName", err)
	}
	if err := m.SetServicePct(ctx, "chan", decimal.NewFromInt(-1)); !errors.Is(err, ErrBadServicePct) {
		t.Errorf("SetServicePct(-1) error = %v, want ErrBadServicePct", err)
	}
	if err := m.SetServicePct(ctx, "chan", decimal.NewFromInt(101)); !errors.Is(err, ErrBadServicePct) {
		t.Errorf("SetServicePct(101) error = %v, want ErrBadServicePct", err)
	}
	if _, err := m.Summary(ctx, "chan"); !errors.Is(err, ErrEmptyBill) {
		t.Errorf("Summary() on empty bill error = %v, want ErrEmptyBill", err)
	}
}

func TestManagerPropagatesCapacityError(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	if _, err := m.AddParticipant(ctx, "chan", "Алишер"); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	if _, err := m.AddDish(ctx, "chan", "Плов 45000"); err != nil {
		t.Fatalf("AddDish() error = %v", err)
	}
	if _, err := m.AssignUnit(ctx, "chan", 0, 0); err != nil {
		t.Fatalf("AssignUnit() error = %v", err)
	}
	if _, err := m.AssignUnit(ctx, "chan", 0, 0); !errors.Is(err, billing.ErrCapacityExceeded) {
		t.Errorf("AssignUnit() error = %v, want ErrCapacityExceeded", err)
	}
}

func TestWebTokens(t *testing.T) {
	m := newTestManager()

	t1 := m.IssueWebToken("chan-1")
	t2 := m.IssueWebToken("chan-2")
	if t1 == t2 {
		t.Fatalf("tokens collide: %q", t1)
	}
	if got, ok := m.ResolveWebToken(t1); !ok || got != "chan-1" {
		t.Errorf("ResolveWebToken(t1) = %q, %v, want chan-1, true", got, ok)
	}
	if _, ok := m.ResolveWebToken("unknown"); ok {
		t.Errorf("ResolveWebToken(unknown) = true, want false")
	}
}

func TestResolveWebTokenExpiresInline(t *testing.T) {
	m := newTestManager()
	token := m.IssueWebToken("chan-1")

	// Backdate the token; no sweep runs in this test.
	m.mu.Lock()
	wt := m.tokens[token]
	wt.expiresAt = time.Now().Add(-time.Minute)
	m.tokens[token] = wt
	m.mu.Unlock()

	if got, ok := m.ResolveWebToken(token); ok {
		t.Fatalf("ResolveWebToken() on expired token = %q, true, want false", got)
	}
	m.mu.Lock()
	_, kept := m.tokens[token]
	m.mu.Unlock()
	if kept {
		t.Errorf("expired token still in the map after resolve")
	}
}

func TestPruneTokens(t *testing.T) {
	m := newTestManager()

	t1 := m.IssueWebToken("chan-1")
	t2 := m.IssueWebToken("chan-2")

	if pruned := m.PruneTokens(time.Now()); pruned != 0 {
		t.Errorf("PruneTokens(now) = %d, want 0", pruned)
	}
	if pruned := m.PruneTokens(time.Now().Add(tokenTTL + time.Minute)); pruned != 2 {
		t.Errorf("PruneTokens(past ttl) = %d, want 2", pruned)
	}
	if _, ok := m.ResolveWebToken(t1); ok {
		t.Errorf("ResolveWebToken(t1) after prune = true, want false")
	}
	if _, ok := m.ResolveWebToken(t2); ok {
		t.Errorf("ResolveWebToken(t2) after prune = true, want false")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, "chan", billing.NewBill()); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Delete(ctx, "chan"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	bill, err := s.Get(ctx, "chan")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if bill != nil {
		t.Errorf("Get() after delete = %+v, want nil", bill)
	}
}
