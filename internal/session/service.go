package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/muzaffarov/splitbill/internal/billing"
)

var (
	ErrEmptyBill     = errors.New("Пожалуйста, добавьте участников и блюда.")
	ErrEmptyName     = errors.New("Имя не может быть пустым. Повторите, пожалуйста.")
	ErrBadServicePct = errors.New("Введите число от 0 до 100.")
)

var maxServicePct = decimal.NewFromInt(100)

const tokenTTL = 24 * time.Hour

type webToken struct {
	channelID string
	expiresAt time.Time
}

// Manager owns every channel's bill. One lock serializes mutation and
// settlement, so nothing downstream ever reads a half-updated assignment
// matrix. Bills returned to callers are deep copies.
type Manager struct {
	mu     sync.Mutex
	store  Store
	tokens map[string]webToken
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, tokens: make(map[string]webToken)}
}

// load fetches the channel's bill, creating an empty one on first access.
func (m *Manager) load(ctx context.Context, channelID string) (*billing.Bill, error) {
	bill, err := m.store.Get(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		bill = billing.NewBill()
	}
	return bill, nil
}

// NewBill discards the channel's whole aggregate and starts over.
func (m *Manager) NewBill(ctx context.Context, channelID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Put(ctx, channelID, billing.NewBill())
}

// AddDish parses one free-text dish line and appends the dish.
func (m *Manager) AddDish(ctx context.Context, channelID, text string) (*billing.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, err := m.load(ctx, channelID)
	if err != nil {
		return nil, err
	}
	d, err := billing.ParseDish(text)
	if err != nil {
		return nil, err
	}
	bill.AddDish(d.Name, d.QtyTotal, d.LineTotal)
	if err := m.store.Put(ctx, channelID, bill); err != nil {
		return nil, err
	}
	return bill.Clone(), nil
}

// AddParticipant appends a named participant to the channel's bill.
func (m *Manager) AddParticipant(ctx context.Context, channelID, name string) (*billing.Bill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, err := m.load(ctx, channelID)
	if err != nil {
		return nil, err
	}
	bill.AddParticipant(name)
	if err := m.store.Put(ctx, channelID, bill); err != nil {
		return nil, err
	}
	return bill.Clone(), nil
}

// AddGroup snapshots the given participant indices as a named group.
func (m *Manager) AddGroup(ctx context.Context, channelID, name string, members []int) (*billing.Bill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, err := m.load(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if _, err := bill.AddGroup(name, members); err != nil {
		return nil, err
	}
	if err := m.store.Put(ctx, channelID, bill); err != nil {
		return nil, err
	}
	return bill.Clone(), nil
}

// SetServicePct stores the bill-wide service percentage, 0 to 100.
func (m *Manager) SetServicePct(ctx context.Context, channelID string, pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(maxServicePct) {
		return ErrBadServicePct
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, err := m.load(ctx, channelID)
	if err != nil {
		return err
	}
	bill.ServicePct = pct
	return m.store.Put(ctx, channelID, bill)
}

// AssignUnit credits one unit of a dish to a participant.
func (m *Manager) AssignUnit(ctx context.Context, channelID string, di, pi int) (*billing.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, err := m.load(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if err := bill.AssignUnit(di, pi, decimal.NewFromInt(1)); err != nil {
		return nil, err
	}
	if err := m.store.Put(ctx, channelID, bill); err != nil {
		return nil, err
	}
	return bill.Clone(), nil
}

// AssignGroupUnit credits one unit of a dish to a group, split exactly.
func (m *Manager) AssignGroupUnit(ctx context.Context, channelID string, di, gi int) (*billing.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, err := m.load(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if err := bill.AssignGroupUnit(di, gi); err != nil {
		return nil, err
	}
	if err := m.store.Put(ctx, channelID, bill); err != nil {
		return nil, err
	}
	return bill.Clone(), nil
}

// ClearParticipant wipes one participant's picks across all dishes.
func (m *Manager) ClearParticipant(ctx context.Context, channelID string, pi int) (*billing.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, err := m.load(ctx, channelID)
	if err != nil {
		return nil, err
	}
	bill.ClearParticipant(pi)
	if err := m.store.Put(ctx, channelID, bill); err != nil {
		return nil, err
	}
	return bill.Clone(), nil
}

// Snapshot returns a copy of the channel's bill for rendering.
func (m *Manager) Snapshot(ctx context.Context, channelID string) (*billing.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, err := m.load(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return bill.Clone(), nil
}

// Summary settles the channel's bill and renders the final breakdown.
func (m *Manager) Summary(ctx context.Context, channelID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bill, err := m.load(ctx, channelID)
	if err != nil {
		return "", err
	}
	if len(bill.Participants) == 0 || len(bill.Dishes) == 0 {
		return "", ErrEmptyBill
	}
	return billing.RenderSummary(bill, billing.Settle(bill)), nil
}

// IssueWebToken mints an unguessable token that binds a webapp session to
// the channel for the next 24 hours. Possession of the token is all the
// web surface checks.
func (m *Manager) IssueWebToken(channelID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	token := newToken(48)
	m.tokens[token] = webToken{channelID: channelID, expiresAt: time.Now().Add(tokenTTL)}
	return token
}

// ResolveWebToken returns the channel a token was issued for. Expired
// tokens resolve to nothing even before the janitor sweeps them.
func (m *Manager) ResolveWebToken(token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tokens[token]
	if !ok {
		return "", false
	}
	if time.Now().After(t.expiresAt) {
		delete(m.tokens, token)
		return "", false
	}
	return t.channelID, true
}

// PruneTokens drops every token that expired before now and reports how
// many were dropped.
func (m *Manager) PruneTokens(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	pruned := 0
	for token, t := range m.tokens {
		if now.After(t.expiresAt) {
			delete(m.tokens, token)
			pruned++
		}
	}
	return pruned
}
