package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muzaffarov/splitbill/internal/billing"
	"github.com/muzaffarov/splitbill/internal/db"
)

// PostgresStore keeps bill snapshots in the bills table, so open sessions
// survive a restart. Selected when DATABASE_URL is configured.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(database *db.DB) *PostgresStore {
	return &PostgresStore{db: database}
}

func (s *PostgresStore) Get(ctx context.Context, channelID string) (*billing.Bill, error) {
	snapshot, err := s.db.GetBill(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}
	var bill billing.Bill
	if err := json.Unmarshal(snapshot, &bill); err != nil {
		return nil, fmt.Errorf("failed to decode bill snapshot: %w", err)
	}
	return &bill, nil
}

func (s *PostgresStore) Put(ctx context.Context, channelID string, bill *billing.Bill) error {
	snapshot, err := json.Marshal(bill)
	if err != nil {
		return fmt.Errorf("failed to encode bill snapshot: %w", err)
	}
	return s.db.PutBill(ctx, channelID, snapshot)
}

func (s *PostgresStore) Delete(ctx context.Context, channelID string) error {
	return s.db.DeleteBill(ctx, channelID)
}
