package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// GetBill returns the stored JSON snapshot for the channel, or nil when the
// channel has no bill yet.
func (db *DB) GetBill(ctx context.Context, channelID string) ([]byte, error) {
	var snapshot []byte
	err := db.pool.QueryRow(ctx,
		"SELECT snapshot FROM bills WHERE channel_id = $1",
		channelID,
	).Scan(&snapshot)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// PutBill upserts the channel's bill snapshot.
func (db *DB) PutBill(ctx context.Context, channelID string, snapshot []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO bills (channel_id, snapshot, updated_at)
		 VALUES ($1, $2, CURRENT_TIMESTAMP)
		 ON CONFLICT (channel_id) DO UPDATE
		 SET snapshot = EXCLUDED.snapshot, updated_at = CURRENT_TIMESTAMP`,
		channelID, snapshot,
	)
	return err
}

// DeleteBill drops the channel's bill. Deleting a channel without one is
// not an error.
func (db *DB) DeleteBill(ctx context.Context, channelID string) error {
	_, err := db.pool.Exec(ctx,
		"DELETE FROM bills WHERE channel_id = $1",
		channelID,
	)
	return err
}
