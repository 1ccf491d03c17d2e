// Package session keeps one bill per chat channel and serializes every
// mutation and settlement behind a single lock.
package session

import (
	"context"

	"github.com/muzaffarov/splitbill/internal/billing"
)

// Store holds bill snapshots keyed by channel id. Get returns a nil bill
// when the channel has none yet; the Manager creates one on first access.
type Store interface {
	Get(ctx context.Context, channelID string) (*billing.Bill, error)
	Put(ctx context.Context, channelID string, bill *billing.Bill) error
	Delete(ctx context.Context, channelID string) error
}
