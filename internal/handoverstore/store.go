// Package handoverstore persists pdcp.BearerState snapshots to a
// Valkey/Redis instance, keyed by LCID, so a source and target gNB
// process can exchange handover state beyond an in-memory struct copy.
// It reuses pkg/valkey and the teacher's contextStore CRUD-with-TTL
// shape (HSet+Expire pipeline, HGetAll read-back).
package handoverstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/l2sim/pdcp-entity/internal/pdcp"
	"github.com/l2sim/pdcp-entity/pkg/apperr"
)

const keyPrefix = "pdcp:bearer-state:"

// DefaultTTL is how long a handover snapshot survives unread before
// Valkey expires it.
const DefaultTTL = 30 * time.Second

// record is the wire shape of a handover snapshot: the five BearerState
// counters as flat hash fields. The undelivered queue is not part of the
// record and is not persisted.
type record struct {
	NextTxSN          uint32 `redis:"next_tx_sn"`
	TxHFN             uint32 `redis:"tx_hfn"`
	NextRxSN          uint32 `redis:"next_rx_sn"`
	RxHFN             uint32 `redis:"rx_hfn"`
	LastSubmittedRxSN uint32 `redis:"last_submitted_rx_sn"`
}

// Store persists and retrieves pdcp.BearerState snapshots.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New wraps an existing *redis.Client. ttl of zero uses DefaultTTL.
func New(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

func keyFor(lcid uint32) string {
	return fmt.Sprintf("%s%d", keyPrefix, lcid)
}

// Put writes bs for lcid and refreshes the TTL.
func (s *Store) Put(ctx context.Context, lcid uint32, bs pdcp.BearerState) error {
	key := keyFor(lcid)
	m := structToMap(record{
		NextTxSN:          bs.NextTxSN,
		TxHFN:             bs.TxHFN,
		NextRxSN:          bs.NextRxSN,
		RxHFN:             bs.RxHFN,
		LastSubmittedRxSN: bs.LastSubmittedRxSN,
	})

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, key, m)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.NewHandoverStoreError("put", lcid, err)
	}
	return nil
}

// Get reads back the bearer state for lcid.
func (s *Store) Get(ctx context.Context, lcid uint32) (pdcp.BearerState, error) {
	key := keyFor(lcid)
	m, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return pdcp.BearerState{}, apperr.NewHandoverStoreError("get", lcid, err)
	}
	if len(m) == 0 {
		return pdcp.BearerState{}, apperr.ErrBearerStateNotFound
	}

	var rec record
	if err := mapToStruct(m, &rec); err != nil {
		return pdcp.BearerState{}, apperr.NewHandoverStoreError("get", lcid, err)
	}
	return pdcp.BearerState{
		NextTxSN:          rec.NextTxSN,
		TxHFN:             rec.TxHFN,
		NextRxSN:          rec.NextRxSN,
		RxHFN:             rec.RxHFN,
		LastSubmittedRxSN: rec.LastSubmittedRxSN,
	}, nil
}

// Delete removes lcid's snapshot, if any. Deleting a missing key is not
// an error.
func (s *Store) Delete(ctx context.Context, lcid uint32) error {
	if err := s.client.Del(ctx, keyFor(lcid)).Err(); err != nil {
		return apperr.NewHandoverStoreError("delete", lcid, err)
	}
	return nil
}

// Exists reports whether lcid has a live snapshot.
func (s *Store) Exists(ctx context.Context, lcid uint32) (bool, error) {
	n, err := s.client.Exists(ctx, keyFor(lcid)).Result()
	if err != nil {
		return false, apperr.NewHandoverStoreError("exists", lcid, err)
	}
	return n > 0, nil
}
