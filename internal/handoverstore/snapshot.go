package handoverstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/l2sim/pdcp-entity/internal/pdcp"
	"github.com/l2sim/pdcp-entity/pkg/apperr"
)

const snapshotKeyPrefix = "pdcp:bearer-snapshot:"

// BearerSnapshot is the richer, inspector-facing view of a live bearer:
// its identity and kind plus the undelivered-SDU count, alongside the
// same five counters a handover BearerState carries. cmd/pdcp-sim writes
// one of these on every state-changing event; cmd/pdcp-inspector polls
// ListSnapshots to render them.
type BearerSnapshot struct {
	LCID             uint32
	BearerID         uint32
	Kind             string // "SRB", "DRB/AM" or "DRB/UM"
	UndeliveredCount int
	State            pdcp.BearerState
	UpdatedAt        time.Time
}

type snapshotRecord struct {
	LCID              uint32 `redis:"lcid"`
	BearerID          uint32 `redis:"bearer_id"`
	Kind              string `redis:"kind"`
	UndeliveredCount  uint32 `redis:"undelivered_count"`
	NextTxSN          uint32 `redis:"next_tx_sn"`
	TxHFN             uint32 `redis:"tx_hfn"`
	NextRxSN          uint32 `redis:"next_rx_sn"`
	RxHFN             uint32 `redis:"rx_hfn"`
	LastSubmittedRxSN uint32 `redis:"last_submitted_rx_sn"`
	UpdatedAtUnix     int64  `redis:"updated_at_unix"`
}

func snapshotKeyFor(lcid uint32) string {
	return snapshotKeyPrefix + keyFor(lcid)[len(keyPrefix):]
}

// PutSnapshot writes snap and refreshes its TTL.
func (s *Store) PutSnapshot(ctx context.Context, snap BearerSnapshot) error {
	key := snapshotKeyFor(snap.LCID)
	rec := snapshotRecord{
		LCID:              snap.LCID,
		BearerID:          snap.BearerID,
		Kind:              snap.Kind,
		UndeliveredCount:  uint32(snap.UndeliveredCount),
		NextTxSN:          snap.State.NextTxSN,
		TxHFN:             snap.State.TxHFN,
		NextRxSN:          snap.State.NextRxSN,
		RxHFN:             snap.State.RxHFN,
		LastSubmittedRxSN: snap.State.LastSubmittedRxSN,
		UpdatedAtUnix:     snap.UpdatedAt.Unix(),
	}

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, key, structToMap(rec))
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.NewHandoverStoreError("put_snapshot", snap.LCID, err)
	}
	return nil
}

// ListSnapshots returns every live bearer snapshot, scanning the key
// space and fetching in a single pipeline, the same SCAN-then-pipeline
// shape as the teacher's SessionStore.List.
func (s *Store) ListSnapshots(ctx context.Context) ([]BearerSnapshot, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, snapshotKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, apperr.NewHandoverStoreError("list_snapshots", 0, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.HGetAll(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, apperr.NewHandoverStoreError("list_snapshots", 0, err)
	}

	var snapshots []BearerSnapshot
	for _, cmd := range cmds {
		m, err := cmd.Result()
		if err != nil || len(m) == 0 {
			continue
		}
		var rec snapshotRecord
		if err := mapToStruct(m, &rec); err != nil {
			continue
		}
		snapshots = append(snapshots, BearerSnapshot{
			LCID:             rec.LCID,
			BearerID:         rec.BearerID,
			Kind:             rec.Kind,
			UndeliveredCount: int(rec.UndeliveredCount),
			State: pdcp.BearerState{
				NextTxSN:          rec.NextTxSN,
				TxHFN:             rec.TxHFN,
				NextRxSN:          rec.NextRxSN,
				RxHFN:             rec.RxHFN,
				LastSubmittedRxSN: rec.LastSubmittedRxSN,
			},
			UpdatedAt: time.Unix(rec.UpdatedAtUnix, 0),
		})
	}

	sortSnapshotsByLCID(snapshots)
	return snapshots, nil
}

// DeleteSnapshot removes lcid's snapshot, if any.
func (s *Store) DeleteSnapshot(ctx context.Context, lcid uint32) error {
	if err := s.client.Del(ctx, snapshotKeyFor(lcid)).Err(); err != nil {
		return apperr.NewHandoverStoreError("delete_snapshot", lcid, err)
	}
	return nil
}

// sortSnapshotsByLCID insertion-sorts snaps in place; the list is small
// enough (one entry per live bearer) that this beats pulling in sort for
// a single call site.
func sortSnapshotsByLCID(snaps []BearerSnapshot) {
	for i := 1; i < len(snaps); i++ {
		for j := i; j > 0 && snaps[j-1].LCID > snaps[j].LCID; j-- {
			snaps[j-1], snaps[j] = snaps[j], snaps[j-1]
		}
	}
}
