package simulator

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/l2sim/pdcp-entity/internal/cryptolocal"
	"github.com/l2sim/pdcp-entity/internal/handoverstore"
	"github.com/l2sim/pdcp-entity/internal/pdcp"
)

func newTestSimulator(t *testing.T) *Simulator {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := handoverstore.New(client, time.Minute)
	crypto := cryptolocal.New([]byte("a-test-key-of-16"))
	return New(nil, store, crypto)
}

func TestProvisionAndSendPersistsSnapshot(t *testing.T) {
	s := newTestSimulator(t)
	ctx := context.Background()

	b, err := s.Provision(pdcp.DRB, pdcp.RLCModeAM, 12, 0, false, 5, 5)
	if err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if b.Kind != "DRB/AM" {
		t.Errorf("Kind = %q, want DRB/AM", b.Kind)
	}

	if err := s.Send(ctx, 5, []byte("hello")); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	got, err := s.store.Get(ctx, 5)
	if err != nil {
		t.Fatalf("store.Get() error = %v", err)
	}
	if got.NextTxSN != 1 {
		t.Errorf("NextTxSN = %d, want 1", got.NextTxSN)
	}

	snaps, err := s.store.ListSnapshots(ctx)
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(snaps) != 1 || snaps[0].LCID != 5 {
		t.Fatalf("ListSnapshots() = %+v, want one entry for lcid 5", snaps)
	}
}

func TestSendUnknownBearerReturnsError(t *testing.T) {
	s := newTestSimulator(t)
	if err := s.Send(context.Background(), 99, []byte("x")); err == nil {
		t.Error("Send() on unprovisioned bearer: expected error, got nil")
	}
}

func TestReestablishResetsSRBCounters(t *testing.T) {
	s := newTestSimulator(t)
	ctx := context.Background()

	if _, err := s.Provision(pdcp.SRB, pdcp.RLCModeAM, 5, 0, false, 1, 1); err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if err := s.Send(ctx, 1, []byte("rrc message")); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if err := s.Reestablish(ctx, 1); err != nil {
		t.Fatalf("Reestablish() error = %v", err)
	}

	got, err := s.store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("store.Get() error = %v", err)
	}
	if got.NextTxSN != 0 || got.TxHFN != 0 {
		t.Errorf("state after reestablish = %+v, want zeroed TX counters", got)
	}
}

func TestListReturnsAllProvisionedBearers(t *testing.T) {
	s := newTestSimulator(t)
	if _, err := s.Provision(pdcp.SRB, pdcp.RLCModeAM, 5, 0, false, 1, 1); err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if _, err := s.Provision(pdcp.DRB, pdcp.RLCModeUM, 7, 0, false, 6, 6); err != nil {
		t.Fatalf("Provision() error = %v", err)
	}

	if got := len(s.List()); got != 2 {
		t.Errorf("List() returned %d bearers, want 2", got)
	}
	if _, ok := s.Get(1); !ok {
		t.Error("Get(1) = not found, want found")
	}
}
