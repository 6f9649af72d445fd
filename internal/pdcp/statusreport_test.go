package pdcp

import (
	"bytes"
	"testing"
)

func TestSendStatusReportScenarioS3(t *testing.T) {
	cfg, _ := NewEntityConfig(DRB, RLCModeAM, 12, 0, false, 1, 1)
	rlc := &fakeRLC{}
	e := newTestEntity(t, cfg, rlc, &fakeUpper{}, newFakeCrypto(), &fakeTimerService{})

	// Undelivered SNs 3, 5, 8: FMS=3, bitmap offsets {0,2,5} set.
	_ = e.undelivered.Store(3, []byte("s3"))
	_ = e.undelivered.Store(5, []byte("s5"))
	_ = e.undelivered.Store(8, []byte("s8"))

	e.SendStatusReport()

	if len(rlc.written) != 1 {
		t.Fatalf("rlc received %d PDUs, want 1", len(rlc.written))
	}
	want := []byte{0x00, 0x03, 0xA4}
	if !bytes.Equal(rlc.written[0], want) {
		t.Errorf("status report = %08b, want %08b", rlc.written[0], want)
	}
}

func TestSendStatusReportOnNonAMBearerIsNoop(t *testing.T) {
	cfg, _ := NewEntityConfig(DRB, RLCModeUM, 12, 0, false, 1, 1)
	rlc := &fakeRLC{um: true}
	e := newTestEntity(t, cfg, rlc, &fakeUpper{}, newFakeCrypto(), &fakeTimerService{})

	e.SendStatusReport()

	if len(rlc.written) != 0 {
		t.Errorf("expected no status report emitted for a UM bearer, got %d", len(rlc.written))
	}
}

func TestSendStatusReportEmptyQueueUsesNextTxSNAsFMS(t *testing.T) {
	cfg, _ := NewEntityConfig(DRB, RLCModeAM, 12, 0, false, 1, 1)
	rlc := &fakeRLC{}
	e := newTestEntity(t, cfg, rlc, &fakeUpper{}, newFakeCrypto(), &fakeTimerService{})
	e.state.NextTxSN = 9

	e.SendStatusReport()

	if len(rlc.written) != 1 {
		t.Fatalf("rlc received %d PDUs, want 1", len(rlc.written))
	}
	if len(rlc.written[0]) != 2 {
		t.Fatalf("len(status report) = %d, want 2 (no bitmap)", len(rlc.written[0]))
	}
	want := []byte{0x00, 0x09}
	if !bytes.Equal(rlc.written[0], want) {
		t.Errorf("status report header = %v, want %v", rlc.written[0], want)
	}
}

func TestHandleStatusReportPDUScenarioS4(t *testing.T) {
	cfg, _ := NewEntityConfig(DRB, RLCModeAM, 12, 0, false, 1, 1)
	e := newTestEntity(t, cfg, &fakeRLC{}, &fakeUpper{}, newFakeCrypto(), &fakeTimerService{})

	for _, sn := range []uint32{3, 4, 5, 6, 8} {
		_ = e.undelivered.Store(sn, []byte("x"))
	}

	report := []byte{0x00, 0x03, 0xA4} // FMS=3, acks offsets {0,2,5} => SNs 3,5,8
	e.handleStatusReportPDU(report)

	remaining := e.undelivered.Keys()
	want := []uint32{4, 6}
	if len(remaining) != len(want) {
		t.Fatalf("remaining keys = %v, want %v", remaining, want)
	}
	for i := range want {
		if remaining[i] != want[i] {
			t.Errorf("remaining[%d] = %d, want %d", i, remaining[i], want[i])
		}
	}
}

func TestHandleStatusReportPDUErasesEverythingBelowFMS(t *testing.T) {
	cfg, _ := NewEntityConfig(DRB, RLCModeAM, 12, 0, false, 1, 1)
	e := newTestEntity(t, cfg, &fakeRLC{}, &fakeUpper{}, newFakeCrypto(), &fakeTimerService{})

	for _, sn := range []uint32{1, 2, 3, 10} {
		_ = e.undelivered.Store(sn, []byte("x"))
	}

	report := []byte{0x00, 0x05} // FMS=5, no bitmap bytes
	e.handleStatusReportPDU(report)

	remaining := e.undelivered.Keys()
	if len(remaining) != 1 || remaining[0] != 10 {
		t.Errorf("remaining = %v, want [10]", remaining)
	}
}

func TestStatusReportEncodeDecodeRoundTrip(t *testing.T) {
	cfg, _ := NewEntityConfig(DRB, RLCModeAM, 18, 0, false, 1, 1)
	tx := newTestEntity(t, cfg, &fakeRLC{}, &fakeUpper{}, newFakeCrypto(), &fakeTimerService{})
	for _, sn := range []uint32{100, 101, 103, 110} {
		_ = tx.undelivered.Store(sn, []byte("x"))
	}
	txRLC := tx.rlc.(*fakeRLC)
	tx.SendStatusReport()
	report := txRLC.written[0]

	rx := newTestEntity(t, cfg, &fakeRLC{}, &fakeUpper{}, newFakeCrypto(), &fakeTimerService{})
	for _, sn := range []uint32{95, 100, 101, 102, 103, 108, 110} {
		_ = rx.undelivered.Store(sn, []byte("x"))
	}
	rx.handleStatusReportPDU(report)

	remaining := rx.undelivered.Keys()
	want := []uint32{102, 108}
	if len(remaining) != len(want) {
		t.Fatalf("remaining = %v, want %v", remaining, want)
	}
	for i := range want {
		if remaining[i] != want[i] {
			t.Errorf("remaining[%d] = %d, want %d", i, remaining[i], want[i])
		}
	}
}
