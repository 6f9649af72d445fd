package pdcp

import "testing"

func TestWriteReadHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		snLen int
		sn    uint32
	}{
		{5, 17},
		{7, 100},
		{12, 4094},
		{18, 262100},
	}
	for _, tt := range tests {
		cfg := EntityConfig{SNLen: tt.snLen, HdrLenBytes: hdrLenFor(tt.snLen)}
		buf := make([]byte, cfg.HdrLenBytes+4)
		WriteHeader(buf, cfg, tt.sn)
		if got := ReadSN(buf, cfg); got != tt.sn {
			t.Errorf("sn_len=%d: ReadSN() = %d, want %d", tt.snLen, got, tt.sn)
		}
	}
}

func hdrLenFor(snLen int) int {
	switch snLen {
	case 5, 7:
		return 1
	case 12:
		return 2
	default:
		return 3
	}
}

func TestWriteHeaderDataBitForDRB(t *testing.T) {
	cfg := EntityConfig{SNLen: 12, HdrLenBytes: 2}
	buf := make([]byte, 2)
	WriteHeader(buf, cfg, 5)
	if buf[0]&0x80 == 0 {
		t.Error("expected data/control bit set for a DRB data PDU")
	}
	if IsControl(buf) {
		t.Error("IsControl() = true for a data PDU")
	}
}

func TestWriteHeaderReservedBitForSRB(t *testing.T) {
	cfg := EntityConfig{SNLen: 5, HdrLenBytes: 1}
	buf := make([]byte, 1)
	WriteHeader(buf, cfg, 5)
	if buf[0]&0xE0 != 0 {
		t.Errorf("expected top 3 bits reserved (0), got %08b", buf[0])
	}
}

func TestAppendExtractMAC(t *testing.T) {
	buf := []byte{1, 2, 3}
	mac := [4]byte{0xAA, 0xBB, 0xCC, 0xDD}
	buf = AppendMAC(buf, mac)
	if len(buf) != 7 {
		t.Fatalf("len(buf) = %d, want 7", len(buf))
	}
	rest, gotMAC := ExtractMAC(buf)
	if gotMAC != mac {
		t.Errorf("ExtractMAC() mac = %v, want %v", gotMAC, mac)
	}
	if len(rest) != 3 || rest[0] != 1 || rest[2] != 3 {
		t.Errorf("ExtractMAC() rest = %v, want [1 2 3]", rest)
	}
}

func TestStripHeader(t *testing.T) {
	cfg := EntityConfig{HdrLenBytes: 2}
	buf := []byte{0x80, 0x05, 0xAA, 0xBB}
	sdu := StripHeader(buf, cfg)
	if len(sdu) != 2 || sdu[0] != 0xAA {
		t.Errorf("StripHeader() = %v, want [0xAA 0xBB]", sdu)
	}
}

func TestIsControlAndControlType(t *testing.T) {
	buf := []byte{0x00, 0x00}
	if !IsControl(buf) {
		t.Error("IsControl() = false, want true for cleared D/C bit")
	}
	if got := ControlType(buf); got != controlTypeStatusReport {
		t.Errorf("ControlType() = %d, want %d", got, controlTypeStatusReport)
	}
}
