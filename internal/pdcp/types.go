// Package pdcp implements the per-bearer state machine of an LTE PDCP
// entity (3GPP TS 36.323): sequence numbering, COUNT derivation, the three
// receive-path variants, the undelivered-SDU retransmission queue, status
// report encode/decode, and the reestablish/reset/handover lifecycle.
package pdcp

import (
	"fmt"
	"time"
)

// BearerKind distinguishes signalling from data radio bearers.
type BearerKind int

const (
	SRB BearerKind = iota
	DRB
)

func (k BearerKind) String() string {
	if k == SRB {
		return "SRB"
	}
	return "DRB"
}

// RLCMode is only meaningful for DRBs; SRBs are always mapped onto AM but
// never carry a retransmission queue or status reports.
type RLCMode int

const (
	RLCModeUM RLCMode = iota
	RLCModeAM
)

func (m RLCMode) String() string {
	if m == RLCModeUM {
		return "UM"
	}
	return "AM"
}

// Direction selects which key/direction a crypto provider call applies to.
type Direction int

const (
	DirectionTX Direction = iota
	DirectionRX
)

// SecurityDirection tracks which directions have integrity or ciphering
// enabled for a bearer. Distinct from Direction, which is the argument of
// a single crypto call.
type SecurityDirection int

const (
	DirNone SecurityDirection = iota
	DirTX
	DirRX
	DirTXRX
)

func (d SecurityDirection) String() string {
	switch d {
	case DirTX:
		return "tx"
	case DirRX:
		return "rx"
	case DirTXRX:
		return "tx/rx"
	default:
		return "none"
	}
}

// HasTX reports whether TX is enabled, alone or combined with RX.
func (d SecurityDirection) HasTX() bool { return d == DirTX || d == DirTXRX }

// HasRX reports whether RX is enabled, alone or combined with TX.
func (d SecurityDirection) HasRX() bool { return d == DirRX || d == DirTXRX }

// EnableTX returns the direction with TX added, preserving any existing RX.
func (d SecurityDirection) EnableTX() SecurityDirection {
	if d.HasRX() {
		return DirTXRX
	}
	return DirTX
}

// EnableRX returns the direction with RX added, preserving any existing TX.
func (d SecurityDirection) EnableRX() SecurityDirection {
	if d.HasTX() {
		return DirTXRX
	}
	return DirRX
}

// EntityConfig is immutable after construction.
type EntityConfig struct {
	BearerKind            BearerKind
	RLCMode               RLCMode // ignored for SRB
	SNLen                 int     // 5, 7, 12 or 18
	HdrLenBytes           int     // derived from SNLen
	DiscardTimer          time.Duration
	StatusReportRequired  bool
	BearerID              uint32
	LCID                  uint32
	MaximumPDCPSN         uint32 // derived: 2^SNLen - 1
	ReorderingWindow      uint32 // derived: 0 for SRB, 2048 for DRB
}

// NewEntityConfig validates the sn_len/bearer_kind/rlc_mode combination
// required by 3GPP TS 36.323 and fills in the derived fields.
func NewEntityConfig(kind BearerKind, mode RLCMode, snLen int, discardTimer time.Duration, statusReportRequired bool, bearerID, lcid uint32) (EntityConfig, error) {
	cfg := EntityConfig{
		BearerKind:           kind,
		RLCMode:              mode,
		SNLen:                snLen,
		DiscardTimer:         discardTimer,
		StatusReportRequired: statusReportRequired,
		BearerID:             bearerID,
		LCID:                 lcid,
	}

	switch {
	case snLen == 5 && kind != SRB:
		return EntityConfig{}, fmt.Errorf("sn_len=5 requires SRB: %w", errConfigCombo(lcid, snLen, "sn_len=5 requires SRB"))
	case snLen == 7 && (kind != DRB || mode != RLCModeUM):
		return EntityConfig{}, errConfigCombo(lcid, snLen, "sn_len=7 requires DRB/UM")
	case snLen == 12 && kind != DRB:
		return EntityConfig{}, errConfigCombo(lcid, snLen, "sn_len=12 requires DRB")
	case snLen == 18 && kind != DRB:
		return EntityConfig{}, errConfigCombo(lcid, snLen, "sn_len=18 requires DRB")
	case snLen != 5 && snLen != 7 && snLen != 12 && snLen != 18:
		return EntityConfig{}, errConfigCombo(lcid, snLen, "unsupported sn_len")
	}

	switch snLen {
	case 5, 7:
		cfg.HdrLenBytes = 1
	case 12:
		cfg.HdrLenBytes = 2
	case 18:
		cfg.HdrLenBytes = 3
	}

	cfg.MaximumPDCPSN = (uint32(1) << uint(snLen)) - 1
	if kind == SRB {
		cfg.ReorderingWindow = 0
	} else {
		cfg.ReorderingWindow = 2048
	}

	return cfg, nil
}

// IsSRB reports whether the bearer is a signalling radio bearer.
func (c EntityConfig) IsSRB() bool { return c.BearerKind == SRB }

// IsDRB reports whether the bearer is a data radio bearer.
func (c EntityConfig) IsDRB() bool { return c.BearerKind == DRB }

// IsAM reports whether a DRB is mapped onto RLC AM. Always false for SRB.
func (c EntityConfig) IsAM() bool { return c.BearerKind == DRB && c.RLCMode == RLCModeAM }

// IsUM reports whether a DRB is mapped onto RLC UM. Always false for SRB.
func (c EntityConfig) IsUM() bool { return c.BearerKind == DRB && c.RLCMode == RLCModeUM }

// State is the mutable per-bearer state of spec.md §3.
type State struct {
	NextTxSN            uint32
	TxHFN                uint32
	NextRxSN            uint32
	RxHFN                uint32
	LastSubmittedRxSN   uint32
	IntegrityDirection  SecurityDirection
	EncryptionDirection SecurityDirection
	PendingSecurityTxCount *uint32
	PendingSecurityRxSN    *uint32
	Active              bool
}

// NewState returns the initial state for a freshly constructed entity.
func NewState(cfg EntityConfig) State {
	return State{
		LastSubmittedRxSN: cfg.MaximumPDCPSN,
		Active:            true,
	}
}

// BearerState is the fixed-layout record exchanged on handover: the five
// counters of spec.md §6, with no crypto material, pending-security
// thresholds or queues.
type BearerState struct {
	NextTxSN          uint32
	TxHFN             uint32
	NextRxSN          uint32
	RxHFN             uint32
	LastSubmittedRxSN uint32
}
