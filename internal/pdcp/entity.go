package pdcp

import (
	"log/slog"

	"github.com/l2sim/pdcp-entity/pkg/pdcplog"
)

// Entity is a self-contained PDCP bearer, parameterized by an EntityConfig
// and wired to its collaborators at construction. Callers must never
// invoke the same Entity from two goroutines concurrently; see spec.md §5.
type Entity struct {
	cfg   EntityConfig
	state State

	undelivered *retransmitQueue

	rlc    RLC
	upper  UpperLayer
	crypto CryptoProvider
	timers TimerService
	logger *slog.Logger
}

// NewEntity constructs an Entity in the active state.
func NewEntity(cfg EntityConfig, rlc RLC, upper UpperLayer, crypto CryptoProvider, timers TimerService, logger *slog.Logger) *Entity {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Entity{
		cfg:         cfg,
		state:       NewState(cfg),
		undelivered: newRetransmitQueue(),
		rlc:         rlc,
		upper:       upper,
		crypto:      crypto,
		timers:      timers,
		logger:      logger,
	}
	e.logger.Info("pdcp entity initialized",
		append(pdcplog.BearerFields(cfg.LCID, cfg.BearerID),
			"bearer_kind", cfg.BearerKind.String(),
			"sn_len", cfg.SNLen,
			"reordering_window", cfg.ReorderingWindow,
			"maximum_sn", cfg.MaximumPDCPSN,
			"status_report_required", cfg.StatusReportRequired,
		)...,
	)
	return e
}

// Config returns the entity's immutable configuration.
func (e *Entity) Config() EntityConfig { return e.cfg }

// State returns a copy of the entity's current mutable state.
func (e *Entity) State() State { return e.state }

// Active reports whether the entity has not been reset.
func (e *Entity) Active() bool { return e.state.Active }

// UndeliveredLen reports the number of SDUs currently retained for
// retransmission (always 0 for SRB and DRB/UM).
func (e *Entity) UndeliveredLen() int { return e.undelivered.Len() }

// EnableIntegrity immediately enables integrity protection in dir, bypassing
// pending-security activation. Used by tests and by configuration at
// construction time, before any TX/RX has occurred.
func (e *Entity) EnableIntegrity(dir SecurityDirection) { e.state.IntegrityDirection = dir }

// EnableEncryption immediately enables ciphering in dir, bypassing pending
// activation.
func (e *Entity) EnableEncryption(dir SecurityDirection) { e.state.EncryptionDirection = dir }

// SetPendingSecurityTX arms deferred security activation keyed to the
// given TX COUNT: once write_sdu assigns that COUNT, integrity and
// ciphering flip to TX.
func (e *Entity) SetPendingSecurityTX(count uint32) {
	c := count
	e.state.PendingSecurityTxCount = &c
}

// SetPendingSecurityRX arms deferred security activation keyed to the
// given raw incoming SN (not COUNT): once write_pdu observes that SN,
// integrity and ciphering flip to RX. Deliberately asymmetric with
// SetPendingSecurityTX; see spec.md §9.
func (e *Entity) SetPendingSecurityRX(sn uint32) {
	s := sn
	e.state.PendingSecurityRxSN = &s
}
