package pdcp

import "github.com/l2sim/pdcp-entity/pkg/pdcplog"

// WritePDU is the RLC-to-entity callback: the common receive-path prelude
// of spec.md §4.3. It dispatches control PDUs (DRB only), rejects
// undersized PDUs, reads the SN exactly once, and forwards to the
// bearer-specific variant.
func (e *Entity) WritePDU(buf []byte) {
	if len(buf) == 0 {
		e.logger.Error("rx pdu empty")
		return
	}

	if e.cfg.IsDRB() && IsControl(buf) {
		e.handleControlPDU(buf)
		return
	}

	if err := checkPDULength(buf, e.cfg); err != nil {
		e.logger.Error("rx pdu too short", pdcplog.WithError(err))
		return
	}

	sn := ReadSN(buf, e.cfg)

	if e.state.PendingSecurityRxSN != nil && *e.state.PendingSecurityRxSN == sn {
		e.state.IntegrityDirection = e.state.IntegrityDirection.EnableRX()
		e.state.EncryptionDirection = e.state.EncryptionDirection.EnableRX()
		e.state.PendingSecurityRxSN = nil
	}

	switch {
	case e.cfg.IsSRB():
		e.handleSRBPDU(buf, sn)
	case e.cfg.IsDRB() && e.cfg.IsUM():
		e.handleUMDRBPDU(buf, sn)
	case e.cfg.IsDRB() && e.cfg.IsAM():
		e.handleAMDRBPDU(buf, sn)
	default:
		e.logger.Error("invalid pdcp/rlc configuration")
	}
}

// handleControlPDU dispatches by control PDU subtype (spec.md §4.1).
func (e *Entity) handleControlPDU(buf []byte) {
	switch ControlType(buf) {
	case controlTypeStatusReport:
		e.handleStatusReportPDU(buf)
	default:
		e.logger.Warn("unhandled control pdu", "control_type", ControlType(buf))
	}
}

// NotifyDelivery is the RLC-to-entity delivery acknowledgement callback.
// For every SN, the matching COUNT-keyed entry is erased from the
// retransmission queue and its discard timer cancelled. An SN with no
// match is logged and skipped — the batch continues rather than stopping,
// per the redesign decision recorded in SPEC_FULL.md (the reference
// implementation returns on the first miss instead of continuing).
func (e *Entity) NotifyDelivery(sns []uint32) {
	for _, sn := range sns {
		if !e.eraseBySN(sn) {
			e.logger.Warn("delivery notification for unknown sn", pdcplog.WithSN(sn))
			continue
		}
	}
}

// NotifyFailure has the same cleanup semantics as NotifyDelivery: the RLC
// reports it gave up retransmitting, so the entity stops tracking the SDU.
func (e *Entity) NotifyFailure(sns []uint32) {
	for _, sn := range sns {
		if !e.eraseBySN(sn) {
			e.logger.Warn("failure notification for unknown sn", pdcplog.WithSN(sn))
			continue
		}
	}
}

// eraseBySN removes the undelivered entry whose COUNT has sn as its SN
// component. RLC notifications carry bare SNs, while the queue is keyed by
// full COUNT.
func (e *Entity) eraseBySN(sn uint32) bool {
	for _, count := range e.undelivered.Keys() {
		if count&e.cfg.MaximumPDCPSN == sn {
			return e.undelivered.Erase(count)
		}
	}
	return false
}
