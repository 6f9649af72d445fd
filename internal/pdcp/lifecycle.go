package pdcp

import "github.com/l2sim/pdcp-entity/pkg/pdcplog"

// Reestablish implements 3GPP TS 36.323 §5.2 (spec.md §4.7). SRB and
// DRB/UM bearers keep no retransmission queue, so zeroing the four
// counters is sufficient. DRB/AM optionally emits a status report, then
// drains and replays the undelivered queue through WriteSDU, preserving
// SN order.
func (e *Entity) Reestablish() {
	e.logger.Info("reestablishing bearer", pdcplog.BearerFields(e.cfg.LCID, e.cfg.BearerID)...)

	switch {
	case e.cfg.IsSRB(), e.cfg.IsUM():
		e.state.NextTxSN = 0
		e.state.TxHFN = 0
		e.state.NextRxSN = 0
		e.state.RxHFN = 0

	default: // DRB/AM
		if e.cfg.StatusReportRequired {
			e.SendStatusReport()
		}
		drained := e.undelivered.Drain()
		for _, entry := range drained {
			sn := entry.Count & e.cfg.MaximumPDCPSN
			e.WriteSDU(entry.SDU, &sn)
		}
	}
}

// Reset stops the entity (spec.md §4.7). Two consecutive calls are
// equivalent to one; no buffer is forcibly freed, they unwind with the Go
// garbage collector once no longer referenced.
func (e *Entity) Reset() {
	if e.state.Active {
		e.logger.Debug("resetting bearer", pdcplog.BearerFields(e.cfg.LCID, e.cfg.BearerID)...)
	}
	e.state.Active = false
}

// GetBearerState serializes the five handover counters. No crypto
// material, pending-security thresholds or queues are included.
func (e *Entity) GetBearerState() BearerState {
	return BearerState{
		NextTxSN:          e.state.NextTxSN,
		TxHFN:             e.state.TxHFN,
		NextRxSN:          e.state.NextRxSN,
		RxHFN:             e.state.RxHFN,
		LastSubmittedRxSN: e.state.LastSubmittedRxSN,
	}
}

// SetBearerState deserializes the five handover counters into this entity,
// leaving every other field (security directions, undelivered queue,
// active flag) untouched.
func (e *Entity) SetBearerState(bs BearerState) {
	e.state.NextTxSN = bs.NextTxSN
	e.state.TxHFN = bs.TxHFN
	e.state.NextRxSN = bs.NextRxSN
	e.state.RxHFN = bs.RxHFN
	e.state.LastSubmittedRxSN = bs.LastSubmittedRxSN
}

// GetBufferedPDUs deep-copies the undelivered queue for inspection or
// handover forwarding.
func (e *Entity) GetBufferedPDUs() map[uint32][]byte {
	return e.undelivered.Snapshot()
}
