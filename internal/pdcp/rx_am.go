package pdcp

import "github.com/l2sim/pdcp-entity/pkg/pdcplog"

// handleAMDRBPDU is the DRB/RLC-AM receive variant without PDCP-level
// reordering (3GPP TS 36.323 §5.1.2.1.2, spec.md §4.4). RLC-AM has already
// delivered PDUs in order; this variant only resolves COUNT ambiguity
// across the HFN boundary and discards duplicates/out-of-window PDUs.
func (e *Entity) handleAMDRBPDU(buf []byte, sn uint32) {
	sdu := StripHeader(buf, e.cfg)

	W := int64(e.cfg.ReorderingWindow)
	lastSubmitDiffSN := int64(e.state.LastSubmittedRxSN) - int64(sn)
	snDiffLastSubmit := int64(sn) - int64(e.state.LastSubmittedRxSN)
	snDiffNextRxSN := int64(sn) - int64(e.state.NextRxSN)

	var count uint32
	switch {
	case (snDiffLastSubmit >= 0 && snDiffLastSubmit > W) || (lastSubmitDiffSN >= 0 && lastSubmitDiffSN < W):
		e.logger.Debug("discarding duplicate/out-of-window sn", pdcplog.WithSN(sn))
		return

	case int64(e.state.NextRxSN)-int64(sn) > W:
		e.state.RxHFN++
		count = ComputeCount(e.state.RxHFN, sn, e.cfg.SNLen)
		e.state.NextRxSN = sn + 1

	case snDiffNextRxSN >= W:
		count = ComputeCount(e.state.RxHFN-1, sn, e.cfg.SNLen)

	case sn >= e.state.NextRxSN:
		count = ComputeCount(e.state.RxHFN, sn, e.cfg.SNLen)
		e.state.NextRxSN = sn + 1
		if e.state.NextRxSN > e.cfg.MaximumPDCPSN {
			e.state.NextRxSN = 0
			e.state.RxHFN++
		}

	default: // sn < next_rx_sn
		count = ComputeCount(e.state.RxHFN, sn, e.cfg.SNLen)
	}

	if e.state.EncryptionDirection.HasRX() {
		deciphered, err := e.crypto.CipherDecrypt(sdu, count, DirectionRX, e.cfg.BearerID)
		if err != nil {
			e.logger.Error("cipher_decrypt failed", pdcplog.WithError(err), pdcplog.WithCount(count))
			return
		}
		copy(sdu, deciphered)
	}

	e.state.LastSubmittedRxSN = sn
	e.upper.WritePDU(e.cfg.LCID, sdu)
}
