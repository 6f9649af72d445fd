package pdcp

import "github.com/l2sim/pdcp-entity/pkg/pdcplog"

// handleUMDRBPDU is the DRB/RLC-UM receive variant (3GPP TS 36.323
// §5.1.2.1.3, spec.md §4.4). No integrity, no reordering, no
// deduplication.
func (e *Entity) handleUMDRBPDU(buf []byte, sn uint32) {
	sdu := StripHeader(buf, e.cfg)

	if sn < e.state.NextRxSN {
		e.state.RxHFN++
	}
	count := ComputeCount(e.state.RxHFN, sn, e.cfg.SNLen)

	if e.state.EncryptionDirection.HasRX() {
		deciphered, err := e.crypto.CipherDecrypt(sdu, count, DirectionRX, e.cfg.BearerID)
		if err != nil {
			e.logger.Error("cipher_decrypt failed", pdcplog.WithError(err), pdcplog.WithCount(count))
			return
		}
		copy(sdu, deciphered)
	}

	e.state.NextRxSN = sn + 1
	if e.state.NextRxSN > e.cfg.MaximumPDCPSN {
		e.state.NextRxSN = 0
		e.state.RxHFN++
	}

	e.upper.WritePDU(e.cfg.LCID, sdu)
}
