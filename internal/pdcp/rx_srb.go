package pdcp

import "github.com/l2sim/pdcp-entity/pkg/pdcplog"

// handleSRBPDU is the SRB receive variant (3GPP TS 36.323 §5.1.2.2,
// spec.md §4.4). sn has already been read by the common prelude.
func (e *Entity) handleSRBPDU(buf []byte, sn uint32) {
	if len(buf) < e.cfg.HdrLenBytes+4 {
		e.logger.Error("rx srb pdu too short for mac-i, dropping", pdcplog.WithSN(sn))
		return
	}

	var count uint32
	if sn < e.state.NextRxSN {
		count = ComputeCount(e.state.RxHFN+1, sn, e.cfg.SNLen)
	} else {
		count = ComputeCount(e.state.RxHFN, sn, e.cfg.SNLen)
	}

	payload := buf[e.cfg.HdrLenBytes:]
	if e.state.EncryptionDirection.HasRX() {
		deciphered, err := e.crypto.CipherDecrypt(payload, count, DirectionRX, e.cfg.BearerID)
		if err != nil {
			e.logger.Error("cipher_decrypt failed", pdcplog.WithError(err), pdcplog.WithCount(count))
			return
		}
		copy(payload, deciphered)
	}

	withoutMAC, mac := ExtractMAC(buf)

	if e.state.IntegrityDirection.HasRX() {
		ok, err := e.crypto.IntegrityVerify(withoutMAC, count, DirectionRX, e.cfg.BearerID, mac)
		if err != nil || !ok {
			e.logger.Error("integrity check failed, dropping pdu", pdcplog.WithError(err), pdcplog.WithSN(sn), pdcplog.WithCount(count))
			return
		}
	}

	sdu := StripHeader(withoutMAC, e.cfg)

	if sn < e.state.NextRxSN {
		e.state.RxHFN++
	}
	e.state.NextRxSN = sn + 1
	if e.state.NextRxSN > e.cfg.MaximumPDCPSN {
		e.state.NextRxSN = 0
		e.state.RxHFN++
	}

	e.upper.WritePDU(e.cfg.LCID, sdu)
}
