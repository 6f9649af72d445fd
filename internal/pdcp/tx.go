package pdcp

import "github.com/l2sim/pdcp-entity/pkg/pdcplog"

// WriteSDU is the transmit path (spec.md §4.2). sdu is the plaintext
// payload handed down by RRC/the gateway; overrideSN is non-nil only for
// handover/reestablish replay, where the original SN is reused instead of
// next_tx_sn.
func (e *Entity) WriteSDU(sdu []byte, overrideSN *uint32) {
	if e.rlc.SDUQueueIsFull(e.cfg.LCID) {
		e.logger.Info("dropping sdu, rlc queue full", pdcplog.BearerFields(e.cfg.LCID, e.cfg.BearerID)...)
		return
	}

	var usedSN uint32
	if overrideSN != nil {
		usedSN = *overrideSN
	} else {
		usedSN = e.state.NextTxSN
	}

	txCount := ComputeCount(e.state.TxHFN, usedSN, e.cfg.SNLen)

	if e.cfg.IsAM() {
		if err := e.undelivered.Store(txCount, sdu); err != nil {
			e.logger.Error("store_sdu failed", pdcplog.WithError(err), pdcplog.WithCount(txCount))
		}
	}

	if e.state.PendingSecurityTxCount != nil && *e.state.PendingSecurityTxCount == txCount {
		e.state.IntegrityDirection = e.state.IntegrityDirection.EnableTX()
		e.state.EncryptionDirection = e.state.EncryptionDirection.EnableTX()
		e.state.PendingSecurityTxCount = nil
	}

	buf := make([]byte, e.cfg.HdrLenBytes+len(sdu))
	copy(buf[e.cfg.HdrLenBytes:], sdu)
	WriteHeader(buf, e.cfg, usedSN)

	if e.cfg.DiscardTimer > 0 {
		count := txCount
		sn := usedSN
		timer := e.timers.Arm(e.cfg.DiscardTimer, func() { e.onDiscardTimerExpiry(count, sn) })
		e.undelivered.SetTimer(count, timer)
	}

	var mac [4]byte
	dropped := false
	if e.cfg.IsSRB() && e.state.IntegrityDirection.HasTX() {
		var err error
		mac, err = e.crypto.IntegrityGenerate(buf, txCount, DirectionTX, e.cfg.BearerID)
		if err != nil {
			e.logger.Error("integrity_generate failed, dropping pdu", pdcplog.WithError(err), pdcplog.WithCount(txCount))
			dropped = true
		}
	}
	if e.cfg.IsSRB() {
		buf = AppendMAC(buf, mac)
	}

	if e.state.EncryptionDirection.HasTX() {
		ciphered, err := e.crypto.CipherEncrypt(buf[e.cfg.HdrLenBytes:], txCount, DirectionTX, e.cfg.BearerID)
		if err != nil {
			e.logger.Error("cipher_encrypt failed, dropping pdu", pdcplog.WithError(err), pdcplog.WithCount(txCount))
			dropped = true
		} else {
			copy(buf[e.cfg.HdrLenBytes:], ciphered)
		}
	}

	e.logger.Debug("tx pdu",
		append(pdcplog.BearerFields(e.cfg.LCID, e.cfg.BearerID),
			pdcplog.FieldSN, usedSN,
			pdcplog.FieldCount, txCount,
			pdcplog.FieldDirection, "tx",
		)...,
	)

	if !dropped {
		e.rlc.WriteSDU(e.cfg.LCID, buf)
	}

	if overrideSN == nil {
		e.state.NextTxSN++
		if e.state.NextTxSN > e.cfg.MaximumPDCPSN {
			e.state.NextTxSN = 0
			e.state.TxHFN++
		}
	}
}

// onDiscardTimerExpiry implements the discard-timer callback of spec.md
// §4.5. The TimerService invokes it through a closure that captures the
// Entity together with count and sn, so an armed timer keeps the Entity
// reachable until the timer fires or is stopped.
func (e *Entity) onDiscardTimerExpiry(count, sn uint32) {
	if e.undelivered.Erase(count) {
		e.logger.Debug("discard timer expired, removed undelivered pdu", pdcplog.WithCount(count), pdcplog.WithSN(sn))
	} else {
		e.logger.Debug("discard timer expired, pdu already delivered", pdcplog.WithCount(count), pdcplog.WithSN(sn))
	}
	e.rlc.DiscardSDU(e.cfg.LCID, sn)
}
