package pdcp

import (
	"github.com/l2sim/pdcp-entity/pkg/apperr"
	"github.com/l2sim/pdcp-entity/pkg/pdcplog"
)

// SendStatusReport emits a PDCP status report (spec.md §4.6, DRB/AM only).
// Encodes the First Missing SDU and an acknowledgement bitmap covering the
// undelivered queue, then hands the buffer to RLC as an outbound SDU.
func (e *Entity) SendStatusReport() {
	if !e.cfg.IsAM() {
		e.logger.Error("send_status_report called on non-AM bearer")
		return
	}

	var fms uint32
	if first, ok := e.undelivered.FirstKey(); ok {
		fms = first & e.cfg.MaximumPDCPSN
	} else {
		fms = e.state.NextTxSN
	}

	hdrLen, err := statusReportHeaderLen(e.cfg.SNLen)
	if err != nil {
		e.logger.Error("unsupported sn_len for status report", pdcplog.WithError(err))
		return
	}

	keys := e.undelivered.Keys()
	bitmapLen := 0
	if len(keys) > 0 {
		lastSN := keys[len(keys)-1] & e.cfg.MaximumPDCPSN
		bitmapLen = int((lastSN-(fms-1)+7)/8)
		if lastSN < fms-1 {
			bitmapLen = 0
		}
	}

	buf := make([]byte, hdrLen+bitmapLen)
	writeStatusReportHeader(buf, e.cfg.SNLen, fms)

	for _, k := range keys {
		sn := k & e.cfg.MaximumPDCPSN
		offset := sn - fms
		byteOffset := offset / 8
		bitOffset := offset % 8
		buf[hdrLen+int(byteOffset)] |= 1 << (7 - bitOffset)
	}

	e.logger.Debug("status report emitted", pdcplog.WithSN(fms), "bitmap_bytes", bitmapLen)
	e.rlc.WriteSDU(e.cfg.LCID, buf)
}

// handleStatusReportPDU consumes a received status report (spec.md §4.6):
// every undelivered entry below FMS, and every entry whose SN the bitmap
// marks acknowledged, is erased along with its discard timer.
func (e *Entity) handleStatusReportPDU(buf []byte) {
	if hdrLen, err := statusReportHeaderLen(e.cfg.SNLen); err == nil && len(buf) < hdrLen {
		e.logger.Error("status report shorter than its header", pdcplog.WithError(apperr.ErrPDUTooShort))
		return
	}

	fms, bitmapOffset, err := readStatusReportHeader(buf, e.cfg.SNLen)
	if err != nil {
		e.logger.Error("unsupported sn_len for status report", pdcplog.WithError(err))
		return
	}

	keys := append([]uint32(nil), e.undelivered.Keys()...)
	for _, k := range keys {
		if k&e.cfg.MaximumPDCPSN < fms {
			e.undelivered.Erase(k)
		}
	}

	for i := 0; bitmapOffset+i < len(buf); i++ {
		b := buf[bitmapOffset+i]
		for j := 0; j < 8; j++ {
			if b&(1<<(7-uint(j))) != 0 {
				ackedSN := fms + uint32(i*8+j)
				e.eraseBySN(ackedSN)
			}
		}
	}
}

// statusReportHeaderLen returns the FMS-header length in bytes for a
// status-report-capable sn_len. Only 12 and 18 bit SNs are supported.
func statusReportHeaderLen(snLen int) (int, error) {
	switch snLen {
	case 12:
		return 2, nil
	case 18:
		return 3, nil
	default:
		return 0, apperr.ErrUnsupportedStatusReportSNLen
	}
}

// writeStatusReportHeader writes the control(1)|type(0) byte plus the
// right-aligned FMS field.
func writeStatusReportHeader(buf []byte, snLen int, fms uint32) {
	switch snLen {
	case 12:
		buf[0] = byte(0x0F & (fms >> 8))
		buf[1] = byte(fms & 0xFF)
	case 18:
		buf[0] = byte(0x03 & (fms >> 16))
		buf[1] = byte((fms >> 8) & 0xFF)
		buf[2] = byte(fms & 0xFF)
	}
}

// readStatusReportHeader decodes the FMS field and returns the byte
// offset at which the acknowledgement bitmap begins.
func readStatusReportHeader(buf []byte, snLen int) (fms uint32, bitmapOffset int, err error) {
	switch snLen {
	case 12:
		fms = (uint32(buf[0])&0x0F)<<8 | uint32(buf[1])
		return fms, 2, nil
	case 18:
		fms = (uint32(buf[0])&0x03)<<16 | uint32(buf[1])<<8 | uint32(buf[2])
		return fms, 3, nil
	default:
		return 0, 0, apperr.ErrUnsupportedStatusReportSNLen
	}
}
