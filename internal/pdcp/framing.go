package pdcp

import "github.com/l2sim/pdcp-entity/pkg/apperr"

// Control PDU subtypes (byte 0, bits 6-4). Only STATUS_REPORT is
// recognised; only DRBs ever receive a control PDU.
const (
	controlTypeStatusReport = 0
)

// WriteHeader writes the sn_len-specific data PDU header into buf[:hdr_len].
// Bit 7 of byte 0 carries the data/control bit for DRBs (1 = data); for
// SRBs, which never emit control PDUs, that bit is simply reserved and
// written as 0.
func WriteHeader(buf []byte, cfg EntityConfig, sn uint32) {
	switch cfg.SNLen {
	case 5:
		buf[0] = byte(sn & 0x1F)
	case 7:
		buf[0] = 0x80 | byte(sn&0x7F)
	case 12:
		buf[0] = 0x80 | byte((sn>>8)&0x0F)
		buf[1] = byte(sn & 0xFF)
	case 18:
		buf[0] = 0x80 | byte((sn>>16)&0x03)
		buf[1] = byte((sn >> 8) & 0xFF)
		buf[2] = byte(sn & 0xFF)
	}
}

// ReadSN extracts the SN from a data PDU header.
func ReadSN(buf []byte, cfg EntityConfig) uint32 {
	switch cfg.SNLen {
	case 5:
		return uint32(buf[0]) & 0x1F
	case 7:
		return uint32(buf[0]) & 0x7F
	case 12:
		return (uint32(buf[0])&0x0F)<<8 | uint32(buf[1])
	case 18:
		return (uint32(buf[0])&0x03)<<16 | uint32(buf[1])<<8 | uint32(buf[2])
	default:
		return 0
	}
}

// StripHeader returns the payload following the data PDU header.
func StripHeader(buf []byte, cfg EntityConfig) []byte {
	return buf[cfg.HdrLenBytes:]
}

// AppendMAC appends a 4-byte MAC-I trailer, used for SRB PDUs only.
func AppendMAC(buf []byte, mac [4]byte) []byte {
	return append(buf, mac[:]...)
}

// ExtractMAC splits off the trailing 4-byte MAC-I, returning the rest of
// the buffer and the MAC.
func ExtractMAC(buf []byte) ([]byte, [4]byte) {
	var mac [4]byte
	n := len(buf)
	copy(mac[:], buf[n-4:])
	return buf[:n-4], mac
}

// IsControl reports whether buf is a control PDU: the data/control bit
// (byte 0, bit 7) is clear. Only meaningful for DRBs.
func IsControl(buf []byte) bool {
	return buf[0]&0x80 == 0
}

// ControlType extracts the control PDU subtype (byte 0, bits 6-4).
func ControlType(buf []byte) int {
	return int((buf[0] & 0x70) >> 4)
}

// checkPDULength rejects any PDU whose length does not exceed the header,
// per spec.md §4.3/§7.
func checkPDULength(buf []byte, cfg EntityConfig) error {
	if len(buf) <= cfg.HdrLenBytes {
		return apperr.ErrPDUTooShort
	}
	return nil
}
