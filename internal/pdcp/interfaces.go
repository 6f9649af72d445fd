package pdcp

import "time"

// RLC is the downward collaborator: the entity calls it to hand over
// outbound PDUs and to query/instruct the lower layer.
type RLC interface {
	WriteSDU(lcid uint32, pdu []byte)
	SDUQueueIsFull(lcid uint32) bool
	IsUM(lcid uint32) bool
	DiscardSDU(lcid uint32, sn uint32)
}

// UpperLayer is either RRC (SRB) or the IP gateway (DRB): the sink for
// decrypted, reassembled SDUs delivered upward.
type UpperLayer interface {
	WritePDU(lcid uint32, sdu []byte)
}

// CryptoProvider performs integrity and ciphering over a
// (key, COUNT, bearer, direction, length) tuple. The entity never holds
// key material itself.
type CryptoProvider interface {
	IntegrityGenerate(data []byte, count uint32, dir Direction, bearerID uint32) ([4]byte, error)
	IntegrityVerify(data []byte, count uint32, dir Direction, bearerID uint32, mac [4]byte) (bool, error)
	CipherEncrypt(data []byte, count uint32, dir Direction, bearerID uint32) ([]byte, error)
	CipherDecrypt(data []byte, count uint32, dir Direction, bearerID uint32) ([]byte, error)
}

// Timer is a handle to a single armed countdown.
type Timer interface {
	Stop()
}

// TimerService allocates scoped timers used for discard. Arm's callback is
// an arbitrary closure; the entity's discard callbacks capture the Entity
// itself plus COUNT and SN, with no separate handle in between.
type TimerService interface {
	Arm(d time.Duration, fn func()) Timer
}

// BufferPool allocates opaque byte buffers. The default implementation is
// a plain make([]byte, n); this interface exists so a pooled allocator can
// be substituted without touching the entity.
type BufferPool interface {
	Alloc(n int) []byte
}
