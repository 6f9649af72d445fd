package pdcp

import "time"

// fakeRLC is a hand-written test double for RLC; go.uber.org/mock is not
// wired into this module (see DESIGN.md), so collaborator fakes are
// written by hand in the teacher's own style.
type fakeRLC struct {
	queueFull   bool
	um          bool
	written     [][]byte
	discarded   []uint32
}

func (f *fakeRLC) WriteSDU(lcid uint32, pdu []byte) {
	cp := make([]byte, len(pdu))
	copy(cp, pdu)
	f.written = append(f.written, cp)
}
func (f *fakeRLC) SDUQueueIsFull(lcid uint32) bool { return f.queueFull }
func (f *fakeRLC) IsUM(lcid uint32) bool           { return f.um }
func (f *fakeRLC) DiscardSDU(lcid uint32, sn uint32) {
	f.discarded = append(f.discarded, sn)
}

// fakeUpper is a hand-written test double for UpperLayer.
type fakeUpper struct {
	delivered [][]byte
}

func (f *fakeUpper) WritePDU(lcid uint32, sdu []byte) {
	cp := make([]byte, len(sdu))
	copy(cp, sdu)
	f.delivered = append(f.delivered, cp)
}

// fakeCrypto is a deterministic XOR-keystream double. It is intentionally
// not a real AEAD/integrity scheme (out of scope per spec.md §1); it only
// needs to be invertible and to bind to (count, bearerID) so tests can
// exercise the COUNT plumbing; direction is ignored (see keystreamByte).
type fakeCrypto struct {
	generateErr error
	verifyOK    bool
	verifyErr   error
}

func newFakeCrypto() *fakeCrypto { return &fakeCrypto{verifyOK: true} }

// keystreamByte is independent of Direction: the real 3GPP DIRECTION input
// denotes uplink/downlink and is identical on both ends of a link for a
// given logical flow, whereas Direction here denotes this call's local
// TX/RX role. Binding the fake to dir would break round-tripping between
// two peer entities in tests, so it only binds to count and bearerID.
func keystreamByte(count uint32, bearerID uint32, i int) byte {
	return byte(count>>uint((i%4)*8)) ^ byte(bearerID) ^ byte(i)
}

func (f *fakeCrypto) xor(data []byte, count uint32, bearerID uint32) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ keystreamByte(count, bearerID, i)
	}
	return out
}

func (f *fakeCrypto) IntegrityGenerate(data []byte, count uint32, dir Direction, bearerID uint32) ([4]byte, error) {
	if f.generateErr != nil {
		return [4]byte{}, f.generateErr
	}
	var mac [4]byte
	for i, b := range data {
		mac[i%4] ^= b
	}
	mac[0] ^= byte(count)
	mac[1] ^= byte(count >> 8)
	mac[2] ^= byte(bearerID)
	return mac, nil
}

func (f *fakeCrypto) IntegrityVerify(data []byte, count uint32, dir Direction, bearerID uint32, mac [4]byte) (bool, error) {
	if f.verifyErr != nil {
		return false, f.verifyErr
	}
	if !f.verifyOK {
		return false, nil
	}
	want, _ := f.IntegrityGenerate(data, count, dir, bearerID)
	return want == mac, nil
}

func (f *fakeCrypto) CipherEncrypt(data []byte, count uint32, dir Direction, bearerID uint32) ([]byte, error) {
	return f.xor(data, count, bearerID), nil
}

func (f *fakeCrypto) CipherDecrypt(data []byte, count uint32, dir Direction, bearerID uint32) ([]byte, error) {
	return f.xor(data, count, bearerID), nil
}

// fakeTimer/fakeTimerService let tests fire discard callbacks manually
// instead of sleeping real wall-clock time.
type fakeTimer struct {
	stopped bool
}

func (t *fakeTimer) Stop() { t.stopped = true }

type fakeTimerService struct {
	armed []armedTimer
}

type armedTimer struct {
	d    time.Duration
	fn   func()
	t    *fakeTimer
}

func (s *fakeTimerService) Arm(d time.Duration, fn func()) Timer {
	t := &fakeTimer{}
	s.armed = append(s.armed, armedTimer{d: d, fn: fn, t: t})
	return t
}

// fireAll invokes every still-armed timer's callback once, in arming order.
func (s *fakeTimerService) fireAll() {
	for _, a := range s.armed {
		if !a.t.stopped {
			a.fn()
		}
	}
}
