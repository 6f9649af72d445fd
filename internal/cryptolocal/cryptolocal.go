// Package cryptolocal provides a deterministic, in-process
// implementation of pdcp.CryptoProvider built entirely on the standard
// library. It is a test double for the simulator and the test suite, not
// a security implementation: real AES-128 EEA2/EIA2 key derivation and
// ciphering are out of scope (see spec.md §1 Non-goals).
package cryptolocal

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	"github.com/l2sim/pdcp-entity/internal/pdcp"
)

// Provider binds a single shared key to every COUNT/direction/bearer
// tuple it is asked to protect. A real implementation would derive
// distinct integrity and ciphering keys per bearer during AS security
// activation; this one reuses one key for simplicity.
type Provider struct {
	key []byte
}

// New returns a Provider keyed by key. key is retained, not copied; the
// caller must not mutate it afterward.
func New(key []byte) *Provider {
	return &Provider{key: key}
}

// macInput deliberately excludes dir: dir is this call's local TX/RX
// role, not 3GPP's absolute uplink/downlink DIRECTION value, which is
// identical on both ends of a link for one logical flow. Binding to the
// local role would make a PDU enciphered by one peer's TX call
// undecipherable by the other peer's RX call.
func (p *Provider) macInput(data []byte, count uint32, bearerID uint32) []byte {
	hdr := make([]byte, 8)
	binary.BigEndian.PutUint32(hdr[0:4], count)
	binary.BigEndian.PutUint32(hdr[4:8], bearerID)
	return append(hdr, data...)
}

// IntegrityGenerate computes a truncated HMAC-SHA256 over
// (count, bearerID, data).
func (p *Provider) IntegrityGenerate(data []byte, count uint32, dir pdcp.Direction, bearerID uint32) ([4]byte, error) {
	mac := hmac.New(sha256.New, p.key)
	mac.Write(p.macInput(data, count, bearerID))
	sum := mac.Sum(nil)
	var out [4]byte
	copy(out[:], sum[:4])
	return out, nil
}

// IntegrityVerify recomputes the MAC and compares it in constant time.
func (p *Provider) IntegrityVerify(data []byte, count uint32, dir pdcp.Direction, bearerID uint32, want [4]byte) (bool, error) {
	got, err := p.IntegrityGenerate(data, count, dir, bearerID)
	if err != nil {
		return false, err
	}
	return hmac.Equal(got[:], want[:]), nil
}

// keystream derives n deterministic bytes from (count, bearerID) using
// repeated SHA256, standing in for a real EEA2 keystream generator.
func (p *Provider) keystream(n int, count uint32, bearerID uint32) []byte {
	out := make([]byte, 0, n)
	var block [4]byte
	seed := p.macInput(nil, count, bearerID)
	counter := uint32(0)
	for len(out) < n {
		binary.BigEndian.PutUint32(block[:], counter)
		h := hmac.New(sha256.New, p.key)
		h.Write(seed)
		h.Write(block[:])
		out = append(out, h.Sum(nil)...)
		counter++
	}
	return out[:n]
}

func (p *Provider) xor(data []byte, count uint32, bearerID uint32) []byte {
	ks := p.keystream(len(data), count, bearerID)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ ks[i]
	}
	return out
}

// CipherEncrypt XORs data with a deterministic keystream.
func (p *Provider) CipherEncrypt(data []byte, count uint32, dir pdcp.Direction, bearerID uint32) ([]byte, error) {
	return p.xor(data, count, bearerID), nil
}

// CipherDecrypt is identical to CipherEncrypt: XOR is self-inverse.
func (p *Provider) CipherDecrypt(data []byte, count uint32, dir pdcp.Direction, bearerID uint32) ([]byte, error) {
	return p.xor(data, count, bearerID), nil
}
