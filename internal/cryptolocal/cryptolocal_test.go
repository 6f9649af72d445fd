package cryptolocal

import (
	"testing"

	"github.com/l2sim/pdcp-entity/internal/pdcp"
)

func TestCipherEncryptDecryptRoundTrip(t *testing.T) {
	p := New([]byte("test-key"))
	plaintext := []byte("hello pdcp")

	ciphertext, err := p.CipherEncrypt(plaintext, 42, pdcp.DirectionTX, 1)
	if err != nil {
		t.Fatalf("CipherEncrypt() error = %v", err)
	}
	if string(ciphertext) == string(plaintext) {
		t.Error("ciphertext should differ from plaintext")
	}

	decrypted, err := p.CipherDecrypt(ciphertext, 42, pdcp.DirectionRX, 1)
	if err != nil {
		t.Fatalf("CipherDecrypt() error = %v", err)
	}
	if string(decrypted) != string(plaintext) {
		t.Errorf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestIntegrityGenerateVerifyRoundTrip(t *testing.T) {
	p := New([]byte("test-key"))
	data := []byte("header+payload")

	mac, err := p.IntegrityGenerate(data, 7, pdcp.DirectionTX, 2)
	if err != nil {
		t.Fatalf("IntegrityGenerate() error = %v", err)
	}

	ok, err := p.IntegrityVerify(data, 7, pdcp.DirectionRX, 2, mac)
	if err != nil {
		t.Fatalf("IntegrityVerify() error = %v", err)
	}
	if !ok {
		t.Error("IntegrityVerify() = false, want true for a matching MAC")
	}
}

func TestIntegrityVerifyRejectsTamperedData(t *testing.T) {
	p := New([]byte("test-key"))
	mac, _ := p.IntegrityGenerate([]byte("original"), 1, pdcp.DirectionTX, 1)

	ok, err := p.IntegrityVerify([]byte("tampered"), 1, pdcp.DirectionRX, 1, mac)
	if err != nil {
		t.Fatalf("IntegrityVerify() error = %v", err)
	}
	if ok {
		t.Error("IntegrityVerify() = true, want false for tampered data")
	}
}

func TestCipherKeystreamVariesByCountAndBearer(t *testing.T) {
	p := New([]byte("test-key"))
	plaintext := []byte("00000000")

	c1, _ := p.CipherEncrypt(plaintext, 1, pdcp.DirectionTX, 1)
	c2, _ := p.CipherEncrypt(plaintext, 2, pdcp.DirectionTX, 1)
	c3, _ := p.CipherEncrypt(plaintext, 1, pdcp.DirectionTX, 2)

	if string(c1) == string(c2) {
		t.Error("keystream should differ across COUNT values")
	}
	if string(c1) == string(c3) {
		t.Error("keystream should differ across bearer IDs")
	}
}
