// Package cryptoremote implements pdcp.CryptoProvider against an
// external AEAD/integrity microservice, the way the teacher's
// vector.Client talks to the Vector Gateway: go-resty for the HTTP
// calls, a gobreaker circuit breaker wrapping every call so a stalled
// backend degrades to dropped PDUs instead of hanging the entity.
package cryptoremote

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/l2sim/pdcp-entity/internal/pdcp"
	"github.com/l2sim/pdcp-entity/pkg/apperr"
)

const (
	requestTimeout     = 2 * time.Second
	cbName             = "crypto-backend"
	cbMaxRequests      = 5
	cbInterval         = 30 * time.Second
	cbTimeout          = 10 * time.Second
	cbFailureThreshold = 5

	headerTraceID = "X-Trace-Id"
)

// Client implements pdcp.CryptoProvider by delegating every operation to
// a remote crypto backend over HTTP. The entity never holds key material
// itself; this client only carries a reference to where the keys live.
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
	traceID    string
}

// NewClient builds a Client pointed at baseURL. traceID is attached to
// every outbound request so logs on both sides of the link can be
// correlated for one simulator run.
func NewClient(baseURL, traceID string) *Client {
	httpClient := resty.New().SetTimeout(requestTimeout)

	cbSettings := gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cbMaxRequests,
		Interval:    cbInterval,
		Timeout:     cbTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cbFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("crypto backend circuit breaker opened", "event_id", "CB_OPEN", "cb_name", name)
			case gobreaker.StateHalfOpen:
				slog.Info("crypto backend circuit breaker half-open", "event_id", "CB_HALF_OPEN", "cb_name", name)
			case gobreaker.StateClosed:
				slog.Info("crypto backend circuit breaker closed", "event_id", "CB_CLOSE", "cb_name", name)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(baseURL, "/"),
		traceID:    traceID,
	}
}

type cipherRequest struct {
	Count    uint32 `json:"count"`
	BearerID uint32 `json:"bearer_id"`
	Direction int   `json:"direction"`
	DataHex  string `json:"data_hex"`
}

type cipherResponse struct {
	DataHex string `json:"data_hex"`
}

type integrityGenerateResponse struct {
	MACHex string `json:"mac_hex"`
}

type integrityVerifyRequest struct {
	cipherRequest
	MACHex string `json:"mac_hex"`
}

type integrityVerifyResponse struct {
	OK bool `json:"ok"`
}

// do runs op through the circuit breaker, classifying 5xx (except 501)
// as CB-eligible failures and 4xx/501 as exempt, mirroring the teacher's
// status-code classification.
func (c *Client) do(ctx context.Context, path string, body any, out any) error {
	result, err := c.cb.Execute(func() (any, error) {
		req := c.httpClient.R().
			SetContext(ctx).
			SetHeader(headerTraceID, c.traceID).
			SetHeader("Content-Type", "application/json").
			SetBody(body)

		resp, err := req.Post(c.baseURL + path)
		if err != nil {
			return nil, apperr.NewCryptoBackendError(path, 0, err)
		}

		status := resp.StatusCode()
		if status >= 500 && status != 501 {
			return nil, apperr.NewCryptoBackendError(path, status, nil)
		}
		if status != 200 {
			// Exempt from circuit-breaker accounting, but still a
			// failure for the caller.
			return apperr.NewCryptoBackendError(path, status, nil), nil
		}

		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return nil, apperr.NewCryptoBackendError(path, status, err)
		}
		return nil, nil
	})

	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return apperr.ErrCryptoBackendUnavailable
		}
		return err
	}
	// A CB-exempt failure (4xx/501) is returned as the success value, not
	// the error, so it never counts against the breaker.
	if exempt, ok := result.(error); ok && exempt != nil {
		return exempt
	}
	return nil
}

// IntegrityGenerate requests a MAC-I over data from the remote backend.
func (c *Client) IntegrityGenerate(data []byte, count uint32, dir pdcp.Direction, bearerID uint32) ([4]byte, error) {
	var out integrityGenerateResponse
	req := cipherRequest{Count: count, BearerID: bearerID, Direction: int(dir), DataHex: hex.EncodeToString(data)}
	if err := c.do(context.Background(), "/api/v1/crypto/integrity/generate", req, &out); err != nil {
		return [4]byte{}, err
	}
	raw, err := hex.DecodeString(out.MACHex)
	if err != nil || len(raw) != 4 {
		return [4]byte{}, apperr.NewCryptoBackendError("integrity/generate", 200, err)
	}
	var mac [4]byte
	copy(mac[:], raw)
	return mac, nil
}

// IntegrityVerify asks the remote backend whether mac matches data.
func (c *Client) IntegrityVerify(data []byte, count uint32, dir pdcp.Direction, bearerID uint32, mac [4]byte) (bool, error) {
	var out integrityVerifyResponse
	req := integrityVerifyRequest{
		cipherRequest: cipherRequest{Count: count, BearerID: bearerID, Direction: int(dir), DataHex: hex.EncodeToString(data)},
		MACHex:        hex.EncodeToString(mac[:]),
	}
	if err := c.do(context.Background(), "/api/v1/crypto/integrity/verify", req, &out); err != nil {
		return false, err
	}
	return out.OK, nil
}

// CipherEncrypt sends data to the remote backend for ciphering.
func (c *Client) CipherEncrypt(data []byte, count uint32, dir pdcp.Direction, bearerID uint32) ([]byte, error) {
	return c.cipher(context.Background(), "/api/v1/crypto/cipher/encrypt", data, count, dir, bearerID)
}

// CipherDecrypt sends data to the remote backend for deciphering.
func (c *Client) CipherDecrypt(data []byte, count uint32, dir pdcp.Direction, bearerID uint32) ([]byte, error) {
	return c.cipher(context.Background(), "/api/v1/crypto/cipher/decrypt", data, count, dir, bearerID)
}

func (c *Client) cipher(ctx context.Context, path string, data []byte, count uint32, dir pdcp.Direction, bearerID uint32) ([]byte, error) {
	var out cipherResponse
	req := cipherRequest{Count: count, BearerID: bearerID, Direction: int(dir), DataHex: hex.EncodeToString(data)}
	if err := c.do(ctx, path, req, &out); err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(out.DataHex)
	if err != nil {
		return nil, apperr.NewCryptoBackendError(path, 200, err)
	}
	return raw, nil
}
