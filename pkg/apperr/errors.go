// Package apperr collects the sentinel and structured error values shared
// across the PDCP entity, its collaborators, and the simulator/inspector
// binaries, following the error classes of the specification's error
// handling design.
package apperr

import "errors"

// Configuration errors.
var (
	// ErrInvalidBearerConfig signals an sn_len/bearer_kind combination
	// the data model does not allow.
	ErrInvalidBearerConfig = errors.New("invalid PDCP bearer configuration")
)

// Malformed-PDU errors.
var (
	// ErrPDUTooShort signals a PDU no longer than its header.
	ErrPDUTooShort = errors.New("pdcp PDU shorter than header")
	// ErrUnknownControlSubtype signals a control PDU subtype other than
	// STATUS_REPORT.
	ErrUnknownControlSubtype = errors.New("unknown pdcp control PDU subtype")
)

// Security errors.
var (
	// ErrIntegrityCheckFailed signals a MAC-I mismatch on an inbound
	// SRB PDU.
	ErrIntegrityCheckFailed = errors.New("pdcp integrity check failed")
)

// Retransmission-queue errors.
var (
	// ErrDuplicateCount signals StoreSDU called twice for one TX COUNT.
	ErrDuplicateCount = errors.New("duplicate COUNT in undelivered queue")
	// ErrCountNotFound signals a delivery/failure notification or status
	// report ack for a COUNT not present in the undelivered queue.
	ErrCountNotFound = errors.New("COUNT not present in undelivered queue")
)

// Status-report errors.
var (
	// ErrUnsupportedStatusReportSNLen signals an sn_len for which the
	// status report's FMS encoding is not defined (only 12 and 18 are).
	ErrUnsupportedStatusReportSNLen = errors.New("status report unsupported for this sn_len")
	// ErrStatusReportAllocFailed signals a buffer-pool allocation
	// failure while building a status report.
	ErrStatusReportAllocFailed = errors.New("status report buffer allocation failed")
)

// Collaborator errors.
var (
	// ErrRLCQueueFull signals that RLC reported its SDU queue full.
	ErrRLCQueueFull = errors.New("rlc sdu queue full")
	// ErrHandoverStoreUnavailable wraps a Valkey connectivity failure
	// in the handover-state store.
	ErrHandoverStoreUnavailable = errors.New("handover state store unavailable")
	// ErrBearerStateNotFound signals a handover snapshot lookup miss.
	ErrBearerStateNotFound = errors.New("bearer state not found")
	// ErrCryptoBackendUnavailable wraps a remote crypto provider
	// failure (connection error or open circuit breaker).
	ErrCryptoBackendUnavailable = errors.New("crypto backend unavailable")
)
