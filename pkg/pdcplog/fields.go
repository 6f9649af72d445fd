// Package pdcplog provides slog.Attr builders for the fields that recur
// across every PDCP log line, so call sites build structured attributes
// instead of ad hoc fmt.Sprintf strings.
package pdcplog

import "log/slog"

// Field name constants, kept stable so downstream log processors can key
// off them.
const (
	FieldLCID      = "lcid"
	FieldBearerID  = "bearer_id"
	FieldSN        = "sn"
	FieldCount     = "count"
	FieldHFN       = "hfn"
	FieldEventID   = "event_id"
	FieldError     = "error"
	FieldDirection = "direction"
)

// WithLCID returns the slog.Attr for a logical channel ID.
func WithLCID(lcid uint32) slog.Attr {
	return slog.Uint64(FieldLCID, uint64(lcid))
}

// WithBearerID returns the slog.Attr for a bearer ID.
func WithBearerID(bearerID uint32) slog.Attr {
	return slog.Uint64(FieldBearerID, uint64(bearerID))
}

// WithSN returns the slog.Attr for a PDCP sequence number.
func WithSN(sn uint32) slog.Attr {
	return slog.Uint64(FieldSN, uint64(sn))
}

// WithCount returns the slog.Attr for a 32-bit COUNT value.
func WithCount(count uint32) slog.Attr {
	return slog.Uint64(FieldCount, uint64(count))
}

// WithHFN returns the slog.Attr for a hyper-frame number.
func WithHFN(hfn uint32) slog.Attr {
	return slog.Uint64(FieldHFN, uint64(hfn))
}

// WithEventID returns the slog.Attr for a short, greppable event
// identifier (e.g. "TX_DISCARD", "RX_INTEGRITY_FAIL").
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError returns the slog.Attr for an error, or an empty string if nil.
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// BearerFields returns the common {lcid, bearer_id} attribute set used by
// every log line an entity emits.
func BearerFields(lcid, bearerID uint32) []any {
	return []any{WithLCID(lcid), WithBearerID(bearerID)}
}
