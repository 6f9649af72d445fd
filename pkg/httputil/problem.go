// Package httputil provides small HTTP helpers shared by the debug/admin
// surfaces exposed by the simulator binary.
package httputil

import (
	"encoding/json"
	"net/http"
)

// ProblemDetail is an RFC 7807 error response body.
type ProblemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// NewProblemDetail builds a ProblemDetail.
func NewProblemDetail(status int, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// BadRequest builds a 400 Bad Request problem.
func BadRequest(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusBadRequest, "Bad Request", detail)
}

// NotFound builds a 404 Not Found problem.
func NotFound(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusNotFound, "Not Found", detail)
}

// InternalServerError builds a 500 Internal Server Error problem.
func InternalServerError(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusInternalServerError, "Internal Server Error", detail)
}

// BadGateway builds a 502 Bad Gateway problem.
func BadGateway(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusBadGateway, "Bad Gateway", detail)
}

// NotImplemented builds a 501 Not Implemented problem.
func NotImplemented(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusNotImplemented, "Not Implemented", detail)
}

// ServiceUnavailable builds a 503 Service Unavailable problem.
func ServiceUnavailable(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusServiceUnavailable, "Service Unavailable", detail)
}

// JSON encodes the ProblemDetail.
func (p *ProblemDetail) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// MustJSON encodes the ProblemDetail, panicking on failure.
func (p *ProblemDetail) MustJSON() []byte {
	data, err := p.JSON()
	if err != nil {
		panic(err)
	}
	return data
}

// ContentType is the RFC 7807 media type.
const ContentType = "application/problem+json"
