package protocol

import "encoding/json"

// Status is the top-level response status reported by the API.
type Status string

const (
	StatusOK     Status = "OK"
	StatusFailed Status = "FAILED"
)

// Envelope is the raw top-level response object. On success Result holds
// the still-undecoded payload; on failure Comment carries the service's
// human-readable reason.
type Envelope struct {
	Status  Status          `json:"status"`
	Result  json.RawMessage `json:"result,omitempty"`
	Comment string          `json:"comment,omitempty"`
}
