package signer

import (
	"time"

	"github.com/thud/codeforces-api-go/pkg/params"
)

// Credentials holds a Codeforces API key pair. The key is sent with every
// request as the apiKey parameter; the secret is only ever used as hash
// input and must never appear on the wire.
type Credentials struct {
	Key    string
	Secret string
}

// Clock supplies the current unix time used as the mandatory time
// parameter. Injectable so that signing is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// NonceSource supplies the per-request nonce prepended to the apiSig
// signature. Implementations must be safe for concurrent use and must
// never hand out a value derived from shared mutable state that could
// repeat across calls.
type NonceSource interface {
	// Nonce returns a fresh fixed-width numeric string.
	Nonce() (string, error)
}

// SignedRequest is the fully authenticated parameter set for one API call.
// Pairs holds the command's own parameters plus apiKey and time in canonical
// (sorted, percent-encoded) order, with apiSig appended as the final pair.
// It is built once per call and discarded; nothing retains it.
type SignedRequest struct {
	Method string
	Pairs  []params.Pair
}

// Query renders the full signed query string, apiSig included.
func (r *SignedRequest) Query() string {
	return params.Query(r.Pairs)
}

// Signer produces the authenticated parameter set for an API method call.
type Signer interface {
	// Sign canonicalizes p together with apiKey and a fresh time value,
	// computes apiSig over the result, and returns the complete signed
	// parameter set. apiSig is always computed last, after every other
	// parameter is fixed, because the signature covers all of them.
	Sign(method string, p params.Map, creds Credentials) (*SignedRequest, error)
}
