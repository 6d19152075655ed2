// Copyright (C) 2026 thud
//
// This file is part of codeforces-api-go.
//
// codeforces-api-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// codeforces-api-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with codeforces-api-go.  If not, see <https://www.gnu.org/licenses/>.

package verifier

import (
	"crypto/subtle"
	"fmt"
	"net/url"

	"github.com/thud/codeforces-api-go/pkg/params"
	"github.com/thud/codeforces-api-go/pkg/signer"
)

// Nonce width plus hex-encoded SHA-512 digest.
const sigLength = 6 + 128

// VerifyQuery checks the apiSig of a received query string the way the
// server does: strip apiSig, re-canonicalize the remaining parameters,
// recompute the token with the shared secret, and compare. It returns nil
// when the signature is valid.
//
// This is the counterpart of signer.Sign. The client library itself never
// needs it against the live API; it exists for test doubles that stand in
// for the server, and for tools that validate recorded requests.
func VerifyQuery(method, rawQuery, secret string) error {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return fmt.Errorf("failed to parse query: %w", err)
	}

	sig := values.Get(signer.SigParam)
	if sig == "" {
		return fmt.Errorf("missing %s parameter", signer.SigParam)
	}
	if len(sig) != sigLength {
		return fmt.Errorf("malformed %s: want %d characters, got %d", signer.SigParam, sigLength, len(sig))
	}
	if values.Get(signer.APIKeyParam) == "" {
		return fmt.Errorf("missing %s parameter", signer.APIKeyParam)
	}
	if values.Get(signer.TimeParam) == "" {
		return fmt.Errorf("missing %s parameter", signer.TimeParam)
	}

	m := params.Map{}
	for name, vals := range values {
		if len(vals) != 1 {
			return fmt.Errorf("repeated parameter %q", name)
		}
		if name == signer.SigParam {
			continue
		}
		m.Set(name, vals[0])
	}

	pairs, err := params.Encode(m)
	if err != nil {
		return err
	}

	want := signer.Token(sig[:6], method, pairs, secret)
	if subtle.ConstantTimeCompare([]byte(want), []byte(sig)) != 1 {
		return fmt.Errorf("signature mismatch for method %s", method)
	}
	return nil
}
