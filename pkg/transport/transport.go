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

package transport

import (
	"context"
	"fmt"
)

// Transport fetches raw response bytes for a fully assembled request URL.
// It is the only blocking boundary of the library: the signing and decoding
// core never touches the network. Cancellation and timeouts belong to the
// implementation (and the caller's context), not to the core.
type Transport interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Error wraps a network-level failure from a Transport. It is distinct from
// the service's own application-level errors (protocol.APIError) and from
// response shape mismatches (protocol.DecodeError).
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
