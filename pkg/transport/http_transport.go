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
	"io"
	"net/http"
)

// HTTPTransport implements Transport with a standard *http.Client.
type HTTPTransport struct {
	httpClient *http.Client
}

// NewHTTPTransport creates an HTTPTransport. A nil httpClient means
// http.DefaultClient.
func NewHTTPTransport(httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPTransport{httpClient: httpClient}
}

// Get implements Transport. Connectivity failures and context cancellation
// are returned as *Error. Non-200 responses that still carry a body are
// passed through: Codeforces reports application-level failures as a FAILED
// envelope under a non-200 status, and those belong to the decoder, not to
// the transport. A non-200 response with an empty body is a transport error.
func (t *HTTPTransport) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	if resp.StatusCode != http.StatusOK && len(body) == 0 {
		return nil, &Error{
			URL: url,
			Err: fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status),
		}
	}

	return body, nil
}
