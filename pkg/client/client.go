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

package client

import (
	"context"
	"fmt"

	"github.com/thud/codeforces-api-go/pkg/commands"
	"github.com/thud/codeforces-api-go/pkg/protocol"
	"github.com/thud/codeforces-api-go/pkg/signer"
	"github.com/thud/codeforces-api-go/pkg/transport"
)

// DefaultBaseURL is the live Codeforces API endpoint.
const DefaultBaseURL = "https://codeforces.com/api"

// Client dispatches commands to the Codeforces API. It holds no per-call
// state: every Do starts fresh, so a single Client is safe for concurrent
// use as long as its collaborators are (the defaults all are).
type Client struct {
	creds     signer.Credentials
	baseURL   string
	signer    signer.Signer
	transport transport.Transport
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different endpoint, e.g. a mirror or
// a test server.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithTransport replaces the default HTTP transport.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithSigner replaces the default signer, typically to inject a fixed
// clock or nonce in tests.
func WithSigner(s signer.Signer) Option {
	return func(c *Client) { c.signer = s }
}

// New creates a Client for the live API with the default signer and an
// http.DefaultClient-backed transport.
func New(creds signer.Credentials, opts ...Option) *Client {
	c := &Client{
		creds:     creds,
		baseURL:   DefaultBaseURL,
		signer:    signer.NewDefaultSigner(),
		transport: transport.NewHTTPTransport(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes a command: signs its parameters, performs the GET via the
// injected transport, and decodes the response into the result kind the
// command declares. Failures are one of the four typed errors:
// *params.InvalidParameterError, *transport.Error, *protocol.APIError or
// *protocol.DecodeError. Nothing is retried internally.
func (c *Client) Do(ctx context.Context, cmd commands.Command) (protocol.Result, error) {
	body, err := c.DoRaw(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return protocol.DecodeResponse(body, cmd.ExpectedResult())
}

// DoRaw executes a command and returns the raw response bytes without
// decoding the envelope. Useful for archiving responses or feeding them to
// protocol.DecodeResponse later.
func (c *Client) DoRaw(ctx context.Context, cmd commands.Command) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	signed, err := c.signer.Sign(cmd.MethodName(), cmd.Parameters(), c.creds)
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	body, err := c.transport.Get(ctx, c.requestURL(signed))
	if err != nil {
		return nil, err
	}
	return body, nil
}

// requestURL assembles the final GET URL. The query string is exactly the
// signed byte sequence; reordering or re-encoding it here would invalidate
// the signature.
func (c *Client) requestURL(signed *signer.SignedRequest) string {
	return c.baseURL + "/" + signed.Method + "?" + signed.Query()
}
