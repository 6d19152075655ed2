// Package transport abstracts the network boundary of the client.
//
// The signing and decoding core is a pure transform from command to signed
// request; the only side-effecting step is fetching bytes for a URL, and
// that step is injected as the Transport interface. HTTPTransport is the
// default implementation on top of net/http:
//
//	c := client.New(creds) // uses NewHTTPTransport(nil)
//
//	// or with a tuned http.Client:
//	httpClient := &http.Client{Timeout: 30 * time.Second}
//	c := client.New(creds, client.WithTransport(transport.NewHTTPTransport(httpClient)))
//
// Tests substitute an in-memory Transport and never open a socket.
// Network-level failures surface as *Error; the dispatcher does not retry
// them, retry policy is the caller's decision.
package transport
