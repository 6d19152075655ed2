// Package client dispatches typed commands to the Codeforces API with
// automatic apiSig request signing.
//
// A Client combines three collaborators: the command model (pkg/commands),
// the signer (pkg/signer), and an injected transport (pkg/transport). Each
// call builds the canonical signed query, performs a single delegated GET,
// and decodes the response into a typed result.
//
// # Basic usage
//
//	creds := signer.Credentials{Key: apiKey, Secret: apiSecret}
//	c := client.New(creds)
//
//	res, err := c.Do(ctx, &commands.BlogEntryView{BlogEntryID: 82347})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	entry := res.(*protocol.BlogEntry)
//	fmt.Println(entry.Title)
//
// # Error handling
//
// Every failure is one of four typed errors, distinguishable with
// errors.As: *params.InvalidParameterError (bad caller input, caught before
// signing), *transport.Error (network failure), *protocol.APIError (the
// service rejected the request), *protocol.DecodeError (response shape
// mismatch). The client never retries; wrap Do yourself if you want a retry
// policy.
//
// # Testing
//
// All collaborators are injectable, so the full request path runs without
// a network:
//
//	c := client.New(creds,
//	    client.WithSigner(signer.NewDefaultSigner(
//	        signer.WithClock(signer.FixedClock(1234567890)),
//	        signer.WithNonceSource(signer.FixedNonceSource("123456")),
//	    )),
//	    client.WithTransport(fakeTransport),
//	)
package client
