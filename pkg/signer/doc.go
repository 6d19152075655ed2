// Package signer implements the Codeforces apiSig request signing scheme.
//
// Every authenticated API call carries three extra query parameters: apiKey,
// time (unix seconds at signing time) and apiSig. The apiSig token is built
// from a fresh 6-digit random nonce and a SHA-512 digest:
//
//	apiSig = nonce + hex(sha512(nonce + "/" + method + "?" + query + "#" + secret))
//
// where query is the canonical (sorted, percent-encoded) parameter string
// produced by the params package, with apiKey and time already merged in.
// The server recomputes the digest from the request it receives, so the
// signed bytes and the sent bytes must be identical.
//
// # Determinism
//
// The two ambient inputs, wall clock and randomness, are injected as the
// Clock and NonceSource collaborators. The defaults read time.Now and
// crypto/rand; tests substitute FixedClock and FixedNonceSource to pin
// signatures to golden values.
//
//	s := signer.NewDefaultSigner(
//	    signer.WithClock(signer.FixedClock(1234567890)),
//	    signer.WithNonceSource(signer.FixedNonceSource("123456")),
//	)
//	signed, err := s.Sign("blogEntry.view", m, creds)
//
// The signing core performs no I/O and holds no state between calls, so a
// single DefaultSigner is safe for concurrent use.
package signer
