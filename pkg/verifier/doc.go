// Package verifier recomputes and checks apiSig signatures on received
// query strings, mirroring what the Codeforces server does with the shared
// secret.
//
// Its main consumers are test doubles: an httptest.Server handler can call
// VerifyQuery before serving a canned envelope, which turns every e2e test
// into a full verification of the signing pipeline, byte for byte.
//
//	mux.HandleFunc("/user.rating", func(w http.ResponseWriter, r *http.Request) {
//	    if err := verifier.VerifyQuery("user.rating", r.URL.RawQuery, secret); err != nil {
//	        w.Write([]byte(`{"status":"FAILED","comment":"apiSig: Invalid signature"}`))
//	        return
//	    }
//	    w.Write(ratingJSON)
//	})
package verifier
