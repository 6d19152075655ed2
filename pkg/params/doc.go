// Package params implements the canonical query parameter encoding used by
// the Codeforces API signing protocol.
//
// The Codeforces API requires every authenticated request's parameters to be
// canonicalized before signing: sorted lexicographically by name and then by
// value, with values percent-encoded. The same encoded byte sequence is used
// both as hash input for the apiSig signature and as the literal request
// query string, so determinism here is what makes signatures verifiable.
//
// # Usage
//
//	m := params.Map{}
//	m.SetInt("blogEntryId", 82347)
//	m.SetList("tags", []string{"dp", "greedy"})
//
//	pairs, err := params.Encode(m)
//	if err != nil {
//	    return err
//	}
//	query := params.Query(pairs) // "blogEntryId=82347&tags=dp%2Cgreedy"
//
// List parameters are comma-joined into a single value; the API never uses
// repeated query keys. Optional parameters that are unset must be left out
// of the map entirely rather than set to an empty value.
package params
