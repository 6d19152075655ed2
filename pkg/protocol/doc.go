// Package protocol defines the Codeforces API wire types and the response
// decoder.
//
// Every API response is an envelope:
//
//	{"status": "OK"|"FAILED", "result": <payload>, "comment": "<reason>"}
//
// A FAILED status is the service's own error channel and surfaces as
// *APIError. On OK, the payload is decoded into the Result variant the
// issuing command declared: a single entity (*BlogEntry, *Standings,
// *Problemset) or a named slice type (Submissions, Users, ...). Each variant
// reports its ResultKind, so callers can type-switch:
//
//	res, err := c.Do(ctx, &commands.ContestStatus{ContestID: 1485})
//	if err != nil {
//	    var apiErr *protocol.APIError
//	    if errors.As(err, &apiErr) {
//	        // rejected by the service, apiErr.Comment says why
//	    }
//	    return err
//	}
//	for _, sub := range res.(protocol.Submissions) {
//	    fmt.Println(sub.ID, sub.Verdict)
//	}
//
// # Structural validation
//
// The decoder verifies that every field the API documents as always present
// actually is, before unmarshaling. A missing field yields a *DecodeError
// naming its path ("result[2].handle") instead of a silently zeroed struct.
// A produced kind can therefore never disagree with the declared kind; such
// a disagreement would be an internal bug, not a runtime input condition.
package protocol
