// Package commands defines one typed request variant per Codeforces API
// method.
//
// Each variant implements the Command capability interface: it knows its
// fixed remote method name, how to materialize its parameters, and which
// protocol.ResultKind a well-formed response decodes into. The dispatcher
// in pkg/client consumes commands only through that interface, so adding a
// new API method never touches the dispatcher or the decoder.
//
//	cmd := &commands.ContestStandings{
//	    ContestID:      1485,
//	    From:           commands.Int64(1),
//	    Count:          commands.Int64(3),
//	    Handles:        []string{"thud"},
//	    ShowUnofficial: commands.Bool(false),
//	}
//	res, err := c.Do(ctx, cmd)
//
// Optional parameters are pointer fields (or nil-able slices); when unset
// they are omitted from the encoded request entirely rather than sent as
// empty values. The Int64, Bool and String helpers fill them inline.
package commands
