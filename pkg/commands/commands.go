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

package commands

import (
	"github.com/thud/codeforces-api-go/pkg/params"
	"github.com/thud/codeforces-api-go/pkg/protocol"
)

// Command is implemented by every request variant of the Codeforces API.
// The dispatcher and decoder only ever see this interface, so new remote
// methods are added by defining a new variant, never by editing a central
// switch.
type Command interface {
	// MethodName returns the fixed remote method name, e.g. "user.info".
	MethodName() string

	// Parameters materializes the command's parameter map. Optional
	// parameters that are unset are absent from the map entirely, never
	// encoded as empty values.
	Parameters() params.Map

	// ExpectedResult declares the payload kind a well-formed response to
	// this command decodes into.
	ExpectedResult() protocol.ResultKind
}

// Int64 returns a pointer to v, for filling optional command fields.
func Int64(v int64) *int64 { return &v }

// Bool returns a pointer to v, for filling optional command fields.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for filling optional command fields.
func String(v string) *string { return &v }
