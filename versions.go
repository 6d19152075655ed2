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

// Package codeforcesapi provides version information for codeforces-api-go.
package codeforcesapi

const (
	// Version is the current version of codeforces-api-go.
	Version = "1.0.0"

	// APIBaseURL is the live endpoint this library targets.
	// See: https://codeforces.com/apiHelp
	APIBaseURL = "https://codeforces.com/api"
)

// Shared testing credentials referring to the user "MikeWazowski",
// published with the API documentation examples. Not to be abused.
const (
	TestAPIKey    = "7dd1c6a92bf0a6cb22b0e9fa9c08d1dac4948023"
	TestAPISecret = "acc9a26087164935d62610ed693c063463e123c2"
)
