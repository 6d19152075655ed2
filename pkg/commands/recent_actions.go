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

// RecentActions is the recentActions method: recent site activity. Decodes
// to protocol.RecentActions.
type RecentActions struct {
	// MaxCount is the number of actions to return, up to 100.
	MaxCount int64
}

func (c *RecentActions) MethodName() string { return "recentActions" }

func (c *RecentActions) Parameters() params.Map {
	m := params.Map{}
	m.SetInt("maxCount", c.MaxCount)
	return m
}

func (c *RecentActions) ExpectedResult() protocol.ResultKind {
	return protocol.KindRecentActions
}
