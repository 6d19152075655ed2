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

// ContestHacks is the contest.hacks method: hacks in a contest. Full hack
// information becomes available some time after the contest ends. Decodes
// to protocol.Hacks.
type ContestHacks struct {
	ContestID int64
}

func (c *ContestHacks) MethodName() string { return "contest.hacks" }

func (c *ContestHacks) Parameters() params.Map {
	m := params.Map{}
	m.SetInt("contestId", c.ContestID)
	return m
}

func (c *ContestHacks) ExpectedResult() protocol.ResultKind {
	return protocol.KindHacks
}

// ContestList is the contest.list method: all available contests. Decodes
// to protocol.Contests.
type ContestList struct {
	// Gym selects gym contests instead of regular ones. Nil omits the
	// parameter and the service returns regular contests.
	Gym *bool
}

func (c *ContestList) MethodName() string { return "contest.list" }

func (c *ContestList) Parameters() params.Map {
	m := params.Map{}
	if c.Gym != nil {
		m.SetBool("gym", *c.Gym)
	}
	return m
}

func (c *ContestList) ExpectedResult() protocol.ResultKind {
	return protocol.KindContests
}

// ContestRatingChanges is the contest.ratingChanges method: rating changes
// after a contest. Decodes to protocol.RatingChanges.
type ContestRatingChanges struct {
	ContestID int64
}

func (c *ContestRatingChanges) MethodName() string { return "contest.ratingChanges" }

func (c *ContestRatingChanges) Parameters() params.Map {
	m := params.Map{}
	m.SetInt("contestId", c.ContestID)
	return m
}

func (c *ContestRatingChanges) ExpectedResult() protocol.ResultKind {
	return protocol.KindRatingChanges
}

// ContestStandings is the contest.standings method: the contest description
// plus the requested slice of the ranklist. Decodes to *protocol.Standings.
type ContestStandings struct {
	ContestID int64
	// From is the 1-based index of the first standings row to return.
	From *int64
	// Count is the number of standings rows to return.
	Count *int64
	// Handles restricts rows to these users. The service allows at most
	// 10000 handles per request.
	Handles []string
	// Room restricts rows to participants from one room.
	Room *int64
	// ShowUnofficial includes virtual and out-of-competition participants.
	ShowUnofficial *bool
}

func (c *ContestStandings) MethodName() string { return "contest.standings" }

func (c *ContestStandings) Parameters() params.Map {
	m := params.Map{}
	m.SetInt("contestId", c.ContestID)
	if c.From != nil {
		m.SetInt("from", *c.From)
	}
	if c.Count != nil {
		m.SetInt("count", *c.Count)
	}
	if c.Handles != nil {
		m.SetList("handles", c.Handles)
	}
	if c.Room != nil {
		m.SetInt("room", *c.Room)
	}
	if c.ShowUnofficial != nil {
		m.SetBool("showUnofficial", *c.ShowUnofficial)
	}
	return m
}

func (c *ContestStandings) ExpectedResult() protocol.ResultKind {
	return protocol.KindStandings
}

// ContestStatus is the contest.status method: submissions for a contest,
// optionally restricted to one user. Decodes to protocol.Submissions.
type ContestStatus struct {
	ContestID int64
	Handle    *string
	From      *int64
	Count     *int64
}

func (c *ContestStatus) MethodName() string { return "contest.status" }

func (c *ContestStatus) Parameters() params.Map {
	m := params.Map{}
	m.SetInt("contestId", c.ContestID)
	if c.Handle != nil {
		m.Set("handle", *c.Handle)
	}
	if c.From != nil {
		m.SetInt("from", *c.From)
	}
	if c.Count != nil {
		m.SetInt("count", *c.Count)
	}
	return m
}

func (c *ContestStatus) ExpectedResult() protocol.ResultKind {
	return protocol.KindSubmissions
}
