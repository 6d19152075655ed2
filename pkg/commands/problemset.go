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

// ProblemsetProblems is the problemset.problems method: all problems of a
// problemset, optionally filtered by tags. Decodes to *protocol.Problemset.
type ProblemsetProblems struct {
	// Tags filters problems to those carrying every listed tag.
	Tags []string
	// ProblemsetName selects a custom problemset such as "acmsguru";
	// nil means the default problemset.
	ProblemsetName *string
}

func (c *ProblemsetProblems) MethodName() string { return "problemset.problems" }

func (c *ProblemsetProblems) Parameters() params.Map {
	m := params.Map{}
	if c.Tags != nil {
		m.SetList("tags", c.Tags)
	}
	if c.ProblemsetName != nil {
		m.Set("problemsetName", *c.ProblemsetName)
	}
	return m
}

func (c *ProblemsetProblems) ExpectedResult() protocol.ResultKind {
	return protocol.KindProblemset
}

// ProblemsetRecentStatus is the problemset.recentStatus method: the most
// recent submissions, site-wide. Decodes to protocol.Submissions.
type ProblemsetRecentStatus struct {
	// Count is the number of submissions to return, up to 1000.
	Count          int64
	ProblemsetName *string
}

func (c *ProblemsetRecentStatus) MethodName() string { return "problemset.recentStatus" }

func (c *ProblemsetRecentStatus) Parameters() params.Map {
	m := params.Map{}
	m.SetInt("count", c.Count)
	if c.ProblemsetName != nil {
		m.Set("problemsetName", *c.ProblemsetName)
	}
	return m
}

func (c *ProblemsetRecentStatus) ExpectedResult() protocol.ResultKind {
	return protocol.KindSubmissions
}
