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

// BlogEntryComments is the blogEntry.comments method: the comments on a
// blog entry. Decodes to protocol.Comments.
type BlogEntryComments struct {
	// BlogEntryID appears in the blog's URL, e.g. /blog/entry/82347.
	BlogEntryID int64
}

func (c *BlogEntryComments) MethodName() string { return "blogEntry.comments" }

func (c *BlogEntryComments) Parameters() params.Map {
	m := params.Map{}
	m.SetInt("blogEntryId", c.BlogEntryID)
	return m
}

func (c *BlogEntryComments) ExpectedResult() protocol.ResultKind {
	return protocol.KindComments
}

// BlogEntryView is the blogEntry.view method: a single blog entry in full.
// Decodes to *protocol.BlogEntry.
type BlogEntryView struct {
	BlogEntryID int64
}

func (c *BlogEntryView) MethodName() string { return "blogEntry.view" }

func (c *BlogEntryView) Parameters() params.Map {
	m := params.Map{}
	m.SetInt("blogEntryId", c.BlogEntryID)
	return m
}

func (c *BlogEntryView) ExpectedResult() protocol.ResultKind {
	return protocol.KindBlogEntry
}
