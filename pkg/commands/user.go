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

// UserBlogEntries is the user.blogEntries method: all blog entries of one
// user. Decodes to protocol.BlogEntries.
type UserBlogEntries struct {
	Handle string
}

func (c *UserBlogEntries) MethodName() string { return "user.blogEntries" }

func (c *UserBlogEntries) Parameters() params.Map {
	m := params.Map{}
	m.Set("handle", c.Handle)
	return m
}

func (c *UserBlogEntries) ExpectedResult() protocol.ResultKind {
	return protocol.KindBlogEntries
}

// UserFriends is the user.friends method: the friends of the user who owns
// the credentials in use. Decodes to protocol.Friends.
type UserFriends struct {
	OnlyOnline *bool
}

func (c *UserFriends) MethodName() string { return "user.friends" }

func (c *UserFriends) Parameters() params.Map {
	m := params.Map{}
	if c.OnlyOnline != nil {
		m.SetBool("onlyOnline", *c.OnlyOnline)
	}
	return m
}

func (c *UserFriends) ExpectedResult() protocol.ResultKind {
	return protocol.KindFriends
}

// UserInfo is the user.info method: profiles for one or several handles.
// The service rejects an empty handle list. Decodes to protocol.Users.
type UserInfo struct {
	Handles []string
}

func (c *UserInfo) MethodName() string { return "user.info" }

func (c *UserInfo) Parameters() params.Map {
	m := params.Map{}
	m.SetList("handles", c.Handles)
	return m
}

func (c *UserInfo) ExpectedResult() protocol.ResultKind {
	return protocol.KindUsers
}

// UserRatedList is the user.ratedList method: users who have taken part in
// at least one rated contest. Decodes to protocol.Users.
type UserRatedList struct {
	// ActiveOnly restricts the list to users rated within the last month.
	ActiveOnly *bool
}

func (c *UserRatedList) MethodName() string { return "user.ratedList" }

func (c *UserRatedList) Parameters() params.Map {
	m := params.Map{}
	if c.ActiveOnly != nil {
		m.SetBool("activeOnly", *c.ActiveOnly)
	}
	return m
}

func (c *UserRatedList) ExpectedResult() protocol.ResultKind {
	return protocol.KindUsers
}

// UserRating is the user.rating method: one user's rating history. Decodes
// to protocol.RatingChanges.
type UserRating struct {
	Handle string
}

func (c *UserRating) MethodName() string { return "user.rating" }

func (c *UserRating) Parameters() params.Map {
	m := params.Map{}
	m.Set("handle", c.Handle)
	return m
}

func (c *UserRating) ExpectedResult() protocol.ResultKind {
	return protocol.KindRatingChanges
}

// UserStatus is the user.status method: one user's submissions, most recent
// first. Decodes to protocol.Submissions.
type UserStatus struct {
	Handle string
	From   *int64
	Count  *int64
}

func (c *UserStatus) MethodName() string { return "user.status" }

func (c *UserStatus) Parameters() params.Map {
	m := params.Map{}
	m.Set("handle", c.Handle)
	if c.From != nil {
		m.SetInt("from", *c.From)
	}
	if c.Count != nil {
		m.SetInt("count", *c.Count)
	}
	return m
}

func (c *UserStatus) ExpectedResult() protocol.ResultKind {
	return protocol.KindSubmissions
}
