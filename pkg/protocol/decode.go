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

package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// fieldSpec is one field the API documents as always present. When fields
// is non-nil the value itself is an object with its own required fields,
// or an array of such objects when array is set; the check recurses so an
// empty nested object is reported with its full path instead of decoding
// into zero values.
type fieldSpec struct {
	name   string
	fields []fieldSpec
	array  bool
}

// flat builds fieldSpecs for scalar fields with no nested shape.
func flat(names ...string) []fieldSpec {
	specs := make([]fieldSpec, len(names))
	for i, name := range names {
		specs[i] = fieldSpec{name: name}
	}
	return specs
}

var (
	blogEntryFields = flat(
		"id", "originalLocale", "creationTimeSeconds", "authorHandle",
		"title", "locale", "modificationTimeSeconds", "allowViewHistory",
		"tags", "rating",
	)
	commentFields = flat(
		"id", "creationTimeSeconds", "commentatorHandle", "locale",
		"text", "rating",
	)
	userFields = flat(
		"handle", "contribution", "lastOnlineTimeSeconds",
		"registrationTimeSeconds", "friendOfCount", "avatar", "titlePhoto",
	)
	ratingChangeFields = flat(
		"contestId", "contestName", "handle", "rank",
		"ratingUpdateTimeSeconds", "oldRating", "newRating",
	)
	contestFields = flat("id", "name", "type", "phase", "durationSeconds")

	memberFields  = flat("handle")
	problemFields = flat("name", "type", "tags")

	partyFields = append(
		flat("participantType", "ghost"),
		fieldSpec{name: "members", array: true, fields: memberFields},
	)

	problemResultFields     = flat("points", "rejectedAttemptCount", "type")
	problemStatisticsFields = flat("solvedCount")

	ranklistRowFields = append(
		flat("rank", "points", "penalty",
			"successfulHackCount", "unsuccessfulHackCount"),
		fieldSpec{name: "party", fields: partyFields},
		fieldSpec{name: "problemResults", array: true, fields: problemResultFields},
	)

	submissionFields = append(
		flat("id", "creationTimeSeconds", "programmingLanguage", "testset",
			"passedTestCount", "timeConsumedMillis", "memoryConsumedBytes"),
		fieldSpec{name: "problem", fields: problemFields},
		fieldSpec{name: "author", fields: partyFields},
	)

	hackFields = append(
		flat("id", "creationTimeSeconds"),
		fieldSpec{name: "hacker", fields: partyFields},
		fieldSpec{name: "defender", fields: partyFields},
		fieldSpec{name: "problem", fields: problemFields},
	)

	recentActionFields = flat("timeSeconds")

	standingsFields = []fieldSpec{
		{name: "contest", fields: contestFields},
		{name: "problems", array: true, fields: problemFields},
		{name: "rows", array: true, fields: ranklistRowFields},
	}

	problemsetFields = []fieldSpec{
		{name: "problems", array: true, fields: problemFields},
		{name: "problemStatistics", array: true, fields: problemStatisticsFields},
	}
)

// DecodeResponse parses raw response bytes into the Result the issuing
// command declared. A FAILED status becomes an *APIError regardless of
// whether a result payload is present; structural mismatches become
// *DecodeError carrying the offending field path.
func DecodeResponse(raw []byte, kind ResultKind) (Result, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &DecodeError{Field: "envelope", Err: err}
	}

	switch env.Status {
	case StatusFailed:
		return nil, &APIError{Comment: env.Comment}
	case StatusOK:
	default:
		return nil, &DecodeError{
			Field: "status",
			Err:   fmt.Errorf("unknown status %q", env.Status),
		}
	}

	if len(env.Result) == 0 {
		return nil, &DecodeError{Field: "result"}
	}
	return DecodeResult(env.Result, kind)
}

// DecodeResult decodes an already-extracted result payload into the given
// kind. Exposed separately so recorded payloads can be decoded without an
// envelope around them.
func DecodeResult(raw json.RawMessage, kind ResultKind) (Result, error) {
	switch kind {
	case KindBlogEntry:
		var v BlogEntry
		if err := decodeObject(raw, "result", &v, blogEntryFields); err != nil {
			return nil, err
		}
		return &v, nil
	case KindComments:
		var v Comments
		if err := decodeArray(raw, "result", &v, commentFields); err != nil {
			return nil, err
		}
		return v, nil
	case KindHacks:
		var v Hacks
		if err := decodeArray(raw, "result", &v, hackFields); err != nil {
			return nil, err
		}
		return v, nil
	case KindContests:
		var v Contests
		if err := decodeArray(raw, "result", &v, contestFields); err != nil {
			return nil, err
		}
		return v, nil
	case KindRatingChanges:
		var v RatingChanges
		if err := decodeArray(raw, "result", &v, ratingChangeFields); err != nil {
			return nil, err
		}
		return v, nil
	case KindStandings:
		var v Standings
		if err := decodeObject(raw, "result", &v, standingsFields); err != nil {
			return nil, err
		}
		return &v, nil
	case KindSubmissions:
		var v Submissions
		if err := decodeArray(raw, "result", &v, submissionFields); err != nil {
			return nil, err
		}
		return v, nil
	case KindProblemset:
		var v Problemset
		if err := decodeObject(raw, "result", &v, problemsetFields); err != nil {
			return nil, err
		}
		return &v, nil
	case KindRecentActions:
		var v RecentActions
		if err := decodeArray(raw, "result", &v, recentActionFields); err != nil {
			return nil, err
		}
		return v, nil
	case KindBlogEntries:
		var v BlogEntries
		if err := decodeArray(raw, "result", &v, blogEntryFields); err != nil {
			return nil, err
		}
		return v, nil
	case KindFriends:
		var v Friends
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, typeError("result", err)
		}
		return v, nil
	case KindUsers:
		var v Users
		if err := decodeArray(raw, "result", &v, userFields); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, &DecodeError{
			Field: "result",
			Err:   fmt.Errorf("unknown result kind %d", kind),
		}
	}
}

// decodeObject checks required fields on a JSON object at path, then
// unmarshals it into v.
func decodeObject(raw json.RawMessage, path string, v any, specs []fieldSpec) error {
	if err := checkObject(raw, path, specs); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return typeError(path, err)
	}
	return nil
}

// decodeArray checks required fields on every element of a JSON array at
// path, then unmarshals the whole array into v.
func decodeArray(raw json.RawMessage, path string, v any, specs []fieldSpec) error {
	if err := checkArray(raw, path, specs); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return typeError(path, err)
	}
	return nil
}

// checkObject verifies an object's required fields, descending into nested
// objects and arrays declared by the specs. The first missing field is
// reported with its full path, e.g. "result.rows[0].party.members".
func checkObject(raw json.RawMessage, path string, specs []fieldSpec) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return typeError(path, err)
	}
	for _, spec := range specs {
		val, ok := fields[spec.name]
		if !ok {
			return &DecodeError{Field: path + "." + spec.name}
		}
		if spec.fields == nil {
			continue
		}
		fieldPath := path + "." + spec.name
		if spec.array {
			if err := checkArray(val, fieldPath, spec.fields); err != nil {
				return err
			}
			continue
		}
		if err := checkObject(val, fieldPath, spec.fields); err != nil {
			return err
		}
	}
	return nil
}

func checkArray(raw json.RawMessage, path string, specs []fieldSpec) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return typeError(path, err)
	}
	for i, elem := range elems {
		if err := checkObject(elem, fmt.Sprintf("%s[%d]", path, i), specs); err != nil {
			return err
		}
	}
	return nil
}

// typeError wraps a json error as a DecodeError, refining the field path
// with whatever encoding/json can tell us about where the mismatch was.
func typeError(path string, err error) error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		path = path + "." + ute.Field
	}
	return &DecodeError{Field: path, Err: err}
}
