package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_SortedByName(t *testing.T) {
	m := Map{}
	m.SetInt("contestId", 1485)
	m.SetInt("from", 1)
	m.SetInt("count", 3)
	m.Set("apiKey", "k")

	pairs, err := Encode(m)
	require.NoError(t, err)

	names := make([]string, len(pairs))
	for i, p := range pairs {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"apiKey", "contestId", "count", "from"}, names)
}

func TestEncode_Deterministic(t *testing.T) {
	m := Map{}
	m.Set("handle", "thud")
	m.SetBool("showUnofficial", false)
	m.SetList("handles", []string{"thud", "tourist"})

	first, err := Encode(m)
	require.NoError(t, err)
	second, err := Encode(m)
	require.NoError(t, err)

	// Encoding twice yields identical byte sequences.
	assert.Equal(t, Query(first), Query(second))
}

func TestEncode_PercentEncodesValues(t *testing.T) {
	m := Map{}
	m.SetList("tags", []string{"dp", "greedy"})
	m.Set("problemsetName", "acm sguru")

	pairs, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, "problemsetName=acm+sguru&tags=dp%2Cgreedy", Query(pairs))
}

func TestEncode_EscapingDoesNotAffectOrder(t *testing.T) {
	// "{" escapes to "%7B" while "~" and "z" encode to themselves, so an
	// encode-then-sort implementation would order these differently than
	// sort-then-encode. Ordering must follow the raw input.
	m := Map{"a": "{", "b": "~", "c": "z"}

	pairs, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Name: "a", Value: "%7B"},
		{Name: "b", Value: "~"},
		{Name: "c", Value: "z"},
	}, pairs)
}

func TestEncode_EmptyNameRejected(t *testing.T) {
	m := Map{"": "value"}

	_, err := Encode(m)
	require.Error(t, err)

	var invalid *InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "", invalid.Name)
}

func TestQuery_RoundTrip(t *testing.T) {
	m := Map{}
	m.SetInt("blogEntryId", 82347)
	m.SetList("handles", []string{"thud", "tourist"})
	m.SetBool("gym", true)

	pairs, err := Encode(m)
	require.NoError(t, err)

	parsed, err := url.ParseQuery(Query(pairs))
	require.NoError(t, err)

	assert.Equal(t, "82347", parsed.Get("blogEntryId"))
	assert.Equal(t, "thud,tourist", parsed.Get("handles"))
	assert.Equal(t, "true", parsed.Get("gym"))
	assert.Len(t, parsed, len(m))
}

func TestMap_Clone_Independent(t *testing.T) {
	m := Map{"a": "1"}
	c := m.Clone()
	c.Set("b", "2")

	assert.Len(t, m, 1)
	assert.Len(t, c, 2)
}
