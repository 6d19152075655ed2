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

package client

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thud/codeforces-api-go/pkg/commands"
	"github.com/thud/codeforces-api-go/pkg/params"
	"github.com/thud/codeforces-api-go/pkg/protocol"
	"github.com/thud/codeforces-api-go/pkg/signer"
	"github.com/thud/codeforces-api-go/pkg/transport"
)

var testCreds = signer.Credentials{
	Key:    "7dd1c6a92bf0a6cb22b0e9fa9c08d1dac4948023",
	Secret: "acc9a26087164935d62610ed693c063463e123c2",
}

// fakeTransport records the requested URL and serves a canned body.
type fakeTransport struct {
	mu   sync.Mutex
	urls []string
	body []byte
	err  error
}

func (f *fakeTransport) Get(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	f.urls = append(f.urls, url)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func (f *fakeTransport) lastURL(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.urls)
	return f.urls[len(f.urls)-1]
}

func fixedSignerClient(ft *fakeTransport) *Client {
	return New(testCreds,
		WithSigner(signer.NewDefaultSigner(
			signer.WithClock(signer.FixedClock(1234567890)),
			signer.WithNonceSource(signer.FixedNonceSource("123456")),
		)),
		WithTransport(ft),
	)
}

func TestClient_Do_BlogEntryView(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"status":"OK","result":{
		"id": 82347,
		"originalLocale": "en",
		"creationTimeSeconds": 1610000000,
		"authorHandle": "thud",
		"title": "Codeforces API crate",
		"locale": "en",
		"modificationTimeSeconds": 1610000100,
		"allowViewHistory": true,
		"tags": [],
		"rating": 48
	}}`)}
	c := fixedSignerClient(ft)

	res, err := c.Do(context.Background(), &commands.BlogEntryView{BlogEntryID: 82347})
	require.NoError(t, err)

	entry, ok := res.(*protocol.BlogEntry)
	require.True(t, ok, "expected *protocol.BlogEntry, got %T", res)
	assert.Equal(t, int64(82347), entry.ID)
}

func TestClient_Do_RequestURLShape(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"status":"OK","result":[]}`)}
	c := fixedSignerClient(ft)

	_, err := c.Do(context.Background(), &commands.UserRating{Handle: "thud"})
	require.NoError(t, err)

	raw := ft.lastURL(t)
	assert.True(t, strings.HasPrefix(raw, DefaultBaseURL+"/user.rating?"))

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()

	// The command's own parameters plus exactly apiKey, time and apiSig.
	assert.Len(t, q, 4)
	assert.Equal(t, "thud", q.Get("handle"))
	assert.Equal(t, testCreds.Key, q.Get("apiKey"))
	assert.Equal(t, "1234567890", q.Get("time"))
	assert.NotEmpty(t, q.Get("apiSig"))
	assert.NotContains(t, raw, testCreds.Secret)
}

func TestClient_Do_SignedQueryRoundTrip(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"status":"OK","result":{"problems":[],"problemStatistics":[]}}`)}
	c := fixedSignerClient(ft)

	cmd := &commands.ProblemsetProblems{Tags: []string{"dp", "greedy"}}
	_, err := c.Do(context.Background(), cmd)
	require.NoError(t, err)

	u, err := url.Parse(ft.lastURL(t))
	require.NoError(t, err)
	q := u.Query()

	// Re-parsing the sent query recovers the original parameter set.
	assert.Equal(t, "dp,greedy", q.Get("tags"))

	// And the signature is reproducible from the request's parameter set.
	m := params.Map{}
	for name, values := range q {
		if name == signer.SigParam {
			continue
		}
		m.Set(name, values[0])
	}
	pairs, err := params.Encode(m)
	require.NoError(t, err)

	sig := q.Get(signer.SigParam)
	require.Len(t, sig, 6+128)
	assert.Equal(t, signer.Token(sig[:6], cmd.MethodName(), pairs, testCreds.Secret), sig)
}

func TestClient_Do_APIError(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"status":"FAILED","comment":"handle: User with handle nobody not found"}`)}
	c := fixedSignerClient(ft)

	_, err := c.Do(context.Background(), &commands.UserRating{Handle: "nobody"})
	require.Error(t, err)

	var apiErr *protocol.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "handle: User with handle nobody not found", apiErr.Comment)
}

func TestClient_Do_TransportError(t *testing.T) {
	wrapped := errors.New("connection reset")
	ft := &fakeTransport{err: &transport.Error{URL: "u", Err: wrapped}}
	c := fixedSignerClient(ft)

	_, err := c.Do(context.Background(), &commands.ContestList{})
	require.Error(t, err)

	var terr *transport.Error
	require.ErrorAs(t, err, &terr)
	assert.ErrorIs(t, err, wrapped)
}

func TestClient_Do_DecodeError(t *testing.T) {
	// Wrong shape for the declared kind: an object where a list of
	// contests was promised.
	ft := &fakeTransport{body: []byte(`{"status":"OK","result":{"id":1}}`)}
	c := fixedSignerClient(ft)

	_, err := c.Do(context.Background(), &commands.ContestList{})
	require.Error(t, err)

	var decErr *protocol.DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestClient_Do_ContextAlreadyCancelled(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"status":"OK","result":[]}`)}
	c := fixedSignerClient(ft)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Do(ctx, &commands.ContestList{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ft.urls, "no network call after cancellation")
}

func TestClient_DoRaw(t *testing.T) {
	raw := `{"status":"OK","result":["tourist"]}`
	ft := &fakeTransport{body: []byte(raw)}
	c := fixedSignerClient(ft)

	body, err := c.DoRaw(context.Background(), &commands.UserFriends{})
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(body))
}

func TestClient_WithBaseURL(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"status":"OK","result":[]}`)}
	c := New(testCreds, WithTransport(ft), WithBaseURL("http://localhost:8080/api"))

	_, err := c.Do(context.Background(), &commands.ContestList{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ft.lastURL(t), "http://localhost:8080/api/contest.list?"))
}

func TestClient_Do_ConcurrentCalls(t *testing.T) {
	ft := &fakeTransport{body: []byte(`{"status":"OK","result":[]}`)}
	c := New(testCreds, WithTransport(ft))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Do(context.Background(), &commands.UserRating{Handle: "thud"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, ft.urls, 16)
}
