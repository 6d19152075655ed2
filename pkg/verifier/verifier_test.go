package verifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thud/codeforces-api-go/pkg/params"
	"github.com/thud/codeforces-api-go/pkg/signer"
)

const (
	testKey    = "7dd1c6a92bf0a6cb22b0e9fa9c08d1dac4948023"
	testSecret = "acc9a26087164935d62610ed693c063463e123c2"
)

func signedQuery(t *testing.T, method string, m params.Map) string {
	t.Helper()
	s := signer.NewDefaultSigner(
		signer.WithClock(signer.FixedClock(1234567890)),
		signer.WithNonceSource(signer.FixedNonceSource("123456")),
	)
	signed, err := s.Sign(method, m, signer.Credentials{Key: testKey, Secret: testSecret})
	require.NoError(t, err)
	return signed.Query()
}

func TestVerifyQuery_ValidSignature(t *testing.T) {
	m := params.Map{}
	m.SetInt("blogEntryId", 82347)

	query := signedQuery(t, "blogEntry.view", m)
	assert.NoError(t, VerifyQuery("blogEntry.view", query, testSecret))
}

func TestVerifyQuery_EncodedValuesSurviveVerification(t *testing.T) {
	m := params.Map{}
	m.SetList("handles", []string{"thud", "tourist"})
	m.Set("problemsetName", "acm sguru")

	query := signedQuery(t, "problemset.problems", m)
	assert.NoError(t, VerifyQuery("problemset.problems", query, testSecret))
}

func TestVerifyQuery_WrongSecret(t *testing.T) {
	m := params.Map{}
	m.SetInt("blogEntryId", 82347)

	query := signedQuery(t, "blogEntry.view", m)
	err := VerifyQuery("blogEntry.view", query, "not-the-secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature mismatch")
}

func TestVerifyQuery_WrongMethod(t *testing.T) {
	m := params.Map{}
	m.SetInt("blogEntryId", 82347)

	query := signedQuery(t, "blogEntry.view", m)
	assert.Error(t, VerifyQuery("blogEntry.comments", query, testSecret))
}

func TestVerifyQuery_TamperedParameter(t *testing.T) {
	m := params.Map{}
	m.SetInt("blogEntryId", 82347)

	query := signedQuery(t, "blogEntry.view", m)
	tampered := strings.Replace(query, "82347", "82348", 1)
	assert.Error(t, VerifyQuery("blogEntry.view", tampered, testSecret))
}

func TestVerifyQuery_RepeatedParameters(t *testing.T) {
	m := params.Map{}
	m.SetInt("blogEntryId", 82347)
	query := signedQuery(t, "blogEntry.view", m)

	tests := []struct {
		name  string
		query string
	}{
		{"repeated value parameter", query + "&blogEntryId=82348"},
		{"repeated signature", query + "&" + signer.SigParam + "=" + strings.Repeat("0", 134)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyQuery("blogEntry.view", tt.query, testSecret)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "repeated parameter")
		})
	}
}

func TestVerifyQuery_MissingAuthParams(t *testing.T) {
	assert.Error(t, VerifyQuery("user.friends", "onlyOnline=true", testSecret))
	assert.Error(t, VerifyQuery("user.friends", "apiKey=k&time=1", testSecret))
}
