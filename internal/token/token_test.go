package token

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(payload string) string {
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	id, err := Decode(encode(`{"integrationId":"abcd1234"}`))
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", id)
}

func TestDecodeIgnoresExtraFields(t *testing.T) {
	t.Parallel()

	id, err := Decode(encode(`{"integrationId":"abcd1234","secret":"s3cr3t","iat":1681000000}`))
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", id)
}

func TestDecodeFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "not base64", token: "%%%not-base64%%%"},
		{name: "not JSON", token: encode("just some text")},
		{name: "JSON scalar", token: encode(`"abcd1234"`)},
		{name: "missing integrationId", token: encode(`{"secret":"s3cr3t"}`)},
		{name: "empty integrationId", token: encode(`{"integrationId":""}`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Decode(tc.token)
			assert.Error(t, err)
			assert.Empty(t, id)
		})
	}
}
