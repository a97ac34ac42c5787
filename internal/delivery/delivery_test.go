package delivery

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Token       string `json:"token"`
	CatcherType string `json:"catcherType"`
}

func TestDeliverPostsJSON(t *testing.T) {
	t.Parallel()

	var gotMethod, gotContentType, gotUserAgent string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		gotBody, _ = ioutil.ReadAll(r.Body)
	}))
	defer srv.Close()

	ch := New(srv.URL, "hawk-catcher-go/test", nil, 0)
	err := ch.Deliver(context.Background(), testEnvelope{Token: "tkn", CatcherType: "errors/golang"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "hawk-catcher-go/test", gotUserAgent)

	var sent testEnvelope
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	assert.Equal(t, "tkn", sent.Token)
	assert.Equal(t, "errors/golang", sent.CatcherType)
}

func TestDeliverReportsServerFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ch := New(srv.URL, "", nil, 0)
	err := ch.Deliver(context.Background(), testEnvelope{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDeliverReportsTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nobody is listening anymore

	ch := New(srv.URL, "", nil, time.Second)
	err := ch.Deliver(context.Background(), testEnvelope{})
	assert.Error(t, err)
}

func TestDeliverRejectsUnmarshalableEnvelope(t *testing.T) {
	t.Parallel()

	ch := New("http://localhost:0/", "", nil, 0)
	err := ch.Deliver(context.Background(), map[string]interface{}{"bad": func() {}})
	assert.Error(t, err)
}

func TestEndpoint(t *testing.T) {
	t.Parallel()

	ch := New("https://abc.k1.hawk.so/", "", nil, 0)
	assert.Equal(t, "https://abc.k1.hawk.so/", ch.Endpoint())
}
