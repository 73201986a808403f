package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"octofit/internal/record"
	"octofit/internal/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDef(t *testing.T, name string) resource.Definition {
	t.Helper()
	d, ok := resource.Lookup(name)
	require.True(t, ok)
	return d
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchCollection_RequestShape(t *testing.T) {
	var gotPath, gotAccept, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	_, err := c.FetchCollection(context.Background(), mustDef(t, "leaderboard"))
	require.NoError(t, err)

	assert.Equal(t, "/api/leaderboard/", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Len(t, gotRequestID, 36)
	assert.Equal(t, srv.URL, c.BaseURL())
	assert.Equal(t, srv.URL+"/api/leaderboard/", c.Endpoint(mustDef(t, "leaderboard")))
}

func TestFetchCollection_BareArrayAndEnvelopeAgree(t *testing.T) {
	items := `[{"id":1,"name":"Run"},{"id":2,"name":"Swim"}]`
	bare := serve(t, http.StatusOK, items)
	wrapped := serve(t, http.StatusOK, `{"results":`+items+`}`)

	def := mustDef(t, "activities")
	a, err := NewClient(bare.URL).FetchCollection(context.Background(), def)
	require.NoError(t, err)
	b, err := NewClient(wrapped.URL).FetchCollection(context.Background(), def)
	require.NoError(t, err)

	require.Len(t, a, 2)
	require.Len(t, b, 2)
	assert.Equal(t, record.DeriveColumns(a), record.DeriveColumns(b))
	for i := range a {
		assert.Equal(t, a[i].Pretty(), b[i].Pretty())
	}
}

func TestFetchCollection_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{"html body", http.StatusOK, "<html>oops</html>", KindDecode},
		{"scalar body", http.StatusOK, `"hello"`, KindShape},
		{"results not array", http.StatusOK, `{"results":"x"}`, KindShape},
		{"server error", http.StatusInternalServerError, `{"detail":"boom"}`, KindStatus},
		{"not found", http.StatusNotFound, `{"detail":"Not found."}`, KindStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)
			_, err := NewClient(srv.URL).FetchCollection(context.Background(), mustDef(t, "teams"))
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "teams", fe.Resource)
			assert.NotEmpty(t, fe.RequestID)
		})
	}
}

func TestFetchCollection_NetworkError(t *testing.T) {
	srv := serve(t, http.StatusOK, `[]`)
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).FetchCollection(context.Background(), mustDef(t, "users"))
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestFetchCollection_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.FetchCollection(context.Background(), mustDef(t, "workouts"))
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFetchCollection_CancelledContext(t *testing.T) {
	srv := serve(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).FetchCollection(ctx, mustDef(t, "users"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetchCollection_RateLimiter(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithRateLimiter(1000))
	for i := 0; i < 3; i++ {
		_, err := c.FetchCollection(context.Background(), mustDef(t, "teams"))
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetchError_Message(t *testing.T) {
	err := &FetchError{Resource: "teams", Kind: KindStatus, StatusCode: 503, Err: errors.New("unavailable")}
	assert.Equal(t, "fetch teams: unexpected status 503: unavailable", err.Error())

	err = &FetchError{Resource: "teams", Kind: KindDecode, Err: record.ErrNotJSON}
	assert.Equal(t, "fetch teams: decode: response body is not valid JSON", err.Error())
	assert.True(t, errors.Is(err, record.ErrNotJSON))

	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}
