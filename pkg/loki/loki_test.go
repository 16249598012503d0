package loki

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_InvalidConfig_ReturnsError(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.Error(t, err)

	_, err = New(Config{URL: "not a url"}, nil)
	assert.Error(t, err)
}

func Test_New_AppliesDefaults(t *testing.T) {
	pusher, err := New(Config{URL: "http://localhost:3100/loki/api/v1/push"}, nil)
	require.NoError(t, err)
	defer pusher.Stop()

	assert.Equal(t, 1000, pusher.config.BatchMaxSize)
	assert.Equal(t, 5*time.Second, pusher.config.BatchMaxWait)
	assert.Equal(t, map[string]string{}, pusher.config.Labels)
}

func Test_Pusher_FullBatch_IsSentCompressed(t *testing.T) {
	var (
		mu       sync.Mutex
		received []pushRequest
		headers  http.Header
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pushRequest
		gz, err := gzip.NewReader(r.Body)
		if err == nil {
			err = json.NewDecoder(gz).Decode(&req)
		}
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		mu.Lock()
		received = append(received, req)
		headers = r.Header.Clone()
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	pusher, err := New(Config{
		URL:          server.URL,
		BatchMaxSize: 2,
		BatchMaxWait: time.Hour,
		Labels:       map[string]string{"app": "jobfit"},
		TenantID:     "tenant",
	}, func(err error) { t.Errorf("unexpected push error: %v", err) })
	require.NoError(t, err)

	require.NoError(t, pusher.Push(Entry{Level: "error", Message: "first", Fields: map[string]any{"error_type": "db"}}))
	require.NoError(t, pusher.Push(Entry{Level: "info", Message: "second"}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 1
	}, 2*time.Second, 10*time.Millisecond)

	pusher.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, map[string]string{"app": "jobfit"}, received[0].Streams[0].Stream)
	require.Len(t, received[0].Streams[0].Values, 2)
	assert.JSONEq(t, `{"level":"error","msg":"first","fields":{"error_type":"db"}}`, received[0].Streams[0].Values[0][1])
	assert.Equal(t, "gzip", headers.Get("Content-Encoding"))
	assert.Equal(t, "tenant", headers.Get("X-Scope-OrgID"))
}

func Test_Pusher_Stop_FlushesPendingEntries(t *testing.T) {
	calls := make(chan int, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gz, _ := gzip.NewReader(r.Body)
		var req pushRequest
		_ = json.NewDecoder(gz).Decode(&req)
		calls <- len(req.Streams[0].Values)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	pusher, err := New(Config{URL: server.URL, BatchMaxSize: 10, BatchMaxWait: time.Hour}, nil)
	require.NoError(t, err)

	require.NoError(t, pusher.Push(Entry{Level: "info", Message: "pending"}))
	pusher.Stop()

	assert.Equal(t, 1, <-calls)
	assert.ErrorIs(t, pusher.Push(Entry{Message: "late"}), ErrStopped)
}

func Test_Pusher_ServerError_IsReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	errs := make(chan error, 1)
	pusher, err := New(Config{URL: server.URL, BatchMaxSize: 1, BatchMaxWait: time.Hour}, func(err error) { errs <- err })
	require.NoError(t, err)
	defer pusher.Stop()

	require.NoError(t, pusher.Push(Entry{Level: "info", Message: "boom"}))

	select {
	case err := <-errs:
		assert.Contains(t, err.Error(), "500")
	case <-time.After(2 * time.Second):
		t.Fatal("push error was not reported")
	}
}
