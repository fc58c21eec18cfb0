package ejournal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchRecords(t *testing.T) {
	var loginIdnp string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /date/login", func(w http.ResponseWriter, r *http.Request) {
		loginIdnp = r.FormValue("idnp")
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc"})
	})
	mux.HandleFunc("GET /date/elev/{idnp}", func(w http.ResponseWriter, r *http.Request) {
		if loginIdnp != r.PathValue("idnp") {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, "<html><body>record</body></html>")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	html, err := client.FetchRecords(context.Background(), "2004000000001")
	require.NoError(t, err)
	require.Equal(t, "2004000000001", loginIdnp)
	require.Contains(t, html, "record")
}

func TestLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	_, err = client.FetchRecords(context.Background(), "2004000000001")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
}

func TestFetchRecordsCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(time.Millisecond * 50)
		cancel()
	}()

	_, err = client.FetchRecords(ctx, "2004000000001")
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSessionCacheReusesClients(t *testing.T) {
	cache := NewSessionCache(ClientOptions{BaseUrl: "https://portal.example"})

	a1, err := cache.Get("2004000000001")
	require.NoError(t, err)
	a2, err := cache.Get("2004000000001")
	require.NoError(t, err)
	b, err := cache.Get("2004000000002")
	require.NoError(t, err)

	require.Same(t, a1, a2)
	require.NotSame(t, a1, b)
}
