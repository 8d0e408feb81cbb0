package gazetteer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/東京都/master.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name":"東京都","cities":[{"name":"千代田区"},{"name":"港区","coordinate":{"latitude":35.658,"longitude":139.751}}]}`))
		case "/東京都/港区.json":
			w.Write([]byte(`{"name":"港区","towns":[{"name":"芝公園四丁目","coordinate":{"latitude":35.6585,"longitude":139.7454}}]}`))
		case "/東京都/新宿区.json":
			w.Write([]byte(`{"name":`))
		case "/東京都/中央区.json":
			w.Write([]byte(`{"name":"中央区","towns":[]}`))
		case "/大阪府/master.json":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClient_ListCities(t *testing.T) {
	srv := newTestServer(t)
	client := NewHTTPClient(srv.URL+"/", time.Second, time.Millisecond)

	cities, err := client.ListCities(context.Background(), "東京都")
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "千代田区", cities[0].Name)
	assert.Nil(t, cities[0].Coordinate)
	require.NotNil(t, cities[1].Coordinate)
	assert.InDelta(t, 139.751, cities[1].Coordinate.Longitude, 1e-9)
}

func TestHTTPClient_ListTowns(t *testing.T) {
	srv := newTestServer(t)
	client := NewHTTPClient(srv.URL, time.Second, time.Millisecond)

	towns, err := client.ListTowns(context.Background(), "東京都", "港区")
	require.NoError(t, err)
	require.Len(t, towns, 1)
	assert.Equal(t, "芝公園四丁目", towns[0].Name)
}

func TestHTTPClient_Errors(t *testing.T) {
	srv := newTestServer(t)
	client := NewHTTPClient(srv.URL, time.Second, time.Millisecond)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		kind ErrorKind
	}{
		{
			name: "missing prefecture",
			call: func() error { _, err := client.ListCities(ctx, "北海道"); return err },
			kind: ErrorNotFound,
		},
		{
			name: "server error",
			call: func() error { _, err := client.ListCities(ctx, "大阪府"); return err },
			kind: ErrorFetch,
		},
		{
			name: "malformed body",
			call: func() error { _, err := client.ListTowns(ctx, "東京都", "新宿区"); return err },
			kind: ErrorDeserialize,
		},
		{
			name: "empty town list",
			call: func() error { _, err := client.ListTowns(ctx, "東京都", "中央区"); return err },
			kind: ErrorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindOf(tt.call())
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestHTTPClient_Unreachable(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	client := NewHTTPClient(url, time.Second, time.Millisecond)
	_, err := client.ListCities(context.Background(), "東京都")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, ErrorFetch, kind)
}

func TestHTTPClient_CanceledContext(t *testing.T) {
	srv := newTestServer(t)
	client := NewHTTPClient(srv.URL, time.Second, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListCities(ctx, "東京都")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, ErrorFetch, kind)
	assert.ErrorIs(t, err, context.Canceled)
}
