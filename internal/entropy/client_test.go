package entropy

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// qrngHandler serves the QRNG JSON shape for tests.
func qrngHandler(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "uint8", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func TestClientFetchBytes(t *testing.T) {
	t.Run("success returns exact bytes", func(t *testing.T) {
		srv := httptest.NewServer(qrngHandler(t, `{"success":true,"data":[0,17,255,3]}`))
		defer srv.Close()

		client := NewClient(srv.URL, 0)
		got, err := client.FetchBytes(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 17, 255, 3}, got)
	})

	t.Run("length parameter matches request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "8", r.URL.Query().Get("length"))
			fmt.Fprint(w, `{"success":true,"data":[1,2,3,4,5,6,7,8]}`)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 0)
		got, err := client.FetchBytes(context.Background(), 8)
		require.NoError(t, err)
		assert.Len(t, got, 8)
	})

	t.Run("reported failure is an error", func(t *testing.T) {
		srv := httptest.NewServer(qrngHandler(t, `{"success":false,"data":[]}`))
		defer srv.Close()

		client := NewClient(srv.URL, 0)
		_, err := client.FetchBytes(context.Background(), 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reported failure")
	})

	t.Run("length mismatch is an error", func(t *testing.T) {
		srv := httptest.NewServer(qrngHandler(t, `{"success":true,"data":[1,2]}`))
		defer srv.Close()

		client := NewClient(srv.URL, 0)
		_, err := client.FetchBytes(context.Background(), 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want 4")
	})

	t.Run("value outside byte range is an error", func(t *testing.T) {
		srv := httptest.NewServer(qrngHandler(t, `{"success":true,"data":[1,300]}`))
		defer srv.Close()

		client := NewClient(srv.URL, 0)
		_, err := client.FetchBytes(context.Background(), 2)
		require.Error(t, err)
	})

	t.Run("http error status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "busy", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 0)
		_, err := client.FetchBytes(context.Background(), 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(qrngHandler(t, `not json`))
		defer srv.Close()

		client := NewClient(srv.URL, 0)
		_, err := client.FetchBytes(context.Background(), 4)
		require.Error(t, err)
	})

	t.Run("non-positive count is rejected", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:0", 0)
		_, err := client.FetchBytes(context.Background(), 0)
		require.Error(t, err)
	})
}
