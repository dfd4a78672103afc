package breach

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientLookupRange(t *testing.T) {
	t.Parallel()

	t.Run("queries the range path with padding", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotPadding string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotPadding = r.Header.Get("Add-Padding")
			fmt.Fprintf(w, "%s:42\n", passwordSuffix)
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		bucket, err := client.LookupRange(context.Background(), passwordPrefix)
		if err != nil {
			t.Fatalf("LookupRange() error = %v", err)
		}
		if gotPath != "/range/"+passwordPrefix {
			t.Errorf("request path = %q, want %q", gotPath, "/range/"+passwordPrefix)
		}
		if gotPadding != "true" {
			t.Errorf("Add-Padding = %q, want %q", gotPadding, "true")
		}
		if bucket[passwordSuffix] != 42 {
			t.Errorf("bucket = %v, want count 42 for suffix", bucket)
		}
	})

	t.Run("lowercase prefix is uppercased on the wire", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		if _, err := client.LookupRange(context.Background(), "5baa6"); err != nil {
			t.Fatalf("LookupRange() error = %v", err)
		}
		if gotPath != "/range/5BAA6" {
			t.Errorf("request path = %q, want %q", gotPath, "/range/5BAA6")
		}
	})

	t.Run("padding can be disabled", func(t *testing.T) {
		t.Parallel()

		var gotPadding string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPadding = r.Header.Get("Add-Padding")
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL), WithPadding(false))
		if _, err := client.LookupRange(context.Background(), passwordPrefix); err != nil {
			t.Fatalf("LookupRange() error = %v", err)
		}
		if gotPadding != "" {
			t.Errorf("Add-Padding = %q, want unset", gotPadding)
		}
	})

	t.Run("non-200 status maps to ErrOracleUnavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		if _, err := client.LookupRange(context.Background(), passwordPrefix); !errors.Is(err, ErrOracleUnavailable) {
			t.Errorf("LookupRange() error = %v, want ErrOracleUnavailable", err)
		}
	})

	t.Run("unreachable endpoint maps to ErrOracleUnavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(WithBaseURL(server.URL))
		if _, err := client.LookupRange(context.Background(), passwordPrefix); !errors.Is(err, ErrOracleUnavailable) {
			t.Errorf("LookupRange() error = %v, want ErrOracleUnavailable", err)
		}
	})

	t.Run("malformed body maps to ErrOracleUnavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, "not a range response")
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		if _, err := client.LookupRange(context.Background(), passwordPrefix); !errors.Is(err, ErrOracleUnavailable) {
			t.Errorf("LookupRange() error = %v, want ErrOracleUnavailable", err)
		}
	})

	t.Run("retry recovers from a transient failure", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts == 1 {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
			fmt.Fprintf(w, "%s:42\n", passwordSuffix)
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL), WithRetry(true))
		bucket, err := client.LookupRange(context.Background(), passwordPrefix)
		if err != nil {
			t.Fatalf("LookupRange() error = %v", err)
		}
		if attempts != 2 {
			t.Errorf("attempts = %d, want 2", attempts)
		}
		if bucket[passwordSuffix] != 42 {
			t.Errorf("bucket = %v, want count 42 for suffix", bucket)
		}
	})

	t.Run("no retry by default", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		if _, err := client.LookupRange(context.Background(), passwordPrefix); !errors.Is(err, ErrOracleUnavailable) {
			t.Errorf("LookupRange() error = %v, want ErrOracleUnavailable", err)
		}
		if attempts != 1 {
			t.Errorf("attempts = %d, want 1", attempts)
		}
	})

	t.Run("invalid prefix is rejected before any request", func(t *testing.T) {
		t.Parallel()

		requested := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested = true
		}))
		defer server.Close()

		client := NewClient(WithBaseURL(server.URL))
		if _, err := client.LookupRange(context.Background(), "nope"); !errors.Is(err, ErrInvalidPrefix) {
			t.Errorf("LookupRange() error = %v, want ErrInvalidPrefix", err)
		}
		if requested {
			t.Error("request was sent despite invalid prefix")
		}
	})
}
