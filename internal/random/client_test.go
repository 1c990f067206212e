package random

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFloatSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "0.42\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.Float(context.Background())
	if err != nil {
		t.Fatalf("Float failed: %v", err)
	}
	if got != 0.42 {
		t.Fatalf("Float = %v, want 0.42", got)
	}
}

func TestFloatTrimsWhitespace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "  0.07\n\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.Float(context.Background())
	if err != nil {
		t.Fatalf("Float failed: %v", err)
	}
	if got != 0.07 {
		t.Fatalf("Float = %v, want 0.07", got)
	}
}

func TestFloatInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "you have exceeded your quota")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Float(context.Background()); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("Float on garbage body error = %v, want ErrInvalidResponse", err)
	}
}

func TestFloatServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Float(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Float on 503 error = %v, want ErrUnavailable", err)
	}
}

func TestFloatTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, "0.50")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond)
	if _, err := c.Float(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Float past timeout error = %v, want ErrUnavailable", err)
	}
}

func TestFloatConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	if _, err := c.Float(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Float against closed server error = %v, want ErrUnavailable", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	if c.url != DefaultURL {
		t.Errorf("empty url should fall back to DefaultURL, got %q", c.url)
	}
	if c.http.Timeout != DefaultTimeout {
		t.Errorf("zero timeout should fall back to DefaultTimeout, got %v", c.http.Timeout)
	}
}
