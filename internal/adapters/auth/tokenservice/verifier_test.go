package tokenservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewVerifier(Config{BaseURL: ts.URL, APIKey: "test-key"})
}

func TestVerify_OK(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/tokens/verify" {
			t.Errorf("request inesperado: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("X-Api-Key = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}

		_ = json.NewEncoder(w).Encode(map[string]string{
			"user_id": "vet-1",
			"email":   "vet@clinic.test",
			"role":    "veterinarian",
		})
	})

	claims, err := v.Verify(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "vet-1" || claims.Role != "veterinarian" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestVerify_Unauthorized(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	if _, err := v.Verify(context.Background(), "bad"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVerify_UpstreamError(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := v.Verify(context.Background(), "tok"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}

func TestVerify_MissingUserID(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"email": "x@y.test"})
	})

	if _, err := v.Verify(context.Background(), "tok"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}

func TestVerify_NotConfigured(t *testing.T) {
	v := NewVerifier(Config{})
	if _, err := v.Verify(context.Background(), "tok"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no debería llegar al servicio con token vacío")
	})

	if _, err := v.Verify(context.Background(), "   "); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
