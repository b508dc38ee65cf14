package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rainesports/site-api/internal/domain/session"
	"github.com/rainesports/site-api/internal/usecase"
)

type staticVerifier struct {
	token string
	sess  session.Session
}

func (v staticVerifier) Verify(_ context.Context, token string) (session.Session, error) {
	if token != v.token {
		return session.Session{}, fmt.Errorf("%w: invalid or expired session", usecase.ErrUnauthorized)
	}
	return v.sess, nil
}

func TestRequireAdmin_MissingHeader(t *testing.T) {
	handler := RequireAdmin(staticVerifier{token: "tok"}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run without credentials")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/announcements", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdmin_MalformedHeader(t *testing.T) {
	handler := RequireAdmin(staticVerifier{token: "tok"}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run with a malformed header")
	}))

	for _, header := range []string{"tok", "Basic tok", "Bearer "} {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/announcements", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status %d, want %d", header, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	handler := RequireAdmin(staticVerifier{token: "tok"}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/announcements", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdmin_ValidTokenAttachesSession(t *testing.T) {
	want := session.Session{ID: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	var got session.Session
	var ok bool

	handler := RequireAdmin(staticVerifier{token: "tok", sess: want}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = sessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/announcements", nil)
	req.Header.Set("Authorization", "bearer tok")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want %d", rec.Code, http.StatusOK)
	}
	if !ok || got.ID != "tok" {
		t.Fatalf("session not propagated: ok=%v got=%+v", ok, got)
	}
}
