package identity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sahayakai/sahayak/internal/observe"
)

func testObserver() *observe.Observer {
	return observe.New(io.Discard, observe.Console, false)
}

func newFakeProvider(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/accounts:signInWithPassword", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Password != "correct-horse" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":{"message":"INVALID_PASSWORD"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"localId":"uid-1","displayName":"Asha","email":"`+req.Email+`","idToken":"tok-1","refreshToken":"ref-1"}`)
	})

	mux.HandleFunc("/accounts:signUp", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"localId":"uid-2","email":"new@example.com","idToken":"tok-2","refreshToken":"ref-2"}`)
	})

	mux.HandleFunc("/accounts:sendOobCode", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "PASSWORD_RESET") {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":{"message":"INVALID_REQ_TYPE"}}`)
			return
		}
		_, _ = io.WriteString(w, `{}`)
	})

	mux.HandleFunc("/accounts:lookup", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "tok-1") {
			_, _ = io.WriteString(w, `{"users":[{"localId":"uid-1","displayName":"Asha","email":"asha@example.com"}]}`)
			return
		}
		_, _ = io.WriteString(w, `{"users":[]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSignIn(t *testing.T) {
	srv := newFakeProvider(t)
	c := NewClientWithBaseURL("test-key", srv.URL, testObserver())

	t.Run("Success", func(t *testing.T) {
		sess, err := c.SignIn(context.Background(), "asha@example.com", "correct-horse")
		if err != nil {
			t.Fatalf("SignIn failed: %v", err)
		}
		if sess.Profile.UID != "uid-1" || sess.Profile.DisplayName != "Asha" {
			t.Errorf("unexpected profile: %+v", sess.Profile)
		}
		if sess.IDToken != "tok-1" {
			t.Errorf("unexpected token: %q", sess.IDToken)
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := c.SignIn(context.Background(), "asha@example.com", "nope")
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != "INVALID_PASSWORD" {
			t.Errorf("unexpected code: %q", authErr.Code)
		}
	})
}

func TestSignUp(t *testing.T) {
	srv := newFakeProvider(t)
	c := NewClientWithBaseURL("test-key", srv.URL, testObserver())

	sess, err := c.SignUp(context.Background(), "new@example.com", "secret123", "Ravi")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if sess.Profile.UID != "uid-2" || sess.Profile.DisplayName != "Ravi" {
		t.Errorf("unexpected profile: %+v", sess.Profile)
	}
	if sess.Profile.Role != "teacher" {
		t.Errorf("expected default role, got %q", sess.Profile.Role)
	}
}

func TestSendPasswordReset(t *testing.T) {
	srv := newFakeProvider(t)
	c := NewClientWithBaseURL("test-key", srv.URL, testObserver())

	if err := c.SendPasswordReset(context.Background(), "asha@example.com"); err != nil {
		t.Fatalf("SendPasswordReset failed: %v", err)
	}
}

func TestLookup(t *testing.T) {
	srv := newFakeProvider(t)
	c := NewClientWithBaseURL("test-key", srv.URL, testObserver())

	t.Run("Known Token", func(t *testing.T) {
		p, err := c.Lookup(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if p.Email != "asha@example.com" {
			t.Errorf("unexpected email: %q", p.Email)
		}
	})

	t.Run("Unknown Token", func(t *testing.T) {
		_, err := c.Lookup(context.Background(), "stale")
		var authErr *AuthError
		if !errors.As(err, &authErr) || authErr.Code != "USER_NOT_FOUND" {
			t.Errorf("expected USER_NOT_FOUND, got %v", err)
		}
	})
}

func TestUnreachableProvider(t *testing.T) {
	c := NewClientWithBaseURL("test-key", "http://127.0.0.1:1", testObserver())
	if _, err := c.SignIn(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatal("expected error for unreachable provider")
	}
}
