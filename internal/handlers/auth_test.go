package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog_api/internal/service"
)

func TestLoginHandler(t *testing.T) {
	cases := []struct {
		name       string
		user, pass string
		basic      bool
		genErr     error
		wantCode   int
	}{
		{name: "success", user: "alice", pass: "pw1", basic: true, wantCode: http.StatusOK},
		{name: "no basic auth", wantCode: http.StatusUnauthorized},
		{name: "empty password", user: "alice", pass: "", basic: true, wantCode: http.StatusUnauthorized},
		{name: "bad credentials", user: "alice", pass: "nope", basic: true, genErr: service.ErrInvalidPassword, wantCode: http.StatusUnauthorized},
		{name: "store failure", user: "alice", pass: "pw1", basic: true, genErr: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := newTestAuth()
			auth.genTokenToken = "tok123"
			auth.genTokenErr = tc.genErr
			r := newTestRouter(&service.Service{Authorization: auth}, Config{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/login", nil)
			if tc.basic {
				req.SetBasicAuth(tc.user, tc.pass)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			switch tc.wantCode {
			case http.StatusOK:
				if got := decodeBody(t, w)["token"]; got != "tok123" {
					t.Fatalf("expected token tok123, got %v", got)
				}
				if auth.lastGenUsername != "alice" || auth.lastGenPassword != "pw1" {
					t.Fatalf("credentials not forwarded: %q/%q", auth.lastGenUsername, auth.lastGenPassword)
				}
			case http.StatusUnauthorized:
				if w.Body.String() != msgCouldNotAuth {
					t.Fatalf("expected %q, got %q", msgCouldNotAuth, w.Body.String())
				}
				if got := w.Header().Get("WWW-Authenticate"); got != basicRealm {
					t.Fatalf("WWW-Authenticate=%q", got)
				}
			}
		})
	}
}

func TestIndexAndHealth(t *testing.T) {
	r := newTestRouter(&service.Service{}, Config{})

	w := doRequest(t, r, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK || decodeBody(t, w)["msg"] != msgWelcome {
		t.Fatalf("index: %d %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK || decodeBody(t, w)["status"] != statusOK {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
}
