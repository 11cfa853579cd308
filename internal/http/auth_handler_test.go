package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func doJSON(env *testEnv, method, path string, payload any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	return resp
}

func registerAlice(t *testing.T, env *testEnv) {
	t.Helper()
	resp := doJSON(env, http.MethodPost, "/api/auth/register", jsonBody{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "p1",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

type jsonBody = map[string]any

func sessionCookie(resp *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == TokenCookieName {
			return cookie
		}
	}
	return nil
}

func TestRegisterThenLogin(t *testing.T) {
	env := newTestEnv()
	registerAlice(t, env)

	resp := doJSON(env, http.MethodPost, "/api/auth/login", jsonBody{
		"username": "alice",
		"password": "p1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	cookie := sessionCookie(resp)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("expected session cookie")
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HTTP-only")
	}

	userID, err := env.tokens.Verify(cookie.Value)
	if err != nil {
		t.Fatalf("cookie token does not verify: %v", err)
	}
	if _, ok := env.userRepo.usersByID[userID]; !ok {
		t.Fatalf("token user id %q not in store", userID)
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["username"] != "alice" {
		t.Fatalf("expected user payload, got %v", body)
	}
	if _, leaked := body["password"]; leaked {
		t.Fatalf("password leaked in login response")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv()
	registerAlice(t, env)

	wrongPw := doJSON(env, http.MethodPost, "/api/auth/login", jsonBody{
		"username": "alice",
		"password": "wrong",
	})
	noUser := doJSON(env, http.MethodPost, "/api/auth/login", jsonBody{
		"username": "nobody",
		"password": "p1",
	})

	if wrongPw.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPw.Code, noUser.Code)
	}
	if wrongPw.Body.String() != noUser.Body.String() {
		t.Fatalf("error bodies differ: %s vs %s", wrongPw.Body.String(), noUser.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(wrongPw.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Invalid Credentials" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv()
	registerAlice(t, env)

	resp := doJSON(env, http.MethodPost, "/api/auth/register", jsonBody{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "p2",
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	env := newTestEnv()

	// Sin sesión previa: sigue siendo 200 y limpia el cookie.
	resp := doJSON(env, http.MethodPost, "/api/auth/logout", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	cookie := sessionCookie(resp)
	if cookie == nil {
		t.Fatalf("expected clearing cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("expected SameSite=Strict on clear, got %v", cookie.SameSite)
	}
}

func TestRegisterDoesNotLogin(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(env, http.MethodPost, "/api/auth/register", jsonBody{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "p1",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if sessionCookie(resp) != nil {
		t.Fatalf("register must not set a session cookie")
	}
}
