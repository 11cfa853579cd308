package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/PalakRajput2/real-estate/internal/domain"
)

func TestAddPostAssignsOwnerFromSession(t *testing.T) {
	env := newTestEnv()
	cookie := seedSessionUser(t, env, "u1", "alice")

	resp := doJSON(env, http.MethodPost, "/api/posts", jsonBody{
		"postData": jsonBody{
			"title": "Casa centro",
			"price": 120000,
			"city":  "Lima",
			"type":  "buy",
		},
		"postDetail": jsonBody{
			"desc": "Dos pisos, patio",
		},
	}, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var post domain.Post
	if err := json.Unmarshal(resp.Body.Bytes(), &post); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if post.UserID != "u1" {
		t.Fatalf("owner should come from the session, got %q", post.UserID)
	}
	if _, ok := env.postRepo.posts[post.ID]; !ok {
		t.Fatalf("post not persisted")
	}
}

func TestUpdatePostByNonOwner(t *testing.T) {
	env := newTestEnv()
	cookie := seedSessionUser(t, env, "intruder", "mallory")
	env.postRepo.posts["p1"] = domain.Post{ID: "p1", Title: "Original", UserID: "owner"}

	resp := doJSON(env, http.MethodPut, "/api/posts/p1", jsonBody{"title": "Hackeado"}, cookie)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.Code, resp.Body.String())
	}
	if env.postRepo.posts["p1"].Title != "Original" {
		t.Fatalf("record changed after rejected update")
	}
}

func TestDeletePostByNonOwner(t *testing.T) {
	env := newTestEnv()
	cookie := seedSessionUser(t, env, "intruder", "mallory")
	env.postRepo.posts["p1"] = domain.Post{ID: "p1", Title: "Original", UserID: "owner"}

	resp := doJSON(env, http.MethodDelete, "/api/posts/p1", nil, cookie)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Not Authorized!" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
	if _, ok := env.postRepo.posts["p1"]; !ok {
		t.Fatalf("record deleted after rejected delete")
	}
}

func TestUpdatePostMissing(t *testing.T) {
	env := newTestEnv()
	cookie := seedSessionUser(t, env, "u1", "alice")

	resp := doJSON(env, http.MethodPut, "/api/posts/none", jsonBody{"title": "x"}, cookie)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetPostIsSavedFlag(t *testing.T) {
	env := newTestEnv()
	cookie := seedSessionUser(t, env, "u1", "alice")
	env.postRepo.posts["p1"] = domain.Post{ID: "p1", Title: "Depto", UserID: "owner"}
	env.savedRepo.pairs["u1|p1"] = domain.SavedPost{ID: "s1", UserID: "u1", PostID: "p1"}

	withSession := doJSON(env, http.MethodGet, "/api/posts/p1", nil, cookie)
	if withSession.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", withSession.Code)
	}
	var body struct {
		IsSaved bool `json:"isSaved"`
	}
	if err := json.Unmarshal(withSession.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.IsSaved {
		t.Fatalf("expected isSaved=true with session")
	}

	anonymous := doJSON(env, http.MethodGet, "/api/posts/p1", nil)
	if anonymous.Code != http.StatusOK {
		t.Fatalf("expected 200 without session, got %d", anonymous.Code)
	}
	if err := json.Unmarshal(anonymous.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.IsSaved {
		t.Fatalf("expected isSaved=false without session")
	}

	// Cookie inválido degrada a isSaved=false, no es error.
	badCookie := doJSON(env, http.MethodGet, "/api/posts/p1", nil,
		&http.Cookie{Name: TokenCookieName, Value: "garbage"})
	if badCookie.Code != http.StatusOK {
		t.Fatalf("expected 200 with invalid cookie, got %d", badCookie.Code)
	}
	if err := json.Unmarshal(badCookie.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.IsSaved {
		t.Fatalf("expected isSaved=false with invalid cookie")
	}
}

func TestGetPostNotFound(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(env, http.MethodGet, "/api/posts/none", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestAddPostRequiresSession(t *testing.T) {
	env := newTestEnv()

	resp := doJSON(env, http.MethodPost, "/api/posts", jsonBody{
		"postData": jsonBody{"title": "Casa"},
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
