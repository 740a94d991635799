package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"SantaChat/middleware"
	"SantaChat/models"
)

func TestRegisterAndLogin(t *testing.T) {
	r, db := setupRouter(t, happyGenerator())

	w := doJSON(r, http.MethodPost, "/register", "", map[string]any{
		"username": "mum", "password": "santa123", "confirm_password": "santa123", "is_parent": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("parent register failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/register", "", map[string]any{
		"username": "kiddo", "password": "santa123", "confirm_password": "santa123", "parent_username": "mum",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("child register failed: %d %s", w.Code, w.Body.String())
	}

	var child models.User
	if err := db.Where("username = ?", "kiddo").First(&child).Error; err != nil {
		t.Fatalf("child row missing: %v", err)
	}
	if child.ParentID == nil {
		t.Fatalf("child must be linked to its parent")
	}
	var parent models.User
	if err := db.Where("username = ?", "mum").First(&parent).Error; err != nil {
		t.Fatalf("parent row missing: %v", err)
	}
	if *child.ParentID != parent.ID {
		t.Fatalf("child linked to wrong parent: %d != %d", *child.ParentID, parent.ID)
	}

	if token := loginToken(t, r, "kiddo"); token == "" {
		t.Fatalf("expected a token from login")
	}
}

func TestRegisterValidation(t *testing.T) {
	r, db := setupRouter(t, happyGenerator())
	createUser(t, db, "taken", false, nil)
	createUser(t, db, "kiddo", false, nil) // not a parent

	cases := []struct {
		name string
		body map[string]any
		want int
	}{
		{"missing password", map[string]any{"username": "x"}, http.StatusBadRequest},
		{"mismatched confirm", map[string]any{"username": "x", "password": "santa123", "confirm_password": "other123"}, http.StatusBadRequest},
		{"no digit", map[string]any{"username": "x", "password": "santaaaa", "confirm_password": "santaaaa"}, http.StatusBadRequest},
		{"duplicate username", map[string]any{"username": "taken", "password": "santa123", "confirm_password": "santa123"}, http.StatusConflict},
		{"unknown parent", map[string]any{"username": "x", "password": "santa123", "confirm_password": "santa123", "parent_username": "ghost"}, http.StatusBadRequest},
		{"parent not a parent", map[string]any{"username": "x", "password": "santa123", "confirm_password": "santa123", "parent_username": "kiddo"}, http.StatusBadRequest},
		{"parent naming a parent", map[string]any{"username": "x", "password": "santa123", "confirm_password": "santa123", "is_parent": true, "parent_username": "taken"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		if w := doJSON(r, http.MethodPost, "/register", "", tc.body); w.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d: %s", tc.name, tc.want, w.Code, w.Body.String())
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, db := setupRouter(t, happyGenerator())
	createUser(t, db, "noel", false, nil)

	w := doJSON(r, http.MethodPost, "/login", "", map[string]string{"username": "noel", "password": "wrong123"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}
	w = doJSON(r, http.MethodPost, "/login", "", map[string]string{"username": "ghost", "password": "santa123"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}
}

func TestSessionCookieAuth(t *testing.T) {
	r, db := setupRouter(t, happyGenerator())
	createUser(t, db, "noel", false, nil)
	token := loginToken(t, r, "noel")

	req := httptest.NewRequest(http.MethodGet, "/api/chats", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("session cookie must authenticate, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	r, db := setupRouter(t, happyGenerator())
	createUser(t, db, "noel", false, nil)
	token := loginToken(t, r, "noel")

	if w := doJSON(r, http.MethodGet, "/api/chats", token, nil); w.Code != http.StatusOK {
		t.Fatalf("token should work before logout, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/logout", token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/chats", token, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token must be rejected, got %d", w.Code)
	}
}
