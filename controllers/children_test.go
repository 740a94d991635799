package controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"SantaChat/models"
)

func TestChildrenRequiresParent(t *testing.T) {
	r, db := setupRouter(t, happyGenerator())
	createUser(t, db, "kiddo", false, nil)
	token := loginToken(t, r, "kiddo")

	if w := doJSON(r, http.MethodGet, "/api/children", token, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-parent, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/children", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 unauthenticated, got %d", w.Code)
	}
}

func TestChildrenEmbedsChatsAndWishlist(t *testing.T) {
	r, db := setupRouter(t, happyGenerator())
	parent := createUser(t, db, "mum", true, nil)
	createUser(t, db, "kiddo", false, &parent.ID)
	createUser(t, db, "stranger", false, nil)

	childToken := loginToken(t, r, "kiddo")
	if w := doJSON(r, http.MethodPost, "/api/chat", childToken, map[string]string{"message": "Hi Santa, it's me!"}); w.Code != http.StatusOK {
		t.Fatalf("child chat post failed: %d", w.Code)
	}

	parentToken := loginToken(t, r, "mum")
	w := doJSON(r, http.MethodGet, "/api/children", parentToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var kids []models.User
	if err := json.Unmarshal(w.Body.Bytes(), &kids); err != nil {
		t.Fatalf("failed to decode children: %v", err)
	}
	if len(kids) != 1 {
		t.Fatalf("expected exactly the linked child, got %d", len(kids))
	}
	kid := kids[0]
	if kid.Username != "kiddo" {
		t.Fatalf("unexpected child %q", kid.Username)
	}
	if len(kid.Chats) != 2 {
		t.Fatalf("expected the child's turn (2 messages) embedded, got %d", len(kid.Chats))
	}
	if kid.Chats[0].Message != "Hi Santa, it's me!" || kid.Chats[0].IsFromSanta {
		t.Fatalf("embedded transcript must start with the child's message, got %+v", kid.Chats[0])
	}
	if kid.WishlistItems == nil || len(kid.WishlistItems) != 0 {
		t.Fatalf("expected an empty (non-null) wishlist, got %+v", kid.WishlistItems)
	}

	// password hash must never serialize
	payload := w.Body.String()
	if strings.Contains(payload, "PasswordHash") || strings.Contains(payload, "passwordHash") {
		t.Fatalf("children payload leaks password hashes")
	}
}
