package controllers_test

import (
	"encoding/base64"
	"net/http"
	"testing"
)

func TestSpeechSeam(t *testing.T) {
	r, db := setupRouter(t, happyGenerator())
	createUser(t, db, "noel", false, nil)
	token := loginToken(t, r, "noel")

	// no provider configured: the seam answers 501 and the browser keeps
	// doing recognition itself
	audio := base64.StdEncoding.EncodeToString([]byte("pcm-bytes"))
	if w := doJSON(r, http.MethodPost, "/api/speech", token, map[string]string{"audio": audio}); w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501 from the no-op input, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodPost, "/api/speech", token, map[string]string{}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing audio, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/api/speech", token, map[string]string{"audio": "not-base64!!"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid base64, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/api/speech", "", map[string]string{"audio": audio}); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 unauthenticated, got %d", w.Code)
	}
}
