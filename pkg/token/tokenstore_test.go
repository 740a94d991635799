package tokenstore

import (
	"testing"
	"time"
)

func TestMemoryStoreRevoke(t *testing.T) {
	s := NewMemoryStore(16)
	if s.IsRevoked("jti-1") {
		t.Fatalf("expected fresh jti to not be revoked")
	}
	s.Revoke("jti-1", time.Minute)
	if !s.IsRevoked("jti-1") {
		t.Fatalf("expected jti-1 to be revoked")
	}
	if s.IsRevoked("jti-2") {
		t.Fatalf("expected unrelated jti to not be revoked")
	}
}

func TestPackageLevelStore(t *testing.T) {
	prev := store
	defer Use(prev)

	Use(NewMemoryStore(16))
	if IsRevoked("") {
		t.Fatalf("empty jti must never read as revoked")
	}
	RevokeToken("", time.Minute)
	RevokeToken("jti-3", time.Minute)
	if !IsRevoked("jti-3") {
		t.Fatalf("expected jti-3 revoked via package helpers")
	}
}
