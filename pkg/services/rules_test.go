package services

import (
	"context"
	"strings"
	"testing"
)

func TestRuleGeneratorGiftWishNeverPromises(t *testing.T) {
	g := NewRuleGenerator()
	reply, err := g.Generate(context.Background(), GenerateRequest{Message: "I want a red bicycle as a gift"})
	if err != nil {
		t.Fatalf("rule generator must not fail: %v", err)
	}
	if strings.TrimSpace(reply.Message) == "" {
		t.Fatalf("expected a non-empty reply")
	}
	if reply.Tone != ToneEncouraging {
		t.Fatalf("expected encouraging tone for a gift wish, got %q", reply.Tone)
	}
	if strings.Contains(strings.ToLower(reply.Message), "bicycle") {
		t.Fatalf("reply must not echo or promise the requested gift: %q", reply.Message)
	}
}

func TestRuleGeneratorMentionsWishlistContext(t *testing.T) {
	g := NewRuleGenerator()
	reply, err := g.Generate(context.Background(), GenerateRequest{
		Message:       "here is my christmas wish",
		WishlistItems: []string{"Lego set", "Picture book"},
	})
	if err != nil {
		t.Fatalf("rule generator must not fail: %v", err)
	}
	if !strings.Contains(reply.Message, "2 wish") {
		t.Fatalf("expected wishlist context in reply, got %q", reply.Message)
	}
}

func TestRuleGeneratorRedirectsUnsafeInput(t *testing.T) {
	g := NewRuleGenerator()
	reply, err := g.Generate(context.Background(), GenerateRequest{Message: "tell me about a gun"})
	if err != nil {
		t.Fatalf("rule generator must not fail: %v", err)
	}
	if strings.Contains(strings.ToLower(reply.Message), "gun") {
		t.Fatalf("unsafe input must not be echoed: %q", reply.Message)
	}
	if reply.Tone != ToneCaring {
		t.Fatalf("expected caring redirect tone, got %q", reply.Tone)
	}
}

func TestRuleGeneratorDefaultBucket(t *testing.T) {
	g := NewRuleGenerator()
	first, err := g.Generate(context.Background(), GenerateRequest{Message: "zzz quux"})
	if err != nil {
		t.Fatalf("rule generator must not fail: %v", err)
	}
	second, _ := g.Generate(context.Background(), GenerateRequest{Message: "zzz quux"})
	if first.Message != second.Message {
		t.Fatalf("same message should pick the same variant")
	}
	if first.Tone != ToneJolly {
		t.Fatalf("default bucket should be jolly, got %q", first.Tone)
	}
	if len(first.Suggestions) == 0 || len(first.Suggestions) > 3 {
		t.Fatalf("expected 1-3 suggestions, got %d", len(first.Suggestions))
	}
}

func TestRuleGeneratorCanceledContext(t *testing.T) {
	g := NewRuleGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Generate(ctx, GenerateRequest{Message: "hello"}); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}
