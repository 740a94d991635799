package services

import (
	"testing"
)

func TestNormalizeTone(t *testing.T) {
	cases := map[string]Tone{
		"jolly":       ToneJolly,
		"CARING":      ToneCaring,
		" merry ":     ToneMerry,
		"wise":        ToneWise,
		"playful":     TonePlayful,
		"encouraging": ToneEncouraging,
		"grumpy":      ToneJolly,
		"":            ToneJolly,
	}
	for in, want := range cases {
		if got := NormalizeTone(in); got != want {
			t.Fatalf("NormalizeTone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFallbackReplyDeterministic(t *testing.T) {
	a := FallbackReply("what about my present?")
	b := FallbackReply("what about my present?")
	if a.Message != b.Message {
		t.Fatalf("same input must pick the same filler")
	}
	if a.Tone != ToneJolly {
		t.Fatalf("fallback tone must be jolly, got %q", a.Tone)
	}

	found := false
	for _, f := range FallbackReplies() {
		if f == a.Message {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("fallback reply %q not drawn from the fixed set", a.Message)
	}
}

func TestClampSuggestions(t *testing.T) {
	in := []string{" one ", "", "two", "three", "four"}
	out := clampSuggestions(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(out))
	}
	if out[0] != "one" {
		t.Fatalf("expected trimmed suggestion, got %q", out[0])
	}
}

func TestParseModelReply(t *testing.T) {
	r, err := parseModelReply("```json\n{\"message\":\"Ho ho ho!\",\"tone\":\"merry\",\"suggestions\":[\"a\",\"b\",\"c\",\"d\"]}\n```")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if r.Message != "Ho ho ho!" || r.Tone != ToneMerry || len(r.Suggestions) != 3 {
		t.Fatalf("unexpected parsed reply: %+v", r)
	}

	if _, err := parseModelReply("not json at all"); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
	if _, err := parseModelReply("{\"tone\":\"jolly\"}"); err == nil {
		t.Fatalf("expected error for missing message")
	}
	r, err = parseModelReply("{\"message\":\"hi\",\"tone\":\"angry\"}")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if r.Tone != ToneJolly {
		t.Fatalf("unknown tone must normalize to jolly, got %q", r.Tone)
	}
}
