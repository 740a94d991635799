package services

import (
	"context"
	"hash/fnv"
	"strings"

	"SantaChat/pkg/config"
)

// Tone classifies the emotional register of a persona reply.
type Tone string

const (
	ToneJolly       Tone = "jolly"
	ToneCaring      Tone = "caring"
	ToneEncouraging Tone = "encouraging"
	TonePlayful     Tone = "playful"
	ToneWise        Tone = "wise"
	ToneMerry       Tone = "merry"
)

var validTones = map[Tone]bool{
	ToneJolly:       true,
	ToneCaring:      true,
	ToneEncouraging: true,
	TonePlayful:     true,
	ToneWise:        true,
	ToneMerry:       true,
}

// NormalizeTone maps anything outside the closed set to jolly.
func NormalizeTone(s string) Tone {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if validTones[t] {
		return t
	}
	return ToneJolly
}

const maxSuggestions = 3

func clampSuggestions(in []string) []string {
	out := make([]string, 0, maxSuggestions)
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// Reply is the persona reply bundle produced per chat turn.
type Reply struct {
	Message     string
	Tone        Tone
	Suggestions []string
}

// HistoryMessage is one prior turn of the child's transcript.
type HistoryMessage struct {
	FromSanta bool
	Text      string
}

type GenerateRequest struct {
	Message       string
	History       []HistoryMessage
	WishlistItems []string
}

// Generator produces a Santa persona reply for one chat turn.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (Reply, error)
}

// NewGenerator picks the strategy from config: the hosted model when enabled
// and credentialed, keyword rules otherwise.
func NewGenerator() Generator {
	if config.IsOpenAIEnabled && strings.TrimSpace(config.OpenAIAPIKey) != "" {
		return NewSantaAI()
	}
	return NewRuleGenerator()
}

// fallbackReplies are served verbatim whenever the generator fails. The chat
// turn must always complete with some persona reply.
var fallbackReplies = []string{
	"Ho ho ho! Santa's helpers are having trouble with the magic snow globe. Could you try asking again?",
	"Ho ho ho! The North Pole wind is howling so loudly I could barely hear you. Tell me again, little one?",
	"Goodness me, an elf just spilled cocoa on my letter desk! What were you saying?",
	"Ho ho ho! Mrs. Claus is calling me for cookies, but I always have time for you. Ask me once more!",
	"The reindeer got a bit rowdy just now! Santa is listening again, go ahead.",
}

// FallbackReply deterministically picks an in-character filler for a message.
func FallbackReply(message string) Reply {
	h := fnv.New32a()
	_, _ = h.Write([]byte(message))
	pick := fallbackReplies[int(h.Sum32())%len(fallbackReplies)]
	return Reply{Message: pick, Tone: ToneJolly, Suggestions: nil}
}

// FallbackReplies returns a copy of the fixed filler set.
func FallbackReplies() []string {
	out := make([]string, len(fallbackReplies))
	copy(out, fallbackReplies)
	return out
}

// unsafeWords triggers the redirect gate before any upstream call. The list
// only needs to catch plainly out-of-bounds topics for a child audience.
// Matching is on whole words so "hello" never trips on "hell".
var unsafeWords = map[string]bool{
	"kill": true, "gun": true, "knife": true, "blood": true, "die": true,
	"dead": true, "hate": true, "stupid": true, "drugs": true, "beer": true,
	"vodka": true, "cigarette": true, "hell": true,
}

// redirectIfUnsafe steers inappropriate or unsafe input back toward benign
// holiday topics without echoing it.
func redirectIfUnsafe(message string) (Reply, bool) {
	lower := strings.ToLower(message)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	for _, w := range words {
		if unsafeWords[w] {
			return Reply{
				Message: "Ho ho ho, let's keep things merry and bright! Tell me, what is your favorite part of the holidays?",
				Tone:    ToneCaring,
				Suggestions: []string{
					"What's on your wishlist this year?",
					"Do you want to hear about the reindeer?",
				},
			}, true
		}
	}
	return Reply{}, false
}
