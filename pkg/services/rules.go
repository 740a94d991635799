package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// RuleGenerator is the offline strategy: keyword buckets mapped to canned
// in-character replies. It never calls out and never fails.
type RuleGenerator struct{}

func NewRuleGenerator() *RuleGenerator { return &RuleGenerator{} }

type ruleBucket struct {
	keywords    []string
	tone        Tone
	replies     []string
	suggestions []string
}

var ruleBuckets = []ruleBucket{
	{
		keywords: []string{"sad", "lonely", "miss", "scared", "cry", "afraid"},
		tone:     ToneCaring,
		replies: []string{
			"Oh, my dear child, even the longest winter night ends with morning light. Santa is thinking of you!",
			"There there, little one. Mrs. Claus says a warm cocoa and a hug fix almost anything.",
		},
		suggestions: []string{
			"Can you tell me something that made you smile today?",
			"Do you want to hear a cozy North Pole story?",
		},
	},
	{
		keywords: []string{"wish", "want", "gift", "present", "wishlist"},
		tone:     ToneEncouraging,
		replies: []string{
			"Ho ho ho! The elves write every wish into the big red book. Keep being kind and leave the rest to North Pole magic!",
			"What a lovely wish! Santa never spoils surprises, but I promise the elves read every single letter.",
		},
		suggestions: []string{
			"Have you added it to your wishlist?",
			"What category would your wish go in?",
			"Have you been helping out at home?",
		},
	},
	{
		keywords: []string{"reindeer", "rudolph", "sleigh"},
		tone:     TonePlayful,
		replies: []string{
			"Rudolph says hello! He's been practicing loop-the-loops over the glacier all week.",
			"The sleigh is getting a fresh coat of red paint, and the reindeer keep nosing the brushes!",
		},
		suggestions: []string{
			"Do you know all nine reindeer names?",
			"Should I tell Rudolph you said hi?",
		},
	},
	{
		keywords: []string{"elf", "elves", "north pole", "workshop"},
		tone:     ToneMerry,
		replies: []string{
			"The workshop is humming, ho ho ho! The elves are singing carols while they hammer and glue.",
			"Up here at the North Pole the snow sparkles like sugar. The elves send their merriest greetings!",
		},
		suggestions: []string{
			"Want to know what the elves are building today?",
			"What's your favorite carol?",
		},
	},
	{
		keywords: []string{"cookie", "cookies", "milk", "cocoa"},
		tone:     ToneJolly,
		replies: []string{
			"Ho ho ho! Cookies and milk are Santa's favorite fuel. Mrs. Claus bakes a mountain of them every night!",
			"Mmm, you read my mind! A gingerbread cookie and warm milk make any night merry.",
		},
		suggestions: []string{
			"What cookies will you leave out this year?",
			"Do you like gingerbread or sugar cookies more?",
		},
	},
	{
		keywords: []string{"good", "nice", "naughty", "behave", "kind"},
		tone:     ToneWise,
		replies: []string{
			"Santa always says: kindness counts twice when nobody is watching. I can tell you have a good heart!",
			"Being good isn't about being perfect, little one. It's about trying again each morning.",
		},
		suggestions: []string{
			"What kind thing did you do this week?",
			"Who could you help out tomorrow?",
		},
	},
}

var defaultRuleReplies = []string{
	"Ho ho ho! How wonderful to hear from you! The North Pole is busy and bright today.",
	"Merry greetings, little one! Santa is all ears by the fireplace.",
	"Ho ho ho! You've reached Santa's desk at the North Pole. What shall we talk about?",
}

var defaultRuleSuggestions = []string{
	"What's on your wishlist this year?",
	"Do you want to hear about the reindeer?",
	"Have you been helping out at home?",
}

func (g *RuleGenerator) Generate(ctx context.Context, req GenerateRequest) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}
	if r, ok := redirectIfUnsafe(req.Message); ok {
		return r, nil
	}

	lower := strings.ToLower(req.Message)
	for _, b := range ruleBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				reply := pickVariant(b.replies, req.Message)
				if b.tone == ToneEncouraging && len(req.WishlistItems) > 0 {
					reply = fmt.Sprintf("%s The elves already have %d wish(es) of yours in the big red book!", reply, len(req.WishlistItems))
				}
				return Reply{Message: reply, Tone: b.tone, Suggestions: clampSuggestions(b.suggestions)}, nil
			}
		}
	}

	return Reply{
		Message:     pickVariant(defaultRuleReplies, req.Message),
		Tone:        ToneJolly,
		Suggestions: clampSuggestions(defaultRuleSuggestions),
	}, nil
}

// pickVariant is stable for a given message so repeated turns read naturally
// different but tests stay deterministic.
func pickVariant(variants []string, message string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(message))
	return variants[int(h.Sum32())%len(variants)]
}
