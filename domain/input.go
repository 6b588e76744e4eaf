package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type InputKind int

const (
	Noise InputKind = iota
	Guess
	Forfeit
)

// Input is what a chat message means to a running game.
type Input struct {
	Kind   InputKind
	Letter rune
}

var forfeitKeywords = []string{"rendirse", "rendir", "me rindo", "forfeit"}

// ParseInput turns raw message text into a Guess, a Forfeit or Noise.
// A guess is exactly one letter, any script, lowercased.
func ParseInput(text string) Input {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) == 1 {
		r, _ := utf8.DecodeRuneInString(text)
		if unicode.IsLetter(r) {
			return Input{Kind: Guess, Letter: unicode.ToLower(r)}
		}
		return Input{Kind: Noise}
	}
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))
	for _, keyword := range forfeitKeywords {
		if normalized == keyword {
			return Input{Kind: Forfeit}
		}
	}
	return Input{Kind: Noise}
}
