package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		text     string
		expected Input
	}{
		{name: "Lowercase letter", text: "a", expected: Input{Kind: Guess, Letter: 'a'}},
		{name: "Uppercase letter is lowercased", text: "R", expected: Input{Kind: Guess, Letter: 'r'}},
		{name: "Surrounding spaces", text: "  n ", expected: Input{Kind: Guess, Letter: 'n'}},
		{name: "Accented letter", text: "Ñ", expected: Input{Kind: Guess, Letter: 'ñ'}},
		{name: "Digit", text: "7", expected: Input{Kind: Noise}},
		{name: "Punctuation", text: "?", expected: Input{Kind: Noise}},
		{name: "Whole word", text: "rana", expected: Input{Kind: Noise}},
		{name: "Empty", text: "", expected: Input{Kind: Noise}},
		{name: "Forfeit keyword", text: "Me   Rindo", expected: Input{Kind: Forfeit}},
		{name: "Forfeit verb", text: "rendirse", expected: Input{Kind: Forfeit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, ParseInput(tt.text))
		})
	}
}
