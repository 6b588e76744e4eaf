package domain

import "strings"

const hiddenLetter = "_"

// Mask renders the word with unguessed letters replaced by "_",
// one token per letter separated by single spaces.
func Mask(word string, guessed map[rune]struct{}) string {
	tokens := make([]string, 0, len(word))
	for _, r := range word {
		if _, ok := guessed[r]; ok {
			tokens = append(tokens, string(r))
			continue
		}
		tokens = append(tokens, hiddenLetter)
	}
	return strings.Join(tokens, " ")
}
