package domain

import (
	"hangman-bot/errors"
	"slices"
)

// WordList is the fixed set of words a game can be started with.
type WordList struct {
	words []string
}

func NewWordList(words []string) (WordList, error) {
	if len(words) == 0 {
		return WordList{}, errors.ErrEmptyWords
	}
	return WordList{words: slices.Clone(words)}, nil
}

func (w WordList) Pick(rng Random) string {
	return w.words[rng.IntN(len(w.words))]
}

func (w WordList) Len() int {
	return len(w.words)
}

func (w WordList) Contains(word string) bool {
	return slices.Contains(w.words, word)
}
