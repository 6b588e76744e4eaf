package runtime

import (
	"embed"
	"fmt"
	"hangman-bot/domain"
	"hangman-bot/moderation"
	"io/fs"
	"log/slog"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

//go:embed words/* censored/*
var embeddedDictionaries embed.FS

// EmbeddedDictionaries exposes the word lists shipped with the binary.
func EmbeddedDictionaries() fs.FS {
	return embeddedDictionaries
}

// BuildModerator builds the censor from every embedded censored list.
func BuildModerator(fsys fs.FS, censoredChar rune, log *slog.Logger) (moderation.Moderator, error) {
	censored, err := NewDictionaryLoader(fsys).LoadAll("censored")
	if err != nil {
		return moderation.Moderator{}, fmt.Errorf("censored words: %w", err)
	}
	log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(censored.Languages), strings.Join(censored.Languages, ",")))

	return moderation.NewModerator(censored.Words, censoredChar, log)
}

// BuildWordList loads the playable words for the given languages and drops
// anything that isn't made only of letters or that the moderator flags.
func BuildWordList(fsys fs.FS, languages []string, moderator *moderation.Moderator, log *slog.Logger) (domain.WordList, error) {
	dictionary, err := NewDictionaryLoader(fsys).LoadAll("words", languages...)
	if err != nil {
		return domain.WordList{}, fmt.Errorf("words: %w", err)
	}

	playable := lo.Filter(dictionary.Words, func(word string, _ int) bool {
		return isPlayable(word) && !moderator.Contains(word)
	})
	if dropped := len(dictionary.Words) - len(playable); dropped > 0 {
		log.Warn("Words dropped from the dictionary", "count", dropped)
	}
	log.Info(fmt.Sprintf("%d playable words loaded [%s]",
		len(playable), strings.Join(dictionary.Languages, ",")))

	return domain.NewWordList(playable)
}

func isPlayable(word string) bool {
	return word != "" && lo.EveryBy([]rune(word), unicode.IsLetter)
}
