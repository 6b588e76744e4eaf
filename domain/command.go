package domain

import (
	"strings"
	"unicode/utf8"
)

// DefaultPrefixes are the characters a host accepts in front of a command name.
const DefaultPrefixes = "./#!"

type Command struct {
	Name    string
	Args    []string
	Message IncomingMessage
}

// ParseCommand recognizes "<prefix><name> [args...]".
// The name is lowercased, arguments are split on whitespace.
func ParseCommand(msg IncomingMessage, prefixes string) (Command, bool) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return Command{}, false
	}
	first, size := utf8.DecodeRuneInString(text)
	if !strings.ContainsRune(prefixes, first) {
		return Command{}, false
	}
	fields := strings.Fields(text[size:])
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{
		Name:    strings.ToLower(fields[0]),
		Args:    fields[1:],
		Message: msg,
	}, true
}
