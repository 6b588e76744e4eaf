package domain

import "strings"

var figureLines = []string{
	" ____",
	" |  |",
	" |  O",
	" | /|\\",
	" | / \\",
	"_|_",
}

// Figure draws the gallows for the given attempts: one line per wrong guess.
func Figure(remainingAttempts, maxAttempts int) string {
	n := maxAttempts - remainingAttempts
	n = max(0, min(n, len(figureLines)))
	return strings.Join(figureLines[:n], "\n")
}
