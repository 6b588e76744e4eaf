package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFigure_LinesGrowWithWrongGuesses(t *testing.T) {
	req := require.New(t)

	// Given a fresh game nothing is drawn
	req.Empty(Figure(MaxAttempts, MaxAttempts))

	// Then each wrong guess adds one line
	for remaining := MaxAttempts - 1; remaining >= 0; remaining-- {
		figure := Figure(remaining, MaxAttempts)
		req.Len(strings.Split(figure, "\n"), MaxAttempts-remaining)
	}

	// And the last stage is the complete drawing
	req.Equal(strings.Join(figureLines, "\n"), Figure(0, MaxAttempts))
}

func TestFigure_OutOfRangeIsClamped(t *testing.T) {
	req := require.New(t)
	req.Empty(Figure(10, MaxAttempts))
	req.Equal(strings.Join(figureLines, "\n"), Figure(-3, MaxAttempts))
	req.Equal(strings.Join(figureLines, "\n"), Figure(0, 20))
}
