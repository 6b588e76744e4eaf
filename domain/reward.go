package domain

import "unicode/utf8"

const (
	ShortWordMaxExp   int64 = 350
	LongWordMaxExp    int64 = 6500
	LongWordThreshold       = 8
)

// MaxExp is the exclusive upper bound of the reward for guessing word.
func MaxExp(word string) int64 {
	if utf8.RuneCountInString(word) < LongWordThreshold {
		return ShortWordMaxExp
	}
	return LongWordMaxExp
}

// ExpReward draws a uniform reward in [0, MaxExp(word)).
func ExpReward(word string, rng Random) int64 {
	return rng.Int64N(MaxExp(word))
}
