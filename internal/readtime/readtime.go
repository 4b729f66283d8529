// Package readtime computes reading-time estimates from post bodies.
package readtime

import "strings"

// WordsPerMinute is the fixed reading speed the estimate is based on.
const WordsPerMinute = 200

// Estimate returns the reading time of text in whole minutes, rounded up.
// Empty or whitespace-only text counts as a single word, so the estimate
// is always at least one minute.
func Estimate(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		words = 1
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
