package textstat

import (
	"regexp"

	"github.com/nao1215/readscore/internal/model"
)

// Separator patterns for sentence and word splitting.
//
// sentenceSeparator matches terminal punctuation followed by one whitespace
// character, so "One. Two" splits but a trailing "Two." does not.
//
// wordSeparator matches whitespace together with any run of non-word
// characters directly before it, so punctuation adjacent to whitespace is
// consumed as part of the separator ("Hello, world" -> "Hello", "world").
//
// Whitespace is spelled out as the explicit ASCII class including vertical
// tab; Go's \s omits \v, which countCharacters already treats as whitespace.
var (
	sentenceSeparator = regexp.MustCompile(`[.!?][\t\n\v\f\r ]`)
	wordSeparator     = regexp.MustCompile(`\W*[\t\n\v\f\r ]`)
)

// Analyze derives the complete statistics for the given text.
// The returned value is never mutated afterwards; all downstream scoring is
// pure computation over it.
//
// Degenerate input (empty text) yields all-zero counts. Analyze does not
// guard against the division by zero this causes in the formulas; the
// scorer and age estimator handle it.
func Analyze(text string) model.Statistics {
	words := splitWords(text)
	perWord := syllablesPerWord(words)

	stats := model.Statistics{
		Words:            len(words),
		Sentences:        countSentences(text),
		Characters:       countCharacters(text),
		SyllablesPerWord: perWord,
	}
	for _, s := range perWord {
		stats.Syllables += s
		if s > 2 {
			stats.Polysyllables++
		}
	}
	return stats
}

// countSentences counts the segments produced by splitting on terminal
// punctuation followed by whitespace. Empty text has zero sentences; any
// other text has at least one, even without terminal punctuation.
func countSentences(text string) int {
	segments := splitAndTrim(sentenceSeparator, text)
	return len(segments)
}

// splitWords splits the text into words. Empty text yields no words.
func splitWords(text string) []string {
	return splitAndTrim(wordSeparator, text)
}

// splitAndTrim splits text on the separator and drops trailing empty
// segments, so text ending in a separator does not grow an extra empty
// entry. Interior empty segments are kept. A lone empty segment (empty or
// separator-only text) becomes an empty result.
func splitAndTrim(sep *regexp.Regexp, text string) []string {
	segments := sep.Split(text, -1)
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return segments
}

// countCharacters counts all characters excluding whitespace.
// Whitespace here is the ASCII class: space, tab, newline, carriage return,
// form feed, and vertical tab. Punctuation counts as a character.
func countCharacters(text string) int {
	count := 0
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
		default:
			count++
		}
	}
	return count
}

// syllablesPerWord computes the syllable count of each word.
// Returns nil for an empty word list so that Statistics comparisons against
// the zero value behave.
func syllablesPerWord(words []string) []int {
	if len(words) == 0 {
		return nil
	}
	counts := make([]int, len(words))
	for i, word := range words {
		counts[i] = countSyllables(word)
	}
	return counts
}

// countSyllables applies the vowel-run heuristic to a single word:
// count maximal runs of vowels, subtract one for a trailing lowercase "e"
// (a trailing uppercase "E" does not count as silent), and clamp the result
// to a minimum of one. The clamp also gives empty words one syllable.
//
// The scan is a single cursor pass over the bytes; vowels are ASCII only.
func countSyllables(word string) int {
	count := 0
	inRun := false
	for i := 0; i < len(word); i++ {
		if isVowel(word[i]) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}

	if word != "" && word[len(word)-1] == 'e' {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

// isVowel reports whether b is one of the heuristic's vowels, y included.
func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	default:
		return false
	}
}
