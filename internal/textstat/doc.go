// Package textstat extracts the text statistics that feed the readability
// formulas: sentence, word, character, syllable, and polysyllable counts.
//
// The counting rules are deliberately simple heuristics, not natural-language
// tokenization:
//   - A sentence boundary is terminal punctuation (. ! ?) immediately
//     followed by whitespace. Trailing punctuation at end of text does not
//     start a new sentence.
//   - Words are separated by whitespace together with any punctuation
//     directly preceding it; punctuation not adjacent to whitespace stays
//     part of the word.
//   - Characters are all non-whitespace characters, punctuation included.
//   - Syllables are counted per word as the number of maximal vowel runs
//     (a, e, i, o, u, y, either case), minus one for a trailing lowercase
//     "e", clamped to a minimum of one.
//
// The quirks of these rules (the case-sensitive silent-e check, the one
// syllable attributed to empty words) are observable behavior that the
// scoring tests pin down, and must not be "fixed".
package textstat
