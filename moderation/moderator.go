package moderation

import (
	"fmt"
	"log/slog"
	"unicode"

	"talk-lab/errors"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator masks forbidden words in chat messages.
// Matching runs on a normalized copy of the text (lower case, leet speak folded,
// punctuation and spaces skipped) so "B.4.d.g.€r" still matches "badger".
type Moderator struct {
	log          *slog.Logger
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// folded is the normalized text plus, for each normalized rune, its index in the original.
type folded struct {
	runes  []rune
	origin []int
}

// NewModerator builds the automaton from the censored words.
// Words made only of noise are skipped.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		pattern := fold([]rune(word)).runes
		if len(pattern) == 0 {
			continue
		}
		patterns = append(patterns, pattern)
	}
	if skipped := len(censoredWords) - len(patterns); skipped > 0 {
		log.Debug(fmt.Sprintf("%d censored word(s) skipped, nothing left after normalization", skipped))
	}
	if len(patterns) == 0 {
		return Moderator{}, errors.ErrEmptyWords
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{log: log, matcher: m, censoredChar: censoredChar}, nil
}

// Censor returns the text with every match masked in place, and the matched
// words in order of appearance. Characters between the letters of a match
// are masked too, spacing around it is kept.
func (m Moderator) Censor(text string) (string, []string) {
	f := fold([]rune(text))
	if len(f.runes) == 0 {
		return text, nil
	}

	terms := m.matcher.MultiPatternSearch(f.runes, false)
	if len(terms) == 0 {
		return text, nil
	}

	masked := []rune(text)
	var words []string
	for _, term := range terms {
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(f.origin) {
			continue
		}
		for i := f.origin[start]; i <= f.origin[end-1]; i++ {
			masked[i] = m.censoredChar
		}
		words = append(words, string(term.Word))
	}
	return string(masked), words
}

func fold(input []rune) folded {
	f := folded{
		runes:  make([]rune, 0, len(input)),
		origin: make([]int, 0, len(input)),
	}
	for i, r := range input {
		r = unleet(r)
		if isNoise(r) {
			continue
		}
		f.runes = append(f.runes, unicode.ToLower(r))
		f.origin = append(f.origin, i)
	}
	return f
}

// unleet maps common leet speak characters back to letters.
func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
