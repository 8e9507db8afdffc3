// Package verse derives the display form of a verse: the invocation split off
// the first verse of a chapter and the ornamental verse-number marker.
//
// Matching against the invocation ignores Arabic vowel marks and the
// alef variants, so plain and fully vocalized datasets behave alike.
package verse

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Invocation is the opening formula carried by the first verse of every
// chapter except ExemptChapter.
const Invocation = "بسم الله الرحمن الرحيم"

// ExemptChapter never opens with the invocation.
const ExemptChapter = 9

const (
	markOpen  = "﴿"
	markClose = "﴾"
	tatweel   = 'ـ'
)

var foldedInvocation = []rune(Fold(Invocation))

// Rendered is a verse ready for display.
type Rendered struct {
	// LeadingPhrase is set only when the invocation was split off the body.
	LeadingPhrase *string
	Body          string
	NumberGlyph   string
}

// Render splits the invocation off the first verse of a chapter (other than
// ExemptChapter) and attaches the number marker for index+1. Any other verse
// keeps its raw text.
func Render(chapterID, index int, raw string) Rendered {
	r := Rendered{Body: raw, NumberGlyph: NumberGlyph(index + 1)}
	if index != 0 || chapterID == ExemptChapter {
		return r
	}
	phrase, body, ok := SplitInvocation(raw)
	if !ok {
		return r
	}
	r.LeadingPhrase = &phrase
	r.Body = body
	return r
}

// NumberGlyph renders n with Arabic-Indic digits inside ornate parentheses.
func NumberGlyph(n int) string {
	digits := strconv.Itoa(n)

	var sb strings.Builder
	sb.WriteString(markOpen)
	for _, d := range digits {
		if d >= '0' && d <= '9' {
			sb.WriteRune('٠' + (d - '0'))
			continue
		}
		sb.WriteRune(d)
	}
	sb.WriteString(markClose)
	return sb.String()
}

// EnsureInvocation prepends the invocation to verse 1 of a chapter when the
// dataset left it out.
func EnsureInvocation(chapterID, verseNumber int, text string) string {
	text = strings.TrimSpace(text)
	if verseNumber != 1 || chapterID == ExemptChapter || HasInvocation(text) {
		return text
	}
	return strings.TrimSpace(Invocation + " " + text)
}

// HasInvocation reports whether text opens with the invocation.
func HasInvocation(text string) bool {
	_, _, ok := SplitInvocation(text)
	return ok
}

// SplitInvocation cuts a leading invocation off text. phrase keeps the
// source's own spelling and vowel marks; body is the trimmed remainder.
func SplitInvocation(text string) (phrase, body string, ok bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	matched := 0
	prevSpace := false
	end := len(s)
	for i, r := range s {
		if matched == len(foldedInvocation) {
			if isMark(r) {
				continue
			}
			if !unicode.IsSpace(r) {
				// the last word continues, so this is a different word
				return "", text, false
			}
			end = i
			break
		}
		f, keep := foldRune(r)
		if !keep {
			continue
		}
		if f == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		if f != foldedInvocation[matched] {
			return "", text, false
		}
		matched++
	}
	if matched < len(foldedInvocation) {
		return "", text, false
	}
	return strings.TrimSpace(s[:end]), strings.TrimSpace(s[end:]), true
}

// Matches reports whether query occurs in text, ignoring case, vowel marks
// and alef variants. An empty query matches everything.
func Matches(text, query string) bool {
	q := strings.TrimSpace(Fold(query))
	if q == "" {
		return true
	}
	return strings.Contains(Fold(text), q)
}

// Fold reduces text to the form used for matching.
func Fold(text string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(isMark)),
		runes.Map(foldLetter),
		norm.NFC,
	)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}

	var sb strings.Builder
	prevSpace := false
	for _, r := range strings.TrimSpace(folded) {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			sb.WriteRune(' ')
			continue
		}
		prevSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

func foldRune(r rune) (rune, bool) {
	if isMark(r) {
		return 0, false
	}
	if unicode.IsSpace(r) {
		return ' ', true
	}
	return foldLetter(r), true
}

func foldLetter(r rune) rune {
	switch r {
	case 'ٱ', 'أ', 'إ', 'آ':
		return 'ا'
	}
	return unicode.ToLower(r)
}

func isMark(r rune) bool {
	return r == tatweel || unicode.Is(unicode.Mn, r)
}
