package glossary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TranslateFallback renders standard Korean text into langKey using only
// the glossary and the built-in fragment dictionary. The result is an
// approximation meant for when no remote translator is reachable.
//
// Steps: glossary standard forms become their per-language translation
// (longest first, English when the language field is missing); known
// Korean fragments are rewritten (longest first, English dictionary for
// unknown keys); any Hangul left is deleted, then whitespace is collapsed
// and trimmed. A replacement is spaced off only from adjacent letters or
// digits so it never fuses with a neighbouring word. The output never
// contains Hangul.
func TranslateFallback(standardText, langKey string, snap *Snapshot) string {
	lang := LanguageKey(langKey)
	text := standardText

	if snap != nil {
		for _, i := range snap.byStandard {
			e := snap.entries[i]
			plain := e.PlainStandard()
			if plain == "" || !strings.Contains(text, plain) {
				continue
			}
			text = replaceWord(text, plain, e.Translation(lang))
		}
	}

	for _, rule := range fragmentRules(lang) {
		if strings.Contains(text, rule.from) {
			text = replaceWord(text, rule.from, rule.to)
		}
	}

	return tidy(StripHangul(text))
}

// replaceWord replaces every occurrence of from with to, adding a space on
// a side only where to would otherwise touch a letter or digit.
func replaceWord(s, from, to string) string {
	if from == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(to))
	for {
		i := strings.Index(s, from)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		before, _ := utf8.DecodeLastRuneInString(b.String())
		after, _ := utf8.DecodeRuneInString(s[i+len(from):])
		if to == "" {
			if isWordRune(before) && isWordRune(after) {
				b.WriteByte(' ')
			}
		} else {
			if isWordRune(before) {
				b.WriteByte(' ')
			}
			b.WriteString(to)
			if isWordRune(after) {
				b.WriteByte(' ')
			}
		}
		s = s[i+len(from):]
	}
}

func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsNumber(r))
}

// StripHangul deletes every Hangul character (syllables and all Jamo
// blocks), leaving the surrounding text as it was.
func StripHangul(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Hangul, r) {
			return -1
		}
		return r
	}, s)
}

// ContainsHangul reports whether s has any Hangul character.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

func tidy(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
