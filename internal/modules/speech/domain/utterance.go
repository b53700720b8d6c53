package domain

import (
	"regexp"
	"strings"
)

// MaxUtteranceRunes caps utterance length; longer texts are truncated so a
// single utterance never exceeds what engines reliably synthesize.
const MaxUtteranceRunes = 500

// Request is one ephemeral unit of playback. It exists only for the
// duration of a single utterance and is never persisted.
type Request struct {
	ID    string
	Text  string
	Lang  string
	Rate  float64
	Pitch float64
	Voice Voice
}

var (
	markupRe   = regexp.MustCompile("[*_#`~>]")
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	dashRunRe  = regexp.MustCompile(`[-—]{2,}`)
	newlineRe  = regexp.MustCompile(`\n+`)
	multiSpace = regexp.MustCompile(`\s{2,}`)
)

// Sanitize prepares raw chapter text for synthesis: markdown decoration is
// stripped, line breaks become pause punctuation, and for CJK locales the
// ASCII sentence punctuation is normalized to the fullwidth convention.
// The result is truncated to MaxUtteranceRunes.
func Sanitize(text, lang string) string {
	t := linkRe.ReplaceAllString(text, "$1")
	t = markupRe.ReplaceAllString(t, "")
	t = dashRunRe.ReplaceAllString(t, "")
	if primarySubtag(lang) == "zh" {
		t = strings.ReplaceAll(t, ",", "，")
		t = strings.ReplaceAll(t, ".", "。")
		t = newlineRe.ReplaceAllString(t, "，")
	} else {
		t = newlineRe.ReplaceAllString(t, ", ")
	}
	t = multiSpace.ReplaceAllString(t, " ")
	t = strings.TrimSpace(t)

	runes := []rune(t)
	if len(runes) > MaxUtteranceRunes {
		t = string(runes[:MaxUtteranceRunes])
	}
	return t
}

func primarySubtag(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		return lang[:i]
	}
	return lang
}
