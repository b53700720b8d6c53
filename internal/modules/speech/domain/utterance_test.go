package domain_test

import (
	"strings"
	"testing"

	"zenpod/internal/modules/speech/domain"
)

func TestSanitizeStripsMarkdownDecoration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		lang string
		want string
	}{
		{"bold and emphasis", "**be** _still_ and `know`", "en", "be still and know"},
		{"heading and quote markers", "# Psalm 46\n> selah", "en", "Psalm 46, selah"},
		{"link keeps label only", "see [the psalm](https://example.com/ps46)", "en", "see the psalm"},
		{"dash runs removed", "stillness --- then silence", "en", "stillness then silence"},
		{"newlines become pause", "first line\n\nsecond line", "en", "first line, second line"},
		{"zh fullwidth punctuation", "安静,等候.神", "zh-CN", "安静，等候。神"},
		{"zh newline pause", "第一行\n第二行", "zh", "第一行，第二行"},
		{"surrounding space trimmed", "  breathe  ", "en", "breathe"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.Sanitize(tc.in, tc.lang); got != tc.want {
				t.Fatalf("Sanitize(%q, %q) = %q, want %q", tc.in, tc.lang, got, tc.want)
			}
		})
	}
}

func TestSanitizeTruncatesByRuneCount(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("禅", domain.MaxUtteranceRunes+40)
	got := domain.Sanitize(long, "zh")
	if n := len([]rune(got)); n != domain.MaxUtteranceRunes {
		t.Fatalf("expected %d runes, got %d", domain.MaxUtteranceRunes, n)
	}
}

func TestSelectVoicePrefersLanguageMatch(t *testing.T) {
	t.Parallel()
	voices := []domain.Voice{
		{ID: "v1", Lang: "en-GB"},
		{ID: "v2", Lang: "zh-CN"},
		{ID: "v3", Lang: "en-US", Default: true},
	}

	v, ok := domain.SelectVoice(voices, "zh-TW")
	if !ok || v.ID != "v2" {
		t.Fatalf("expected zh voice v2, got %+v ok=%v", v, ok)
	}

	// First match wins even when a later voice is the default.
	v, ok = domain.SelectVoice(voices, "en")
	if !ok || v.ID != "v1" {
		t.Fatalf("expected first en voice v1, got %+v ok=%v", v, ok)
	}
}

func TestSelectVoiceFallsBackToDefault(t *testing.T) {
	t.Parallel()
	voices := []domain.Voice{
		{ID: "v1", Lang: "fr-FR"},
		{ID: "v2", Lang: "de-DE", Default: true},
	}

	v, ok := domain.SelectVoice(voices, "zh-CN")
	if !ok || v.ID != "v2" {
		t.Fatalf("expected default voice v2, got %+v ok=%v", v, ok)
	}

	if _, ok := domain.SelectVoice([]domain.Voice{{ID: "v1", Lang: "fr-FR"}}, "zh"); ok {
		t.Fatalf("no match and no default must report false")
	}
}
