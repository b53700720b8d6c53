package domain

import "strings"

// Voice is one synthesis voice as reported by the engine.
type Voice struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Lang    string `json:"lang"`
	Default bool   `json:"default"`
}

// SelectVoice picks the first voice whose language tag starts with the
// target locale's primary subtag. When none matches, the engine default is
// used; a false return means playback should proceed with no explicit voice.
func SelectVoice(voices []Voice, lang string) (Voice, bool) {
	primary := primarySubtag(lang)
	if primary != "" {
		for _, v := range voices {
			if strings.HasPrefix(strings.ToLower(v.Lang), primary) {
				return v, true
			}
		}
	}
	for _, v := range voices {
		if v.Default {
			return v, true
		}
	}
	return Voice{}, false
}

// PlaybackStatus is the engine's view of the current utterance.
type PlaybackStatus struct {
	Speaking bool
	Paused   bool
}
