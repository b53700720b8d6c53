package dto

type SpeakInput struct {
	// Key identifies the call context so a repeated speak toggles playback
	// off instead of restarting it.
	Key  string
	Text string
}

type VoiceOutput struct {
	ID      string
	Name    string
	Lang    string
	Default bool
}
