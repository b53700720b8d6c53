package domain

import "time"

// User is the client's view of a reader identity. The token is the only
// thing the client ever presents to the server.
type User struct {
	ID           int
	Token        string
	Nickname     string
	TotalMinutes int
}

// StoredToken is the on-disk persisted identity, the survives-reload state.
type StoredToken struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
