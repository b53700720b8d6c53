package dto

type UserOutput struct {
	ID           int
	Token        string
	Nickname     string
	TotalMinutes int
}
