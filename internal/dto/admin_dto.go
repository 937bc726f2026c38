package dto

// AdminCheckResponse reports whether the verified email is on the admin
// allow-list.
type AdminCheckResponse struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
