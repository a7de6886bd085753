package models

// UserProfile is the signed-in operator's identity as reported by the
// backend (login response or /auth/me).
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
