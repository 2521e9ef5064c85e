package domain

// User is the authenticated caller. Accounts live in the identity
// provider; the portal only sees the token claims.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayName returns the name shown on modified-by columns
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
