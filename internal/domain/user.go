package domain

import "time"

// User is an account that can sign in. PasswordHash holds the encoded
// argon2id digest and never leaves the server.
type User struct {
	ID           string    `json:"id"`
	LoginName    string    `json:"loginName"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	CreatedAt    time.Time `json:"createdAt"`
	Deleted      bool      `json:"deleted"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		LoginName:   u.LoginName,
		DisplayName: u.DisplayName,
	}
}

// PublicUser is the subset of User exposed over the API.
type PublicUser struct {
	ID          string `json:"id"`
	LoginName   string `json:"loginName"`
	DisplayName string `json:"displayName"`
}
