package models

// User is an account as persisted in the users table.
type User struct {
	ID           int    `json:"-"`
	PublicID     string `json:"public_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never serialized
	Admin        bool   `json:"admin"`
}

// UserResponse is the external representation of a User.
// Only the fields listed here leave the API.
type UserResponse struct {
	PublicID string `json:"public_id"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// NewUserResponse copies the public fields of u.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		PublicID: u.PublicID,
		Username: u.Username,
		Admin:    u.Admin,
	}
}

// NewUserResponses maps NewUserResponse over users, never returning nil.
func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
