package models

// Credentials is the login/registration payload accepted from clients.
// Password is plaintext and lives only for the duration of a request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IsComplete reports whether both username and password are present.
func (c Credentials) IsComplete() bool {
	return c.Username != "" && c.Password != ""
}
