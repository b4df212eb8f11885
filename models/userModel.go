package models

// Credentials is the owner dashboard login payload. There is a single shared
// password and no user records.
type Credentials struct {
	Password *string `json:"password" validate:"required,min=1"`
}

type Session struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
