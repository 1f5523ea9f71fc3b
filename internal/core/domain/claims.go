package domain

// Claims is the identity payload carried inside a signed token. It holds
// nothing beyond what the token encodes; in particular it is never looked up
// against the store after verification.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
