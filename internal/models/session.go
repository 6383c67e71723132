package models

// User is the single admin identity. There are no other accounts.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the persisted authentication snapshot. It is either the
// zero value (anonymous) or the one authenticated admin.
type Session struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsAdmin         bool  `json:"isAdmin"`
	User            *User `json:"user"`
}
