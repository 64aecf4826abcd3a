package auth

// Claims representa la información extraída del token del staff.
type Claims struct {
	UserID string
	Email  string
	Role   string
}
