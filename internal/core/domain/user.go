package domain

// User is a staff member allowed to operate the till.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt, never serialized
	AuditFields
}
