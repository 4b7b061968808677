package model

import "time"

// Role values accepted in the `users.role` column.  ADMIN can manage
// users on top of the regular dashboard operations available to USER.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is a dashboard operator account, one row in the `users` table.
// Credentials are stored as bcrypt hashes and compared with a constant
// time check; the plain secret never touches the database.
//
// Fields:
//  ID           – primary key identifier.
//  Username     – unique login name.
//  PasswordHash – bcrypt hash of the password.
//  DisplayName  – name shown in the dashboard UI.
//  Role         – ADMIN or USER.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	DisplayName  string    // users.display_name
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Only the
// SHA-256 hash of the raw token is stored; the raw value is returned to
// the client once at issue time.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
