package model

// User represents an account record as stored in the `users` table.
// Passwords are never stored in plain text; only a bcrypt hash is
// persisted. The Role field drives access to the /admin and /staff
// surfaces and holds one of CUSTOMER, STAFF or ADMIN.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – display name. Uniqueness is enforced by the admin
//                 and registration paths, not by the schema.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name (CUSTOMER, STAFF or ADMIN).
type User struct {
	ID           int64  // users.id
	Username     string // users.username
	PasswordHash string // users.password_hash
	Role         string // users.role
}
