package model

import "time"

// RoleAdmin is the only role the site knows about.  There is no public
// account system; staff log in to moderate reviews and manage reservations.
const RoleAdmin = "ADMIN"

// User represents a staff account as stored in the `users` table.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address used to log in.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name, currently always ADMIN.
//  IsActive     – whether the account may log in.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
