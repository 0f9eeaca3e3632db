package identity

import (
	"strings"
	"time"

	"github.com/finopenpos/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role determines what a signed-in user may do. Cashiers run the
// register; admins additionally manage the catalog, users and settings.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCashier
}

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a back-office account able to sign in to the POS
type User struct {
	shared.BaseAggregateRoot
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Status       UserStatus
}

// NewUser creates an active user with a bcrypt-hashed password
func NewUser(email, name, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewValidationError("Email cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("Name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewValidationError("Role must be admin or cashier")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Name:              strings.TrimSpace(name),
		Role:              role,
		Status:            UserStatusActive,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewValidationError("Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifies a candidate password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetRole changes the user's role
func (u *User) SetRole(role Role) error {
	if !role.IsValid() {
		return shared.NewValidationError("Role must be admin or cashier")
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	return nil
}

// IsAdmin returns true for admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive returns true if the account may sign in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Deactivate disables sign-in for the account
func (u *User) Deactivate() {
	u.Status = UserStatusInactive
	u.UpdatedAt = time.Now()
}

// Activate re-enables sign-in for the account
func (u *User) Activate() {
	u.Status = UserStatusActive
	u.UpdatedAt = time.Now()
}
