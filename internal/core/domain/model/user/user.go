package user

import (
	"errors"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrUsernameIsRequired is returned when a user is created without a username.
	ErrUsernameIsRequired = errors.New("username is required")

	// ErrPasswordTooShort is returned when the supplied password does not
	// meet the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrAtLeastOneRole is returned when a user is created with no roles.
	ErrAtLeastOneRole = errors.New("user must hold at least one role")

	// ErrInvalidCredentials is returned when a password check fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLength = 8

// User represents an account in the coordination network: a provider,
// volunteer, shelter coordinator, or administrator. Passwords are stored
// only as bcrypt hashes.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	roles        []Role
	active       bool
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates an active user with the given roles, hashing the password
// with bcrypt. Role values are validated and deduplicated.
func NewUser(id kernel.UUID, username, password string, roles []Role) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, ErrUsernameIsRequired
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	deduped, err := dedupeRoles(roles)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		username:      username,
		passwordHash:  string(hash),
		roles:         deduped,
		active:        true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence with the stored hash.
func RestoreUser(
	id kernel.UUID,
	username string,
	passwordHash string,
	roles []Role,
	active bool,
	createdAt time.Time,
) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, ErrUsernameIsRequired
	}

	deduped, err := dedupeRoles(roles)
	if err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		username:      username,
		passwordHash:  passwordHash,
		roles:         deduped,
		active:        active,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored bcrypt hash, for persistence only.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Roles returns a copy of the user's role set.
func (u *User) Roles() []Role {
	out := make([]Role, len(u.roles))
	copy(out, u.roles)
	return out
}

// Active reports whether the account can authenticate.
func (u *User) Active() bool {
	return u.active
}

// CreatedAt returns when the account was registered.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.roles {
		if r == role {
			return true
		}
	}
	return false
}

// VerifyPassword checks a plaintext password against the stored hash.
// Returns ErrInvalidCredentials on mismatch or for inactive accounts.
func (u *User) VerifyPassword(password string) error {
	if !u.active {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Deactivate blocks the account from authenticating.
func (u *User) Deactivate() {
	u.active = false
}

func dedupeRoles(roles []Role) ([]Role, error) {
	if len(roles) == 0 {
		return nil, ErrAtLeastOneRole
	}

	seen := make(map[Role]bool, len(roles))
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out, nil
}
