package user

import (
	"fmt"

	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"
)

// Role names a capability set a user holds. A user may hold several roles:
// a shelter coordinator may also volunteer for deliveries.
type Role string

const (
	// RoleProvider publishes batches of donated resources.
	RoleProvider Role = "provider"
	// RoleVolunteer commits to and carries out deliveries.
	RoleVolunteer Role = "volunteer"
	// RoleShelter declares needs, reserves resources, and validates arrivals.
	RoleShelter Role = "shelter"
	// RoleAdmin manages users and reference data.
	RoleAdmin Role = "admin"
)

func validRoles() map[Role]bool {
	return map[Role]bool{
		RoleProvider:  true,
		RoleVolunteer: true,
		RoleShelter:   true,
		RoleAdmin:     true,
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks the role names one of the known capability sets.
func (r Role) Validate() error {
	if !validRoles()[r] {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the wire name of the role.
func (r Role) String() string {
	return string(r)
}
