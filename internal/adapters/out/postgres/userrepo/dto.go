// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"strings"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// Roles are stored as a comma-separated list; the set is small and fixed, so
// a join table would add nothing but schema weight.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Roles        string    `gorm:"type:varchar(255)"`
	Active       bool
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	roles := aggregate.Roles()
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		Roles:        strings.Join(names, ","),
		Active:       aggregate.Active(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var roles []user.Role
	for _, name := range strings.Split(dto.Roles, ",") {
		role, roleErr := user.RoleFromString(name)
		if roleErr != nil {
			return nil, roleErr
		}
		roles = append(roles, role)
	}

	return user.RestoreUser(
		id,
		dto.Username,
		dto.PasswordHash,
		roles,
		dto.Active,
		dto.CreatedAt,
	)
}
