// Package userrepo persists the identity store in the users table.
package userrepo

import (
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the users row. RoleID keeps the numeric role codes
// (1 driver, 2 rider).
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	RoleID       int       `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		RoleID:       u.Role().Code(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := kernel.RoleFromCode(dto.RoleID)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.PasswordHash, role)
}
