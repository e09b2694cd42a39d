// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user accounts.
// Usernames are unique; only the bcrypt hash of the password is stored.
type UserDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username        string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email           string    `gorm:"type:varchar(254);not null;default:''"`
	PasswordHash    string    `gorm:"type:varchar(100);not null"`
	DeliveryAddress string    `gorm:"type:varchar(200);not null;default:''"`
	IsStaff         bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:              u.ID().Bytes(),
		Username:        u.Username(),
		Email:           u.Email(),
		PasswordHash:    u.PasswordHash(),
		DeliveryAddress: u.DeliveryAddress(),
		IsStaff:         u.IsStaff(),
		CreatedAt:       u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.Email, dto.PasswordHash, dto.DeliveryAddress, dto.IsStaff, dto.CreatedAt)
}
