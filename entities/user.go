package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns meals and carries the session token that identifies it.
// Password and SessionToken are never serialized.
type User struct {
	ID           string    `gorm:"type:text;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Username     string    `gorm:"not null;uniqueIndex:idx_users_username" json:"username"`
	Email        string    `gorm:"not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	SessionToken *string   `gorm:"uniqueIndex" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
