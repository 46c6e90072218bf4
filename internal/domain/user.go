package domain

import (
	"context"
	"time"
)

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"size:64;not null" json:"name"`
	LastName     string     `gorm:"size:64;not null" json:"lastName"`
	Username     string     `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
	Address      string     `gorm:"size:191" json:"address,omitempty"`
	PhotoSource  string     `gorm:"size:191" json:"photoSource,omitempty"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	StateID      *uint      `json:"stateId,omitempty"`
	State        *State     `gorm:"foreignKey:StateID" json:"state,omitempty"`
}

func (User) TableName() string { return "users" }

// UserRepository finders return (nil, nil) when no row matches; errors are
// reserved for store failures.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]User, int64, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
}
