package domain

import "context"

// State is a lookup entry referenced by User.StateID. Rows are only ever
// created, never updated or removed.
type State struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`
}

func (State) TableName() string { return "states" }

type StateRepository interface {
	Create(ctx context.Context, s *State) error
	List(ctx context.Context) ([]State, error)
}
