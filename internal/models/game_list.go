package models

import "time"

// GameList is a named, user-owned collection of games.
// User is set once at creation from the authenticated caller and never
// changed by updates. Name is unique across all lists; the store enforces it.
type GameList struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;unique;not null"`
	Description string

	// "user" is a reserved word in postgres; every raw filter on this
	// column must quote it.
	User string `gorm:"column:user;size:100;not null;index"`

	// No column default on purpose: gorm omits zero-valued fields that have
	// one, which would turn an explicit is_private=false into true. Creation
	// always sets the flag from the request, where it is required.
	IsPrivate bool `gorm:"not null"`

	Games     []*Game `gorm:"many2many:game_game_lists;constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
