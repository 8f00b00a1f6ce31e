package models

import "time"

// Game represents an entry in the shared game catalog. The ID comes from the
// caller (it mirrors the upstream catalog's identifier), so it is a plain
// primary key without autoincrement. Rows are created lazily when a list
// update references an unknown id and are never updated or deleted afterwards.
type Game struct {
	ID               uint   `gorm:"primaryKey;autoIncrement:false"`
	Title            string `gorm:"size:255;not null"`
	Thumbnail        string
	ShortDescription string
	GameURL          string
	Genre            string `gorm:"size:255"`
	Platform         string `gorm:"size:255"`
	Publisher        string `gorm:"size:255"`
	Developer        string `gorm:"size:255"`
	ReleaseDate      *time.Time
}
