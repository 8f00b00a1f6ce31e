package models

import "gorm.io/gorm"

// User exists so the API can issue its own tokens. Any issuer that signs a
// "username" claim with the shared secret is accepted just the same.
type User struct {
	gorm.Model
	Username     string `gorm:"size:100;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
}
