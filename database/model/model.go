// Package model defines the database entities of the panel.
package model

// Account is a registered user of the panel. Username and email are unique
// across all accounts; the store enforces both via unique indexes, so a
// racing duplicate insert fails at the database rather than slipping past
// the application-level checks.
type Account struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email        string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:128"`
}
