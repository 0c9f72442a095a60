package repository

import "time"

// Client is the database record for a registered client. Phones and Emails
// are ordered lists stored as a JSON column rather than any runtime-specific
// serialization, so the storage format stays portable.
type Client struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;not null;size:80"`
	Password  string    `gorm:"not null;size:120"`
	Name      string    `gorm:"not null;size:120"`
	DOB       time.Time `gorm:"not null"`
	Phones    []string  `gorm:"serializer:json;not null"`
	Emails    []string  `gorm:"serializer:json;not null"`
	Account   *Account
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Account is the database record holding a client's balance. The unique index
// on ClientID enforces the one-account-per-client relationship at the schema
// level.
type Account struct {
	ID             uint    `gorm:"primaryKey"`
	ClientID       uint    `gorm:"uniqueIndex;not null"`
	InitialBalance float64 `gorm:"not null"`
	CurrentBalance float64 `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
