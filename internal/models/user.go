package models

import (
	"time"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"unique;not null"`
	FirstName      string    `json:"firstName" gorm:"not null"`
	LastName       string    `json:"lastName" gorm:"not null"`
	Password       string    `json:"-" gorm:"not null"`
	EmailVerified  bool      `json:"-" gorm:"not null;default:false"`
	ProfilePicKey  *string   `json:"-"`
	AccountCreated time.Time `json:"accountCreated" gorm:"autoCreateTime"`
	AccountUpdated time.Time `json:"accountUpdated" gorm:"autoUpdateTime"`
}

// SentEmail tracks an issued email-verification token. A token is spent the
// moment its status flips to VERIFIED; it is never updated afterwards.
type SentEmail struct {
	ID     uint      `gorm:"primaryKey"`
	Token  string    `gorm:"unique;not null"`
	Email  string    `gorm:"not null"`
	SentAt time.Time `gorm:"not null"`
	Status string    `gorm:"not null;default:PENDING"`
}

const (
	EmailStatusPending  = "PENDING"
	EmailStatusVerified = "VERIFIED"
)
