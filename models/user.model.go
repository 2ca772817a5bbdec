package models

import "time"

// User mirrors the identity provider's subject. The ID is the Clerk user id,
// never generated locally.
type User struct {
	ID        string `json:"_id" gorm:"primaryKey"`
	Email     string `json:"email" gorm:"unique;not null"`
	Name      string `json:"name" gorm:"default:''"`
	ImageURL  string `json:"imageUrl" gorm:"default:''"`
	Role      string `json:"role" gorm:"default:'student'"` // student, educator
	CreatedAt time.Time
	UpdatedAt time.Time
}
