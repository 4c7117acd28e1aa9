package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name            string    `gorm:"default:''"`
	Email           string    `gorm:"unique;not null"`
	Password        string    `gorm:"not null" json:"-"`
	Role            string    `gorm:"default:'USER'"` // USER, ADMIN
	IsEmailVerified bool      `gorm:"default:false"`
	LastLogin       time.Time `gorm:"default:NULL"`
	IsDeleted       bool      `gorm:"default:false"`
}
