package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Result is the persisted outcome of one graded submission. Rows are
// insert-only: a resubmission creates a new Result, never updates one.
type Result struct {
	gorm.Model
	UserID         uint           `gorm:"not null;index" json:"userId"`
	QuizID         uint           `gorm:"not null;index" json:"quizId"`
	Answers        datatypes.JSON `json:"answers"`
	Score          int            `gorm:"not null" json:"score"`
	TotalQuestions int            `gorm:"not null" json:"totalQuestions"`
	CorrectAnswers int            `gorm:"not null" json:"correctAnswers"`
	Passed         bool           `gorm:"not null" json:"passed"`
	TimeSpent      int            `gorm:"not null" json:"timeSpent"` // seconds
}
