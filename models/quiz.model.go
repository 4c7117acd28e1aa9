package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// Question is one multiple-choice question. CorrectAnswer is a 0-based index
// into Options and must never be sent to a client before grading.
type Question struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// QuestionList stores the ordered questions of a quiz as a JSON column
type QuestionList []Question

// Scan implements sql.Scanner so GORM can read the JSON column
func (q *QuestionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	default:
		return errors.New("unsupported type for QuestionList")
	}
}

// Value implements driver.Valuer so GORM can write the JSON column
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return nil, nil
	}
	return json.Marshal(q)
}

type Quiz struct {
	gorm.Model
	Title        string       `gorm:"not null"`
	Description  string       `gorm:"default:''"`
	PassingScore int          `gorm:"not null"` // percentage 0-100
	Duration     int          `gorm:"not null"` // whole minutes
	Questions    QuestionList `gorm:"type:json"`
	IsDeleted    bool         `gorm:"default:false"`
}
