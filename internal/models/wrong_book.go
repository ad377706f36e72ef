package models

import (
	"encoding/json"
	"time"
)

// WrongBook summarises the words a student has missed.
type WrongBook struct {
	ID         int64      `db:"book_id"`
	StudentID  string     `db:"student_id"`
	WordCount  *int       `db:"word_count"`
	CreateTime *time.Time `db:"create_time"`
}

// MarshalJSON implements json.Marshaler.
func (w WrongBook) MarshalJSON() ([]byte, error) {
	var created *string
	if w.CreateTime != nil {
		created = formatTime(*w.CreateTime)
	}
	return json.Marshal(struct {
		ID         int64   `json:"book_id"`
		StudentID  string  `json:"student_id"`
		WordCount  *int    `json:"word_count"`
		CreateTime *string `json:"create_time"`
	}{w.ID, w.StudentID, w.WordCount, created})
}
