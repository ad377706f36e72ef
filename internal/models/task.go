package models

import (
	"encoding/json"
	"time"
)

// DateTimeLayout is the textual date-time format used in responses.
const DateTimeLayout = "2006-01-02T15:04:05"

// Task is an assignment window that scores are recorded against.
type Task struct {
	ID          int64     `db:"task_id"`
	TaskName    string    `db:"task_name"`
	Description *string   `db:"description"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
}

// MarshalJSON implements json.Marshaler.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int64   `json:"task_id"`
		TaskName    string  `json:"task_name"`
		Description *string `json:"description"`
		StartTime   *string `json:"start_time"`
		EndTime     *string `json:"end_time"`
	}{
		ID:          t.ID,
		TaskName:    t.TaskName,
		Description: t.Description,
		StartTime:   formatTime(t.StartTime),
		EndTime:     formatTime(t.EndTime),
	})
}

func formatTime(ts time.Time) *string {
	if ts.IsZero() {
		return nil
	}
	s := ts.Format(DateTimeLayout)
	return &s
}
