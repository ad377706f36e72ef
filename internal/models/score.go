package models

// Score records a student's result on a task. A nil Score means no mark was given.
type Score struct {
	ID        int64    `db:"score_id" json:"score_id"`
	StudentID string   `db:"student_id" json:"student_id"`
	TaskID    int64    `db:"task_id" json:"task_id"`
	Score     *float64 `db:"score" json:"score"`
	Comment   *string  `db:"comment" json:"comment"`
}
