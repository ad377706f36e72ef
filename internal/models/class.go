package models

// Class represents a teaching class. StudentCount is derived from the students table
// at read time.
type Class struct {
	ClassID       string  `db:"class_id" json:"class_id"`
	ClassName     string  `db:"class_name" json:"class_name"`
	HeadTeacherID *string `db:"head_teacher_id" json:"head_teacher_id"`
	StudentCount  int     `db:"student_count" json:"student_count"`
}
