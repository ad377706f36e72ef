package models

// Word is a vocabulary entry.
type Word struct {
	ID      int64   `db:"word_id" json:"word_id"`
	Content string  `db:"content" json:"content"`
	Meaning string  `db:"meaning" json:"meaning"`
	Speech  *string `db:"speech" json:"speech"`
	IsWrong bool    `db:"is_wrong" json:"is_wrong"`
}
