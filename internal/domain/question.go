package domain

import "time"

type Question struct {
	ID          uint      `json:"id"`
	Text        string    `json:"text"`
	Description string    `json:"description"`
	ElectionID  uint      `json:"election_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Option struct {
	ID         uint      `json:"id"`
	Label      string    `json:"label"`
	QuestionID uint      `json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
