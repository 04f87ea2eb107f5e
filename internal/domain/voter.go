package domain

import "time"

type Voter struct {
	ID         uint      `json:"id"`
	VoterID    string    `json:"voter_id"`
	Password   string    `json:"-"`
	ElectionID uint      `json:"election_id"`
	Voted      bool      `json:"voted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
