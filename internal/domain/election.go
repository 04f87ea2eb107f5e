package domain

import "time"

type Election struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	AdminID   uint      `json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ElectionOverview is an Election together with the counts shown on
// its management page. Counts are computed fresh on every read.
type ElectionOverview struct {
	Election
	NumberOfQuestions int64 `json:"number_of_questions"`
	NumberOfVoters    int64 `json:"number_of_voters"`
}
