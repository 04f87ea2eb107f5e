package response

import "github.com/votekeeper/votekeeper-api/internal/domain"

type ListElectionsResponse struct {
	Elections []domain.Election `json:"elections"`
}

type ListQuestionsResponse struct {
	Questions []domain.Question `json:"questions"`
}

// QuestionResponse is the question page payload: the question plus its
// options.
type QuestionResponse struct {
	Question domain.Question `json:"question"`
	Options  []domain.Option `json:"options"`
}

type ListVotersResponse struct {
	Voters []domain.Voter `json:"voters"`
}
