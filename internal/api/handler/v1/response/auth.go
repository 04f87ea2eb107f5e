package response

import "github.com/votekeeper/votekeeper-api/internal/domain"

// SessionResponse is returned by signup and login. The CSRF token must
// be echoed back on every state-changing request for this session.
type SessionResponse struct {
	Admin     domain.Administrator `json:"admin"`
	CSRFToken string               `json:"csrf_token"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
