package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/repository"
)

var (
	ErrQuestionNotFound     = repository.ErrQuestionNotFound
	ErrMinimumQuestions     = repository.ErrMinimumQuestions
	ErrOptionNotFound       = repository.ErrOptionNotFound
	ErrQuestionTextTooShort = errors.New("question text must be at least 5 characters")
	ErrOptionLabelEmpty     = errors.New("option label must not be empty")
)

type QuestionRepository interface {
	Create(ctx context.Context, question domain.Question) (domain.Question, error)
	FindByIDForAdmin(ctx context.Context, id, adminID uint) (domain.Question, error)
	FindByElection(ctx context.Context, electionID uint) ([]domain.Question, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
	Update(ctx context.Context, id, adminID uint, text, description string) (domain.Question, error)
	DeleteGuarded(ctx context.Context, electionID, questionID uint) (bool, error)
	CreateOption(ctx context.Context, option domain.Option) (domain.Option, error)
	FindOptionsByQuestion(ctx context.Context, questionID uint) ([]domain.Option, error)
	UpdateOption(ctx context.Context, id, adminID uint, label string) (domain.Option, error)
	DeleteOption(ctx context.Context, id, adminID uint) (bool, error)
}

// ElectionGetter resolves an election for its owning administrator.
// Election-scoped question and voter operations go through it so a
// request can never touch another administrator's election.
type ElectionGetter interface {
	FindByIDForAdmin(ctx context.Context, id, adminID uint) (domain.Election, error)
}

type QuestionService struct {
	repo      QuestionRepository
	elections ElectionGetter
}

func NewQuestionService(repo QuestionRepository, elections ElectionGetter) *QuestionService {
	return &QuestionService{
		repo:      repo,
		elections: elections,
	}
}

func (s *QuestionService) AddQuestion(ctx context.Context, electionID, adminID uint, text, description string) (domain.Question, error) {
	if utf8.RuneCountInString(text) < 5 {
		return domain.Question{}, ErrQuestionTextTooShort
	}

	election, err := s.elections.FindByIDForAdmin(ctx, electionID, adminID)
	if err != nil {
		return domain.Question{}, fmt.Errorf("s.elections.FindByIDForAdmin -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Question{
		Text:        text,
		Description: description,
		ElectionID:  election.ID,
	})
	if err != nil {
		return domain.Question{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id, adminID uint) (domain.Question, error) {
	question, err := s.repo.FindByIDForAdmin(ctx, id, adminID)
	if err != nil {
		return domain.Question{}, fmt.Errorf("s.repo.FindByIDForAdmin -> %w", err)
	}

	return question, nil
}

func (s *QuestionService) ListQuestions(ctx context.Context, electionID, adminID uint) ([]domain.Question, error) {
	election, err := s.elections.FindByIDForAdmin(ctx, electionID, adminID)
	if err != nil {
		return nil, fmt.Errorf("s.elections.FindByIDForAdmin -> %w", err)
	}

	questions, err := s.repo.FindByElection(ctx, election.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByElection -> %w", err)
	}

	return questions, nil
}

func (s *QuestionService) CountQuestions(ctx context.Context, electionID, adminID uint) (int64, error) {
	election, err := s.elections.FindByIDForAdmin(ctx, electionID, adminID)
	if err != nil {
		return 0, fmt.Errorf("s.elections.FindByIDForAdmin -> %w", err)
	}

	count, err := s.repo.CountByElection(ctx, election.ID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountByElection -> %w", err)
	}

	return count, nil
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id, adminID uint, text, description string) (domain.Question, error) {
	if utf8.RuneCountInString(text) < 5 {
		return domain.Question{}, ErrQuestionTextTooShort
	}

	updated, err := s.repo.Update(ctx, id, adminID, text, description)
	if err != nil {
		return domain.Question{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteQuestion reports whether exactly one row was removed. The last
// remaining question of an election cannot be deleted; that case
// surfaces as ErrMinimumQuestions with no mutation.
func (s *QuestionService) DeleteQuestion(ctx context.Context, electionID, questionID, adminID uint) (bool, error) {
	election, err := s.elections.FindByIDForAdmin(ctx, electionID, adminID)
	if err != nil {
		return false, fmt.Errorf("s.elections.FindByIDForAdmin -> %w", err)
	}

	deleted, err := s.repo.DeleteGuarded(ctx, election.ID, questionID)
	if err != nil {
		if errors.Is(err, repository.ErrMinimumQuestions) {
			return false, ErrMinimumQuestions
		}

		return false, fmt.Errorf("s.repo.DeleteGuarded -> %w", err)
	}

	return deleted, nil
}

func (s *QuestionService) AddOption(ctx context.Context, questionID, adminID uint, label string) (domain.Option, error) {
	if label == "" {
		return domain.Option{}, ErrOptionLabelEmpty
	}

	question, err := s.repo.FindByIDForAdmin(ctx, questionID, adminID)
	if err != nil {
		return domain.Option{}, fmt.Errorf("s.repo.FindByIDForAdmin -> %w", err)
	}

	created, err := s.repo.CreateOption(ctx, domain.Option{
		Label:      label,
		QuestionID: question.ID,
	})
	if err != nil {
		return domain.Option{}, fmt.Errorf("s.repo.CreateOption -> %w", err)
	}

	return created, nil
}

func (s *QuestionService) ListOptions(ctx context.Context, questionID, adminID uint) ([]domain.Option, error) {
	question, err := s.repo.FindByIDForAdmin(ctx, questionID, adminID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByIDForAdmin -> %w", err)
	}

	options, err := s.repo.FindOptionsByQuestion(ctx, question.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindOptionsByQuestion -> %w", err)
	}

	return options, nil
}

func (s *QuestionService) UpdateOption(ctx context.Context, id, adminID uint, label string) (domain.Option, error) {
	if label == "" {
		return domain.Option{}, ErrOptionLabelEmpty
	}

	updated, err := s.repo.UpdateOption(ctx, id, adminID, label)
	if err != nil {
		return domain.Option{}, fmt.Errorf("s.repo.UpdateOption -> %w", err)
	}

	return updated, nil
}

func (s *QuestionService) DeleteOption(ctx context.Context, id, adminID uint) (bool, error) {
	deleted, err := s.repo.DeleteOption(ctx, id, adminID)
	if err != nil {
		return false, fmt.Errorf("s.repo.DeleteOption -> %w", err)
	}

	return deleted, nil
}
