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
	ErrElectionNotFound     = repository.ErrElectionNotFound
	ErrElectionNameTooShort = errors.New("election name must be at least 5 characters")
)

type ElectionRepository interface {
	Create(ctx context.Context, election domain.Election) (domain.Election, error)
	FindByAdmin(ctx context.Context, adminID uint) ([]domain.Election, error)
	FindByIDForAdmin(ctx context.Context, id, adminID uint) (domain.Election, error)
}

type ElectionQuestionCounter interface {
	CountByElection(ctx context.Context, electionID uint) (int64, error)
}

type ElectionVoterCounter interface {
	CountByElection(ctx context.Context, electionID uint) (int64, error)
}

type ElectionService struct {
	repo      ElectionRepository
	questions ElectionQuestionCounter
	voters    ElectionVoterCounter
}

func NewElectionService(repo ElectionRepository, questions ElectionQuestionCounter, voters ElectionVoterCounter) *ElectionService {
	return &ElectionService{
		repo:      repo,
		questions: questions,
		voters:    voters,
	}
}

func (s *ElectionService) Create(ctx context.Context, name string, adminID uint) (domain.Election, error) {
	if utf8.RuneCountInString(name) < 5 {
		return domain.Election{}, ErrElectionNameTooShort
	}

	created, err := s.repo.Create(ctx, domain.Election{
		Name:    name,
		AdminID: adminID,
	})
	if err != nil {
		return domain.Election{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ElectionService) List(ctx context.Context, adminID uint) ([]domain.Election, error) {
	elections, err := s.repo.FindByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByAdmin -> %w", err)
	}

	return elections, nil
}

func (s *ElectionService) Get(ctx context.Context, id, adminID uint) (domain.Election, error) {
	election, err := s.repo.FindByIDForAdmin(ctx, id, adminID)
	if err != nil {
		return domain.Election{}, fmt.Errorf("s.repo.FindByIDForAdmin -> %w", err)
	}

	return election, nil
}

// Overview fetches the election plus its question and voter counts.
// Counts are read fresh per call.
func (s *ElectionService) Overview(ctx context.Context, id, adminID uint) (domain.ElectionOverview, error) {
	election, err := s.repo.FindByIDForAdmin(ctx, id, adminID)
	if err != nil {
		return domain.ElectionOverview{}, fmt.Errorf("s.repo.FindByIDForAdmin -> %w", err)
	}

	numQuestions, err := s.questions.CountByElection(ctx, election.ID)
	if err != nil {
		return domain.ElectionOverview{}, fmt.Errorf("s.questions.CountByElection -> %w", err)
	}

	numVoters, err := s.voters.CountByElection(ctx, election.ID)
	if err != nil {
		return domain.ElectionOverview{}, fmt.Errorf("s.voters.CountByElection -> %w", err)
	}

	return domain.ElectionOverview{
		Election:          election,
		NumberOfQuestions: numQuestions,
		NumberOfVoters:    numVoters,
	}, nil
}
