package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/repository"
)

var (
	ErrVoterIDExists       = repository.ErrVoterIDExists
	ErrVoterNotFound       = repository.ErrVoterNotFound
	ErrVoterFieldsRequired = errors.New("voter ID and password are required")
)

type VoterRepository interface {
	Create(ctx context.Context, voter domain.Voter) (domain.Voter, error)
	FindByElection(ctx context.Context, electionID uint) ([]domain.Voter, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
	Delete(ctx context.Context, id, electionID uint) (bool, error)
	UpdatePassword(ctx context.Context, id, electionID uint, hashedPassword string) error
}

type VoterService struct {
	repo      VoterRepository
	elections ElectionGetter
}

func NewVoterService(repo VoterRepository, elections ElectionGetter) *VoterService {
	return &VoterService{
		repo:      repo,
		elections: elections,
	}
}

func (s *VoterService) Create(ctx context.Context, electionID, adminID uint, voterID, password string) (domain.Voter, error) {
	if voterID == "" || password == "" {
		return domain.Voter{}, ErrVoterFieldsRequired
	}

	election, err := s.elections.FindByIDForAdmin(ctx, electionID, adminID)
	if err != nil {
		return domain.Voter{}, fmt.Errorf("s.elections.FindByIDForAdmin -> %w", err)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return domain.Voter{}, err
	}

	created, err := s.repo.Create(ctx, domain.Voter{
		VoterID:    voterID,
		Password:   hashed,
		ElectionID: election.ID,
	})
	if err != nil {
		return domain.Voter{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *VoterService) List(ctx context.Context, electionID, adminID uint) ([]domain.Voter, error) {
	election, err := s.elections.FindByIDForAdmin(ctx, electionID, adminID)
	if err != nil {
		return nil, fmt.Errorf("s.elections.FindByIDForAdmin -> %w", err)
	}

	voters, err := s.repo.FindByElection(ctx, election.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByElection -> %w", err)
	}

	return voters, nil
}

func (s *VoterService) Count(ctx context.Context, electionID, adminID uint) (int64, error) {
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

func (s *VoterService) Delete(ctx context.Context, electionID, voterID, adminID uint) (bool, error) {
	election, err := s.elections.FindByIDForAdmin(ctx, electionID, adminID)
	if err != nil {
		return false, fmt.Errorf("s.elections.FindByIDForAdmin -> %w", err)
	}

	deleted, err := s.repo.Delete(ctx, voterID, election.ID)
	if err != nil {
		return false, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}

func (s *VoterService) ResetPassword(ctx context.Context, electionID, voterID, adminID uint, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	election, err := s.elections.FindByIDForAdmin(ctx, electionID, adminID)
	if err != nil {
		return fmt.Errorf("s.elections.FindByIDForAdmin -> %w", err)
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err = s.repo.UpdatePassword(ctx, voterID, election.ID, hashed); err != nil {
		return fmt.Errorf("s.repo.UpdatePassword -> %w", err)
	}

	return nil
}
