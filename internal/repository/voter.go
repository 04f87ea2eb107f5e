package repository

import (
	"context"
	"fmt"

	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/repository/dao"
)

var (
	ErrVoterIDExists = dao.ErrVoterIDExists
	ErrVoterNotFound = dao.ErrVoterNotFound
)

type VoterDAO interface {
	Insert(ctx context.Context, voter dao.Voter) (dao.Voter, error)
	FindByElection(ctx context.Context, electionID uint) ([]dao.Voter, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
	Delete(ctx context.Context, id, electionID uint) (bool, error)
	UpdatePassword(ctx context.Context, id, electionID uint, hashedPassword string) error
}

type VoterRepository struct {
	dao VoterDAO
}

func NewVoterRepository(dao VoterDAO) *VoterRepository {
	return &VoterRepository{
		dao: dao,
	}
}

func (r *VoterRepository) Create(ctx context.Context, voter domain.Voter) (domain.Voter, error) {
	created, err := r.dao.Insert(ctx, dao.Voter{
		VoterID:    voter.VoterID,
		Password:   voter.Password,
		ElectionID: voter.ElectionID,
	})
	if err != nil {
		return domain.Voter{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VoterRepository) FindByElection(ctx context.Context, electionID uint) ([]domain.Voter, error) {
	found, err := r.dao.FindByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByElection -> %w", err)
	}

	voters := make([]domain.Voter, 0, len(found))
	for _, v := range found {
		voters = append(voters, r.daoToDomain(v))
	}

	return voters, nil
}

func (r *VoterRepository) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	count, err := r.dao.CountByElection(ctx, electionID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByElection -> %w", err)
	}

	return count, nil
}

func (r *VoterRepository) Delete(ctx context.Context, id, electionID uint) (bool, error) {
	deleted, err := r.dao.Delete(ctx, id, electionID)
	if err != nil {
		return false, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return deleted, nil
}

func (r *VoterRepository) UpdatePassword(ctx context.Context, id, electionID uint, hashedPassword string) error {
	if err := r.dao.UpdatePassword(ctx, id, electionID, hashedPassword); err != nil {
		return fmt.Errorf("r.dao.UpdatePassword -> %w", err)
	}

	return nil
}

func (r *VoterRepository) daoToDomain(v dao.Voter) domain.Voter {
	return domain.Voter{
		ID:         v.ID,
		VoterID:    v.VoterID,
		Password:   v.Password,
		ElectionID: v.ElectionID,
		Voted:      v.Voted,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
