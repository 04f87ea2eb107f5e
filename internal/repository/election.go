package repository

import (
	"context"
	"fmt"

	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/repository/dao"
)

var ErrElectionNotFound = dao.ErrElectionNotFound

type ElectionDAO interface {
	Insert(ctx context.Context, election dao.Election) (dao.Election, error)
	FindByAdmin(ctx context.Context, adminID uint) ([]dao.Election, error)
	FindByIDForAdmin(ctx context.Context, id, adminID uint) (dao.Election, error)
}

type ElectionRepository struct {
	dao ElectionDAO
}

func NewElectionRepository(dao ElectionDAO) *ElectionRepository {
	return &ElectionRepository{
		dao: dao,
	}
}

func (r *ElectionRepository) Create(ctx context.Context, election domain.Election) (domain.Election, error) {
	created, err := r.dao.Insert(ctx, dao.Election{
		Name:    election.Name,
		AdminID: election.AdminID,
	})
	if err != nil {
		return domain.Election{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ElectionRepository) FindByAdmin(ctx context.Context, adminID uint) ([]domain.Election, error) {
	found, err := r.dao.FindByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByAdmin -> %w", err)
	}

	elections := make([]domain.Election, 0, len(found))
	for _, e := range found {
		elections = append(elections, r.daoToDomain(e))
	}

	return elections, nil
}

func (r *ElectionRepository) FindByIDForAdmin(ctx context.Context, id, adminID uint) (domain.Election, error) {
	found, err := r.dao.FindByIDForAdmin(ctx, id, adminID)
	if err != nil {
		return domain.Election{}, fmt.Errorf("r.dao.FindByIDForAdmin -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ElectionRepository) daoToDomain(e dao.Election) domain.Election {
	return domain.Election{
		ID:        e.ID,
		Name:      e.Name,
		AdminID:   e.AdminID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
