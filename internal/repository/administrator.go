package repository

import (
	"context"
	"fmt"

	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/repository/dao"
)

var (
	ErrAdminEmailExists = dao.ErrAdminEmailExists
	ErrAdminNotFound    = dao.ErrAdminNotFound
)

type AdministratorDAO interface {
	Insert(ctx context.Context, admin dao.Administrator) (dao.Administrator, error)
	FindByID(ctx context.Context, id uint) (dao.Administrator, error)
	FindByEmail(ctx context.Context, email string) (dao.Administrator, error)
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
}

type AdministratorRepository struct {
	dao AdministratorDAO
}

func NewAdministratorRepository(dao AdministratorDAO) *AdministratorRepository {
	return &AdministratorRepository{
		dao: dao,
	}
}

func (r *AdministratorRepository) Create(ctx context.Context, admin domain.Administrator) (domain.Administrator, error) {
	created, err := r.dao.Insert(ctx, dao.Administrator{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		Password:  admin.Password,
	})
	if err != nil {
		return domain.Administrator{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AdministratorRepository) FindByID(ctx context.Context, id uint) (domain.Administrator, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Administrator{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AdministratorRepository) FindByEmail(ctx context.Context, email string) (domain.Administrator, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Administrator{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AdministratorRepository) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	if err := r.dao.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return fmt.Errorf("r.dao.UpdatePassword -> %w", err)
	}

	return nil
}

func (r *AdministratorRepository) daoToDomain(a dao.Administrator) domain.Administrator {
	return domain.Administrator{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Password:  a.Password,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
