package repository

import (
	"context"
	"fmt"

	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/repository/dao"
)

var (
	ErrQuestionNotFound = dao.ErrQuestionNotFound
	ErrMinimumQuestions = dao.ErrMinimumQuestions
	ErrOptionNotFound   = dao.ErrOptionNotFound
)

type QuestionDAO interface {
	Insert(ctx context.Context, question dao.Question) (dao.Question, error)
	FindByIDForAdmin(ctx context.Context, id, adminID uint) (dao.Question, error)
	FindByElection(ctx context.Context, electionID uint) ([]dao.Question, error)
	CountByElection(ctx context.Context, electionID uint) (int64, error)
	Update(ctx context.Context, id, adminID uint, text, description string) (dao.Question, error)
	DeleteGuarded(ctx context.Context, electionID, questionID uint) (bool, error)
	InsertOption(ctx context.Context, option dao.Option) (dao.Option, error)
	FindOptionsByQuestion(ctx context.Context, questionID uint) ([]dao.Option, error)
	UpdateOption(ctx context.Context, id, adminID uint, label string) (dao.Option, error)
	DeleteOption(ctx context.Context, id, adminID uint) (bool, error)
}

type QuestionRepository struct {
	dao QuestionDAO
}

func NewQuestionRepository(dao QuestionDAO) *QuestionRepository {
	return &QuestionRepository{
		dao: dao,
	}
}

func (r *QuestionRepository) Create(ctx context.Context, question domain.Question) (domain.Question, error) {
	created, err := r.dao.Insert(ctx, dao.Question{
		Text:        question.Text,
		Description: question.Description,
		ElectionID:  question.ElectionID,
	})
	if err != nil {
		return domain.Question{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *QuestionRepository) FindByIDForAdmin(ctx context.Context, id, adminID uint) (domain.Question, error) {
	found, err := r.dao.FindByIDForAdmin(ctx, id, adminID)
	if err != nil {
		return domain.Question{}, fmt.Errorf("r.dao.FindByIDForAdmin -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *QuestionRepository) FindByElection(ctx context.Context, electionID uint) ([]domain.Question, error) {
	found, err := r.dao.FindByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByElection -> %w", err)
	}

	questions := make([]domain.Question, 0, len(found))
	for _, q := range found {
		questions = append(questions, r.daoToDomain(q))
	}

	return questions, nil
}

func (r *QuestionRepository) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	count, err := r.dao.CountByElection(ctx, electionID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByElection -> %w", err)
	}

	return count, nil
}

func (r *QuestionRepository) Update(ctx context.Context, id, adminID uint, text, description string) (domain.Question, error) {
	updated, err := r.dao.Update(ctx, id, adminID, text, description)
	if err != nil {
		return domain.Question{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *QuestionRepository) DeleteGuarded(ctx context.Context, electionID, questionID uint) (bool, error) {
	deleted, err := r.dao.DeleteGuarded(ctx, electionID, questionID)
	if err != nil {
		return false, fmt.Errorf("r.dao.DeleteGuarded -> %w", err)
	}

	return deleted, nil
}

func (r *QuestionRepository) CreateOption(ctx context.Context, option domain.Option) (domain.Option, error) {
	created, err := r.dao.InsertOption(ctx, dao.Option{
		Label:      option.Label,
		QuestionID: option.QuestionID,
	})
	if err != nil {
		return domain.Option{}, fmt.Errorf("r.dao.InsertOption -> %w", err)
	}

	return r.optionDaoToDomain(created), nil
}

func (r *QuestionRepository) FindOptionsByQuestion(ctx context.Context, questionID uint) ([]domain.Option, error) {
	found, err := r.dao.FindOptionsByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOptionsByQuestion -> %w", err)
	}

	options := make([]domain.Option, 0, len(found))
	for _, o := range found {
		options = append(options, r.optionDaoToDomain(o))
	}

	return options, nil
}

func (r *QuestionRepository) UpdateOption(ctx context.Context, id, adminID uint, label string) (domain.Option, error) {
	updated, err := r.dao.UpdateOption(ctx, id, adminID, label)
	if err != nil {
		return domain.Option{}, fmt.Errorf("r.dao.UpdateOption -> %w", err)
	}

	return r.optionDaoToDomain(updated), nil
}

func (r *QuestionRepository) DeleteOption(ctx context.Context, id, adminID uint) (bool, error) {
	deleted, err := r.dao.DeleteOption(ctx, id, adminID)
	if err != nil {
		return false, fmt.Errorf("r.dao.DeleteOption -> %w", err)
	}

	return deleted, nil
}

func (r *QuestionRepository) daoToDomain(q dao.Question) domain.Question {
	return domain.Question{
		ID:          q.ID,
		Text:        q.Text,
		Description: q.Description,
		ElectionID:  q.ElectionID,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (r *QuestionRepository) optionDaoToDomain(o dao.Option) domain.Option {
	return domain.Option{
		ID:         o.ID,
		Label:      o.Label,
		QuestionID: o.QuestionID,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
