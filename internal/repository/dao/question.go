package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrMinimumQuestions = errors.New("an election must keep at least one question")
	ErrOptionNotFound   = errors.New("option not found")
)

type Question struct {
	ID uint `gorm:"primaryKey"`

	Text        string `gorm:"not null"`
	Description string
	ElectionID  uint `gorm:"index;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Option struct {
	ID uint `gorm:"primaryKey"`

	Label      string `gorm:"not null"`
	QuestionID uint   `gorm:"index;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Ownership subqueries. Question and option routes address rows by bare
// ID, so every read and write re-resolves the owning administrator
// through the election chain.
const (
	ownedElections = "SELECT id FROM elections WHERE admin_id = ?"
	ownedQuestions = "SELECT questions.id FROM questions " +
		"JOIN elections ON elections.id = questions.election_id WHERE elections.admin_id = ?"
)

type QuestionDAO struct {
	db *gorm.DB
}

func NewQuestionDAO(db *gorm.DB) *QuestionDAO {
	return &QuestionDAO{
		db: db,
	}
}

func (d *QuestionDAO) Insert(ctx context.Context, question Question) (Question, error) {
	result := d.db.WithContext(ctx).Create(&question)
	if result.Error != nil {
		return Question{}, result.Error
	}

	return question, nil
}

func (d *QuestionDAO) FindByIDForAdmin(ctx context.Context, id, adminID uint) (Question, error) {
	var question Question

	result := d.db.WithContext(ctx).
		First(&question, "id = ? AND election_id IN ("+ownedElections+")", id, adminID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Question{}, ErrQuestionNotFound
		}

		return Question{}, result.Error
	}

	return question, nil
}

func (d *QuestionDAO) FindByElection(ctx context.Context, electionID uint) ([]Question, error) {
	var questions []Question

	result := d.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("id").
		Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}

	return questions, nil
}

// CountByElection is computed fresh on every call; the delete guard
// depends on it never being cached.
func (d *QuestionDAO) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Question{}).
		Where("election_id = ?", electionID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *QuestionDAO) Update(ctx context.Context, id, adminID uint, text, description string) (Question, error) {
	result := d.db.WithContext(ctx).
		Model(&Question{}).
		Where("id = ? AND election_id IN ("+ownedElections+")", id, adminID).
		Updates(map[string]interface{}{
			"text":        text,
			"description": description,
		})
	if result.Error != nil {
		return Question{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Question{}, ErrQuestionNotFound
	}

	return d.FindByIDForAdmin(ctx, id, adminID)
}

// DeleteGuarded removes the question only when the election would keep
// at least one question afterwards. The sibling rows are locked before
// counting so two concurrent deletes cannot both pass the guard.
func (d *QuestionDAO) DeleteGuarded(ctx context.Context, electionID, questionID uint) (bool, error) {
	deleted := false

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		err := tx.Model(&Question{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("election_id = ?", electionID).
			Pluck("id", &ids).Error
		if err != nil {
			return err
		}

		if len(ids) <= 1 {
			return ErrMinimumQuestions
		}

		result := tx.
			Where("id = ? AND election_id = ?", questionID, electionID).
			Delete(&Question{})
		if result.Error != nil {
			return result.Error
		}

		deleted = result.RowsAffected == 1

		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

func (d *QuestionDAO) InsertOption(ctx context.Context, option Option) (Option, error) {
	result := d.db.WithContext(ctx).Create(&option)
	if result.Error != nil {
		return Option{}, result.Error
	}

	return option, nil
}

func (d *QuestionDAO) FindOptionsByQuestion(ctx context.Context, questionID uint) ([]Option, error) {
	var options []Option

	result := d.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("id").
		Find(&options)
	if result.Error != nil {
		return nil, result.Error
	}

	return options, nil
}

func (d *QuestionDAO) UpdateOption(ctx context.Context, id, adminID uint, label string) (Option, error) {
	result := d.db.WithContext(ctx).
		Model(&Option{}).
		Where("id = ? AND question_id IN ("+ownedQuestions+")", id, adminID).
		Update("label", label)
	if result.Error != nil {
		return Option{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Option{}, ErrOptionNotFound
	}

	var option Option
	if err := d.db.WithContext(ctx).First(&option, id).Error; err != nil {
		return Option{}, err
	}

	return option, nil
}

func (d *QuestionDAO) DeleteOption(ctx context.Context, id, adminID uint) (bool, error) {
	result := d.db.WithContext(ctx).
		Where("id = ? AND question_id IN ("+ownedQuestions+")", id, adminID).
		Delete(&Option{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
