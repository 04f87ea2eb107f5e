package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrVoterIDExists = errors.New("voter ID already registered for this election")
	ErrVoterNotFound = errors.New("voter not found")
)

type Voter struct {
	ID uint `gorm:"primaryKey"`

	VoterID    string `gorm:"uniqueIndex:idx_voters_election_voter;not null"`
	Password   string `gorm:"not null"`
	ElectionID uint   `gorm:"uniqueIndex:idx_voters_election_voter;index;not null"`
	Voted      bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VoterDAO struct {
	db *gorm.DB
}

func NewVoterDAO(db *gorm.DB) *VoterDAO {
	return &VoterDAO{
		db: db,
	}
}

func (d *VoterDAO) Insert(ctx context.Context, voter Voter) (Voter, error) {
	result := d.db.WithContext(ctx).Create(&voter)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_voters_election_voter") {
			return Voter{}, ErrVoterIDExists
		}

		return Voter{}, result.Error
	}

	return voter, nil
}

func (d *VoterDAO) FindByElection(ctx context.Context, electionID uint) ([]Voter, error) {
	var voters []Voter

	result := d.db.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("id").
		Find(&voters)
	if result.Error != nil {
		return nil, result.Error
	}

	return voters, nil
}

func (d *VoterDAO) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Voter{}).
		Where("election_id = ?", electionID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *VoterDAO) Delete(ctx context.Context, id, electionID uint) (bool, error) {
	result := d.db.WithContext(ctx).
		Where("id = ? AND election_id = ?", id, electionID).
		Delete(&Voter{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (d *VoterDAO) UpdatePassword(ctx context.Context, id, electionID uint, hashedPassword string) error {
	result := d.db.WithContext(ctx).
		Model(&Voter{}).
		Where("id = ? AND election_id = ?", id, electionID).
		Update("password", hashedPassword)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVoterNotFound
	}

	return nil
}
