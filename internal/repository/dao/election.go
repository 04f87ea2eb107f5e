package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrElectionNotFound = errors.New("election not found")

type Election struct {
	ID uint `gorm:"primaryKey"`

	Name    string `gorm:"not null"`
	AdminID uint   `gorm:"index;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ElectionDAO struct {
	db *gorm.DB
}

func NewElectionDAO(db *gorm.DB) *ElectionDAO {
	return &ElectionDAO{
		db: db,
	}
}

func (d *ElectionDAO) Insert(ctx context.Context, election Election) (Election, error) {
	result := d.db.WithContext(ctx).Create(&election)
	if result.Error != nil {
		return Election{}, result.Error
	}

	return election, nil
}

// FindByAdmin returns only elections owned by adminID. This scoping is
// the authorization boundary for election visibility.
func (d *ElectionDAO) FindByAdmin(ctx context.Context, adminID uint) ([]Election, error) {
	var elections []Election

	result := d.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("id").
		Find(&elections)
	if result.Error != nil {
		return nil, result.Error
	}

	return elections, nil
}

// FindByIDForAdmin misses when the election exists but belongs to a
// different administrator, so cross-tenant reads look like not-found.
func (d *ElectionDAO) FindByIDForAdmin(ctx context.Context, id, adminID uint) (Election, error) {
	var election Election

	result := d.db.WithContext(ctx).
		First(&election, "id = ? AND admin_id = ?", id, adminID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Election{}, ErrElectionNotFound
		}

		return Election{}, result.Error
	}

	return election, nil
}
