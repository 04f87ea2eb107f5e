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
	ErrAdminEmailExists = errors.New("administrator already exists")
	ErrAdminNotFound    = errors.New("administrator not found")
)

type Administrator struct {
	ID uint `gorm:"primaryKey"`

	FirstName string `gorm:"not null"`
	LastName  string
	Email     string `gorm:"uniqueIndex:idx_administrators_email;not null"`
	Password  string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AdministratorDAO struct {
	db *gorm.DB
}

func NewAdministratorDAO(db *gorm.DB) *AdministratorDAO {
	return &AdministratorDAO{
		db: db,
	}
}

func (d *AdministratorDAO) Insert(ctx context.Context, admin Administrator) (Administrator, error) {
	result := d.db.WithContext(ctx).Create(&admin)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_administrators_email") {
			return Administrator{}, ErrAdminEmailExists
		}

		return Administrator{}, result.Error
	}

	return admin, nil
}

func (d *AdministratorDAO) FindByID(ctx context.Context, id uint) (Administrator, error) {
	var admin Administrator

	result := d.db.WithContext(ctx).First(&admin, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Administrator{}, ErrAdminNotFound
		}

		return Administrator{}, result.Error
	}

	return admin, nil
}

func (d *AdministratorDAO) FindByEmail(ctx context.Context, email string) (Administrator, error) {
	var admin Administrator

	result := d.db.WithContext(ctx).First(&admin, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Administrator{}, ErrAdminNotFound
		}

		return Administrator{}, result.Error
	}

	return admin, nil
}

func (d *AdministratorDAO) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	result := d.db.WithContext(ctx).
		Model(&Administrator{}).
		Where("id = ?", id).
		Update("password", hashedPassword)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}

	return nil
}
