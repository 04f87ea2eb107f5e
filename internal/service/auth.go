package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/votekeeper/votekeeper-api/internal/domain"
	"github.com/votekeeper/votekeeper-api/internal/repository"
)

var (
	ErrAdminEmailExists = repository.ErrAdminEmailExists
	ErrAdminNotFound    = repository.ErrAdminNotFound
	ErrWrongPassword    = errors.New("wrong password")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

type AdministratorRepository interface {
	Create(ctx context.Context, admin domain.Administrator) (domain.Administrator, error)
	FindByID(ctx context.Context, id uint) (domain.Administrator, error)
	FindByEmail(ctx context.Context, email string) (domain.Administrator, error)
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
}

type AuthService struct {
	repo AdministratorRepository
}

func NewAuthService(repo AdministratorRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Signup hashes the plaintext password carried in admin and creates the
// administrator account.
func (s *AuthService) Signup(ctx context.Context, admin domain.Administrator) (domain.Administrator, error) {
	if len(admin.Password) < 8 {
		return domain.Administrator{}, ErrPasswordTooShort
	}

	hashed, err := hashPassword(admin.Password)
	if err != nil {
		return domain.Administrator{}, err
	}
	admin.Password = hashed

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		return domain.Administrator{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Login returns ErrAdminNotFound for an unknown email and
// ErrWrongPassword for a bad password. Callers must not leak the
// distinction to clients.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Administrator, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Administrator{}, ErrAdminNotFound
		}

		return domain.Administrator{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return domain.Administrator{}, ErrWrongPassword
	}

	return admin, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, adminID uint, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err = s.repo.UpdatePassword(ctx, adminID, hashed); err != nil {
		return fmt.Errorf("s.repo.UpdatePassword -> %w", err)
	}

	return nil
}

func (s *AuthService) FindByID(ctx context.Context, id uint) (domain.Administrator, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Administrator{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return admin, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
