package service

import (
	"errors"

	"go-store-pos/internal/model"
	"go-store-pos/internal/repository"
	"go-store-pos/pkg/jwt"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(email, password string) (string, *model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(uRepo repository.UserRepository) AuthService {
	return &authService{userRepo: uRepo}
}

func (s *authService) Login(email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, invalid(nil, "email and password are required fields")
	}

	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, &StoreError{Op: "lookup user", Err: err}
	}

	if !user.CheckPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
