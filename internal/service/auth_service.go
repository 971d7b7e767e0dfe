package service

import (
	"errors"
	"log"
	"time"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/repository"
	"go-poultrigo/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("email atau kata sandi salah")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Register(name, email, password string) (*model.UserResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	// Unknown email and wrong password are indistinguishable to the caller
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		// Non-fatal: the login itself succeeded
		log.Println("auth: update last_login:", err)
	}
	now := time.Now()
	user.LastLogin = &now

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) Register(name, email, password string) (*model.UserResponse, error) {
	if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Name:  name,
		Email: email,
		Role:  model.RoleGuest,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}
