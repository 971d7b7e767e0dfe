package service

import (
	"errors"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/repository"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	GetAll() ([]model.UserResponse, error)
	Create(name, email, password string, role model.Role) (*model.UserResponse, error)
	Update(id uuid.UUID, name, email, password string, role model.Role) (*model.UserResponse, error)
	Delete(id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAll() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *userService) Create(name, email, password string, role model.Role) (*model.UserResponse, error) {
	if !role.Valid() {
		return nil, errors.New("invalid role")
	}
	if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Name:  name,
		Email: email,
		Role:  role,
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

// Update changes identity fields; the password only when one is provided.
func (s *userService) Update(id uuid.UUID, name, email, password string, role model.Role) (*model.UserResponse, error) {
	if !role.Valid() {
		return nil, errors.New("invalid role")
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	taken, err := s.userRepo.EmailTakenByOther(email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user.Name = name
	user.Email = email
	user.Role = role
	if password != "" {
		if err := user.SetPassword(password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Delete(id uuid.UUID) error {
	return s.userRepo.Delete(id)
}
