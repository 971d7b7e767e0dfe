package service

import (
	"errors"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

type OrderService interface {
	ListByUser(userID uuid.UUID) ([]model.Order, error)
	ListAll() ([]model.Order, error)
	UpdateStatus(id uuid.UUID, status model.OrderStatus) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) ListByUser(userID uuid.UUID) ([]model.Order, error) {
	return s.orderRepo.FindByUser(userID)
}

func (s *orderService) ListAll() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

// UpdateStatus accepts any member of the status set; there is no enforced
// transition graph.
func (s *orderService) UpdateStatus(id uuid.UUID, status model.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if _, err := s.orderRepo.FindByID(id); err != nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.UpdateStatus(id, status)
}
