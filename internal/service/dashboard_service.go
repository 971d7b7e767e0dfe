package service

import (
	"time"

	"go-poultrigo/internal/repository"
)

type DashboardService interface {
	GetOrderVolume(days int) ([]repository.OrderVolumeData, error)
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
}

func NewDashboardService(orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{orderRepo: orderRepo}
}

func (s *dashboardService) GetOrderVolume(days int) ([]repository.OrderVolumeData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.orderRepo.GetOrderVolume(startDate, endDate)
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.orderRepo.GetDashboardStats()
}
