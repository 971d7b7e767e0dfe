package service

import (
	"errors"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/repository"
	"go-poultrigo/internal/ws"
	"go-poultrigo/pkg/validator"

	"github.com/google/uuid"
)

// ProductService covers admin catalog management. Shop-facing reads live on
// ShopService.
type ProductService interface {
	GetAll() ([]model.Product, error)
	Create(req *model.Product) error
	Update(id uuid.UUID, req *model.Product) (*model.Product, error)
	Delete(id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{productRepo: pRepo, wsHub: hub}
}

func (s *productService) GetAll() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) Create(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return errors.New(validator.FirstMessage(errs))
	}
	if req.Status == "" {
		req.Status = model.ProductActive
	}

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	go s.wsHub.BroadcastEvent(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_created",
		"product": map[string]interface{}{
			"id":    req.ID,
			"name":  req.Name,
			"stock": req.Stock,
			"price": req.Price,
		},
	})

	return nil
}

// Update overwrites editable fields. A blank image URL keeps the current
// one, matching the CMS edit form behavior.
func (s *productService) Update(id uuid.UUID, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	oldStock := existing.Stock
	existing.Name = req.Name
	existing.Price = req.Price
	existing.Stock = req.Stock
	existing.Description = req.Description
	if req.Status != "" {
		existing.Status = req.Status
	}
	if req.ImageURL != "" {
		existing.ImageURL = req.ImageURL
	}

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return nil, errors.New(validator.FirstMessage(errs))
	}

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_updated",
		"product": map[string]interface{}{
			"id":        existing.ID,
			"name":      existing.Name,
			"old_stock": oldStock,
			"new_stock": existing.Stock,
			"price":     existing.Price,
		},
	})

	return existing, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return errors.New("failed to delete product")
	}
	return nil
}
