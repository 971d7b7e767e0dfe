package service

import (
	"errors"
	"fmt"
	"log"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/repository"
	"go-poultrigo/internal/ws"
	"go-poultrigo/pkg/ordernum"
	"go-poultrigo/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
	ErrCartItemMissing = errors.New("cart item not found")
	ErrNotEnoughStock  = errors.New("not enough stock")
	ErrCheckoutFailed  = errors.New("error processing checkout")
)

// orderNumberRetries bounds how often we regenerate on a unique-constraint
// conflict before giving up.
const orderNumberRetries = 5

type CheckoutRequest struct {
	BuyerName string `json:"buyer_name" form:"buyer_name" validate:"required"`
	Address   string `json:"address" form:"address" validate:"required"`
	Whatsapp  string `json:"whatsapp" form:"whatsapp" validate:"required"`
}

type CheckoutResult struct {
	OrderNumber string `json:"order_number"`
	Redirect    string `json:"redirect"`
}

type ShopService interface {
	ListProducts() ([]model.Product, error)
	AddToCart(userID, productID uuid.UUID, quantity int) error
	GetCart(userID uuid.UUID) (*model.CartView, error)
	UpdateCartItem(userID, itemID uuid.UUID, quantity int) error
	RemoveFromCart(userID, itemID uuid.UUID) error
	Checkout(userID uuid.UUID, req *CheckoutRequest) (*CheckoutResult, error)
}

type shopService struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewShopService(pRepo repository.ProductRepository, cRepo repository.CartRepository,
	oRepo repository.OrderRepository, db *gorm.DB, hub *ws.Hub) ShopService {
	return &shopService{
		productRepo: pRepo,
		cartRepo:    cRepo,
		orderRepo:   oRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *shopService) ListProducts() ([]model.Product, error) {
	return s.productRepo.FindAvailable()
}

func (s *shopService) AddToCart(userID, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be greater than zero")
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return ErrProductNotFound
	}

	existing, err := s.cartRepo.FindByUserAndProduct(userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// Merge with an existing line; the stock check covers the merged quantity
	newQuantity := quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}
	if newQuantity > product.Stock {
		return fmt.Errorf("%w, available: %d pcs", ErrNotEnoughStock, product.Stock)
	}

	if existing != nil {
		return s.cartRepo.UpdateQuantity(existing.ID, newQuantity)
	}
	return s.cartRepo.Create(&model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

func (s *shopService) GetCart(userID uuid.UUID) (*model.CartView, error) {
	items, err := s.cartRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	view := &model.CartView{Items: []model.CartLine{}}
	for _, item := range items {
		if item.Product == nil {
			continue // product was deleted from under the cart
		}
		view.Items = append(view.Items, model.CartLine{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Stock:     item.Product.Stock,
			ImageURL:  item.Product.ImageURL,
			Quantity:  item.Quantity,
		})
		view.Total += item.Product.Price * int64(item.Quantity)
	}
	return view, nil
}

func (s *shopService) UpdateCartItem(userID, itemID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be greater than zero")
	}

	item, err := s.cartRepo.FindByIDAndUser(itemID, userID)
	if err != nil {
		return ErrCartItemMissing
	}
	if item.Product == nil {
		// Product vanished from under the cart; the line can only be removed
		return ErrProductNotFound
	}
	if quantity > item.Product.Stock {
		return fmt.Errorf("%w, available: %d pcs", ErrNotEnoughStock, item.Product.Stock)
	}

	return s.cartRepo.UpdateQuantity(item.ID, quantity)
}

func (s *shopService) RemoveFromCart(userID, itemID uuid.UUID) error {
	return s.cartRepo.Delete(itemID, userID)
}

// Checkout converts the owner's cart into a persisted order. Stock
// decrements, the order insert and the cart wipe land in one transaction;
// any failure rolls back all of it.
func (s *shopService) Checkout(userID uuid.UUID, req *CheckoutRequest) (*CheckoutResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New("please fill in all fields")
	}

	cartItems, err := s.cartRepo.FindByUser(userID)
	if err != nil {
		log.Println("checkout: load cart:", err)
		return nil, ErrCheckoutFailed
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	orderItems, total, err := buildOrderLines(cartItems)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:      userID,
		Status:      model.OrderPending,
		TotalAmount: total,
		BuyerName:   req.BuyerName,
		Address:     req.Address,
		Whatsapp:    req.Whatsapp,
		Items:       orderItems,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Conditional decrement: fails the checkout instead of driving
		// stock negative under concurrent orders.
		for _, item := range cartItems {
			if err := s.productRepo.DecrementStock(tx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return fmt.Errorf("%w for %s", ErrNotEnoughStock, item.Product.Name)
				}
				return err
			}
		}

		// The order number is random; the unique constraint is authoritative.
		// Regenerate behind a savepoint when it collides.
		inserted := false
		for attempt := 0; attempt < orderNumberRetries; attempt++ {
			number, err := ordernum.New()
			if err != nil {
				return err
			}
			order.OrderNumber = number

			tx.SavePoint("order_insert")
			if err := s.orderRepo.Create(tx, order); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					tx.RollbackTo("order_insert")
					continue
				}
				return err
			}
			inserted = true
			break
		}
		if !inserted {
			return errors.New("could not allocate an order number")
		}

		return s.cartRepo.DeleteAllForUser(tx, userID)
	})

	if err != nil {
		// User-facing rejections pass through; everything else is generic
		if errors.Is(err, ErrNotEnoughStock) {
			return nil, err
		}
		log.Println("checkout: transaction failed:", err)
		return nil, ErrCheckoutFailed
	}

	go s.wsHub.BroadcastEvent(map[string]interface{}{
		"type":         "order_created",
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount,
		"buyer_name":   order.BuyerName,
	})

	return &CheckoutResult{
		OrderNumber: order.OrderNumber,
		Redirect:    "/guest/orders",
	}, nil
}

// buildOrderLines snapshots name, unit price and subtotal per cart line at
// checkout time, using the live product price.
func buildOrderLines(cartItems []model.CartItem) ([]model.OrderItem, int64, error) {
	var total int64
	items := make([]model.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		if item.Product == nil {
			return nil, 0, ErrProductNotFound
		}
		productID := item.ProductID
		subtotal := item.Product.Price * int64(item.Quantity)
		items = append(items, model.OrderItem{
			ProductID:   &productID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
			Subtotal:    subtotal,
		})
		total += subtotal
	}
	return items, total, nil
}
