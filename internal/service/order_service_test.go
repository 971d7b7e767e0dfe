package service

import (
	"testing"
	"time"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders   map[uuid.UUID]*model.Order
	statuses map[uuid.UUID]model.OrderStatus

	// failCreates makes the next N Create calls report a duplicate order number
	failCreates int
	createCalls int
}

func newFakeOrderRepo(orders ...*model.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{
		orders:   make(map[uuid.UUID]*model.Order),
		statuses: make(map[uuid.UUID]model.OrderStatus),
	}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (f *fakeOrderRepo) Create(_ *gorm.DB, order *model.Order) error {
	f.createCalls++
	if f.failCreates > 0 {
		f.failCreates--
		return gorm.ErrDuplicatedKey
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindByUser(userID uuid.UUID) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAll() ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) UpdateStatus(id uuid.UUID, status model.OrderStatus) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeOrderRepo) GetDashboardStats() (*repository.DashboardStats, error) {
	return &repository.DashboardStats{}, nil
}

func (f *fakeOrderRepo) GetOrderVolume(_, _ time.Time) ([]repository.OrderVolumeData, error) {
	return nil, nil
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	err := svc.UpdateStatus(uuid.New(), model.OrderStatus("delivered"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	err := svc.UpdateStatus(uuid.New(), model.OrderShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatusPersists(t *testing.T) {
	order := &model.Order{BaseModel: model.BaseModel{ID: uuid.New()}, Status: model.OrderPending}
	repo := newFakeOrderRepo(order)
	svc := NewOrderService(repo)

	require.NoError(t, svc.UpdateStatus(order.ID, model.OrderProcessing))
	assert.Equal(t, model.OrderProcessing, repo.statuses[order.ID])
}

func TestListByUserScopes(t *testing.T) {
	owner := uuid.New()
	repo := newFakeOrderRepo(
		&model.Order{BaseModel: model.BaseModel{ID: uuid.New()}, UserID: owner},
		&model.Order{BaseModel: model.BaseModel{ID: uuid.New()}, UserID: uuid.New()},
	)
	svc := NewOrderService(repo)

	orders, err := svc.ListByUser(owner)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
