package service

import (
	"errors"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/repository"
	"go-poultrigo/internal/ws"
	"go-poultrigo/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrKandangNotFound = errors.New("kandang not found")

type KandangService interface {
	List() ([]model.Kandang, error)
	Get(id uuid.UUID) (*model.Kandang, error)
	Create(name string, population, age int) (*model.Kandang, error)
	Update(id uuid.UUID, name string, population, age int) (*model.Kandang, error)
	Delete(id uuid.UUID) error
	History(kandangID uuid.UUID) ([]model.KandangHistory, error)
	AllHistory() ([]model.KandangHistory, error)
}

type kandangService struct {
	kandangRepo repository.KandangRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewKandangService(repo repository.KandangRepository, db *gorm.DB, hub *ws.Hub) KandangService {
	return &kandangService{kandangRepo: repo, db: db, wsHub: hub}
}

func (s *kandangService) List() ([]model.Kandang, error) {
	return s.kandangRepo.FindAll()
}

func (s *kandangService) Get(id uuid.UUID) (*model.Kandang, error) {
	kandang, err := s.kandangRepo.FindByID(id)
	if err != nil {
		return nil, ErrKandangNotFound
	}
	return kandang, nil
}

// Create inserts the kandang and its "Created" history row in one
// transaction: a unit is never visible without its first history entry.
func (s *kandangService) Create(name string, population, age int) (*model.Kandang, error) {
	kandang := &model.Kandang{
		Name:       name,
		Population: population,
		Age:        age,
	}
	if errs := validator.ValidateStruct(kandang); len(errs) > 0 {
		return nil, errors.New(validator.FirstMessage(errs))
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.kandangRepo.Create(tx, kandang); err != nil {
			return err
		}
		return s.kandangRepo.AppendHistory(tx, &model.KandangHistory{
			KandangID:  kandang.ID,
			Action:     model.HistoryCreated,
			Population: kandang.Population,
			Age:        kandang.Age,
		})
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent(map[string]interface{}{
		"type":       "kandang_created",
		"kandang_id": kandang.ID,
		"name":       kandang.Name,
		"population": kandang.Population,
		"age":        kandang.Age,
	})

	return kandang, nil
}

// Update applies the field changes and appends exactly one "Updated" history
// row with the post-mutation state, in the same transaction.
func (s *kandangService) Update(id uuid.UUID, name string, population, age int) (*model.Kandang, error) {
	kandang, err := s.kandangRepo.FindByID(id)
	if err != nil {
		return nil, ErrKandangNotFound
	}

	if name != "" {
		kandang.Name = name
	}
	kandang.Population = population
	kandang.Age = age
	if errs := validator.ValidateStruct(kandang); len(errs) > 0 {
		return nil, errors.New(validator.FirstMessage(errs))
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.kandangRepo.Update(tx, kandang); err != nil {
			return err
		}
		return s.kandangRepo.AppendHistory(tx, &model.KandangHistory{
			KandangID:  kandang.ID,
			Action:     model.HistoryUpdated,
			Population: kandang.Population,
			Age:        kandang.Age,
		})
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent(map[string]interface{}{
		"type":       "kandang_updated",
		"kandang_id": kandang.ID,
		"name":       kandang.Name,
		"population": kandang.Population,
		"age":        kandang.Age,
	})

	return kandang, nil
}

// Delete removes the unit together with its history rows.
func (s *kandangService) Delete(id uuid.UUID) error {
	if _, err := s.kandangRepo.FindByID(id); err != nil {
		return ErrKandangNotFound
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.kandangRepo.DeleteHistoryFor(tx, id); err != nil {
			return err
		}
		return s.kandangRepo.Delete(tx, id)
	})
}

func (s *kandangService) History(kandangID uuid.UUID) ([]model.KandangHistory, error) {
	return s.kandangRepo.HistoryFor(kandangID)
}

func (s *kandangService) AllHistory() ([]model.KandangHistory, error) {
	return s.kandangRepo.AllHistory()
}
