package database

import (
	"context"
	"errors"

	"github.com/yeremiapane/restaurant-api/models"
	"gorm.io/gorm"
)

type ReservationStore interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Create(ctx context.Context, r *models.Reservation) (*models.Reservation, error)
}

type GormReservationStore struct {
	DB *gorm.DB
}

func NewReservationStore(db *gorm.DB) *GormReservationStore {
	return &GormReservationStore{DB: db}
}

// List returns the latest reservations first.
func (s *GormReservationStore) List(ctx context.Context) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := s.DB.WithContext(ctx).
		Order("reservation_date DESC").
		Order("reservation_time DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, storeErr("list reservations", err)
	}
	return reservations, nil
}

// Create always stores the reservation as pending. Date and time are
// zero-padded first so List orders them correctly on text columns too.
func (s *GormReservationStore) Create(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	r.Status = models.ReservationStatusPending
	r.ReservationDate = r.ReservationDate.Normalize()
	r.ReservationTime = r.ReservationTime.Normalize()

	var created models.Reservation
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(r).Error; err != nil {
			return storeErr("insert reservation", err)
		}
		if err := tx.Where("id = ?", r.ID).Take(&created).Error; err != nil {
			return storeErr("read back reservation", err)
		}
		return nil
	})
	if err != nil {
		var se *StoreError
		if !errors.As(err, &se) {
			err = storeErr("create reservation", err)
		}
		return nil, err
	}
	return &created, nil
}
