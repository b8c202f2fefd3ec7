package repository

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	Save(ctx context.Context, passenger *domain.Passenger) error
	GetByID(ctx context.Context, id string) (*domain.Passenger, error)
	ExistsByNumber(ctx context.Context, passengerNumber string) (bool, error)
}

type PGPassengerRepository struct {
	store pgDocStore
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{store: pgDocStore{db: db}}
}

func (r *PGPassengerRepository) Save(ctx context.Context, passenger *domain.Passenger) error {
	if passenger.ID == "" {
		passenger.ID = uuid.NewString()
	}
	return r.store.save(ctx, passengersTable, passenger.ID, passenger)
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id string) (*domain.Passenger, error) {
	var passenger domain.Passenger
	found, err := r.store.get(ctx, passengersTable, id, &passenger)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{Kind: "Passenger", ID: id}
	}
	return &passenger, nil
}

func (r *PGPassengerRepository) ExistsByNumber(ctx context.Context, passengerNumber string) (bool, error) {
	return r.store.existsByField(ctx, passengersTable, "passenger_number", passengerNumber)
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
