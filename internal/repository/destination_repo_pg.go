package repository

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DestinationRepository interface {
	Save(ctx context.Context, destination *domain.Destination) error
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
}

type PGDestinationRepository struct {
	store pgDocStore
}

func NewDestinationRepository(db *pgxpool.Pool) DestinationRepository {
	return &PGDestinationRepository{store: pgDocStore{db: db}}
}

func (r *PGDestinationRepository) Save(ctx context.Context, destination *domain.Destination) error {
	if destination.ID == "" {
		destination.ID = uuid.NewString()
	}
	doc := destinationDoc{
		ID:              destination.ID,
		Name:            destination.Name,
		TravelPackageID: destination.TravelPackageID,
		ActivityIDs:     make([]string, 0, len(destination.Activities)),
	}
	for _, activity := range destination.Activities {
		doc.ActivityIDs = append(doc.ActivityIDs, activity.ID)
	}
	return r.store.save(ctx, destinationsTable, destination.ID, doc)
}

func (r *PGDestinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	return r.store.loadDestination(ctx, id)
}

var _ DestinationRepository = (*PGDestinationRepository)(nil)
