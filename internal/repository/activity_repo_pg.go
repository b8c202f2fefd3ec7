package repository

import (
	"context"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepository interface {
	Save(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
}

type PGActivityRepository struct {
	store pgDocStore
}

func NewActivityRepository(db *pgxpool.Pool) ActivityRepository {
	return &PGActivityRepository{store: pgDocStore{db: db}}
}

func (r *PGActivityRepository) Save(ctx context.Context, activity *domain.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	return r.store.save(ctx, activitiesTable, activity.ID, activity)
}

func (r *PGActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	var activity domain.Activity
	found, err := r.store.get(ctx, activitiesTable, id, &activity)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{Kind: "Activity", ID: id}
	}
	return &activity, nil
}

var _ ActivityRepository = (*PGActivityRepository)(nil)
