package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Table names, one document collection per entity type.
const (
	travelPackagesTable = "travel_packages"
	destinationsTable   = "destinations"
	activitiesTable     = "activities"
	passengersTable     = "passengers"
)

// pgDocStore implements the record-store contract shared by all repositories:
// key lookup, insert-or-overwrite save, field lookups over the JSONB document.
type pgDocStore struct {
	db *pgxpool.Pool
}

func (s *pgDocStore) get(ctx context.Context, table, id string, out any) (bool, error) {
	var doc []byte
	err := s.db.QueryRow(ctx, fmt.Sprintf(`SELECT doc FROM %s WHERE id=$1`, table), id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(doc, out)
}

func (s *pgDocStore) save(ctx context.Context, table, id string, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, doc) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`, table), id, payload)
	return err
}

func (s *pgDocStore) existsByField(ctx context.Context, table, field, value string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM %s WHERE doc->>$1 = $2)`, table), field, value).Scan(&exists)
	return exists, err
}

func (s *pgDocStore) findByField(ctx context.Context, table, field, value string, out any) (bool, error) {
	var doc []byte
	err := s.db.QueryRow(ctx, fmt.Sprintf(
		`SELECT doc FROM %s WHERE doc->>$1 = $2 LIMIT 1`, table), field, value).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(doc, out)
}

func (s *pgDocStore) findAll(ctx context.Context, table string) ([][]byte, error) {
	rows, err := s.db.Query(ctx, fmt.Sprintf(`SELECT doc FROM %s ORDER BY created_at`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([][]byte, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// loadDestination reads a destination document and hydrates its activities
// from the activities collection.
func (s *pgDocStore) loadDestination(ctx context.Context, id string) (*domain.Destination, error) {
	var doc destinationDoc
	found, err := s.get(ctx, destinationsTable, id, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{Kind: "Destination", ID: id}
	}

	destination := &domain.Destination{
		ID:              doc.ID,
		Name:            doc.Name,
		TravelPackageID: doc.TravelPackageID,
		Activities:      make([]domain.Activity, 0, len(doc.ActivityIDs)),
	}
	for _, activityID := range doc.ActivityIDs {
		var activity domain.Activity
		found, err := s.get(ctx, activitiesTable, activityID, &activity)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &domain.NotFoundError{Kind: "Activity", ID: activityID}
		}
		destination.Activities = append(destination.Activities, activity)
	}
	return destination, nil
}

// destinationDoc is the persisted form of a destination: activities live in
// their own collection and are referenced by id.
type destinationDoc struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	TravelPackageID string   `json:"travel_package_id"`
	ActivityIDs     []string `json:"activity_ids"`
}

// travelPackageDoc is the persisted form of a package: itinerary and roster
// are stored as references so reads always see live destination and passenger
// records.
type travelPackageDoc struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	PassengerCapacity int      `json:"passenger_capacity"`
	DestinationIDs    []string `json:"destination_ids"`
	PassengerIDs      []string `json:"passenger_ids"`
}
