package repository

import (
	"context"
	"encoding/json"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TravelPackageRepository interface {
	Save(ctx context.Context, pkg *domain.TravelPackage) error
	GetByID(ctx context.Context, id string) (*domain.TravelPackage, error)
	FindByName(ctx context.Context, name string) (*domain.TravelPackage, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.TravelPackage, error)
}

type PGTravelPackageRepository struct {
	store pgDocStore
}

func NewTravelPackageRepository(db *pgxpool.Pool) TravelPackageRepository {
	return &PGTravelPackageRepository{store: pgDocStore{db: db}}
}

func (r *PGTravelPackageRepository) Save(ctx context.Context, pkg *domain.TravelPackage) error {
	if pkg.ID == "" {
		pkg.ID = uuid.NewString()
	}
	return r.store.save(ctx, travelPackagesTable, pkg.ID, packageToDoc(pkg))
}

func (r *PGTravelPackageRepository) GetByID(ctx context.Context, id string) (*domain.TravelPackage, error) {
	var doc travelPackageDoc
	found, err := r.store.get(ctx, travelPackagesTable, id, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{Kind: "TravelPackage", ID: id}
	}
	return r.hydrate(ctx, doc)
}

func (r *PGTravelPackageRepository) FindByName(ctx context.Context, name string) (*domain.TravelPackage, error) {
	var doc travelPackageDoc
	found, err := r.store.findByField(ctx, travelPackagesTable, "name", name, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{Kind: "TravelPackage", ID: name}
	}
	return r.hydrate(ctx, doc)
}

func (r *PGTravelPackageRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.store.existsByField(ctx, travelPackagesTable, "name", name)
}

func (r *PGTravelPackageRepository) List(ctx context.Context) ([]domain.TravelPackage, error) {
	docs, err := r.store.findAll(ctx, travelPackagesTable)
	if err != nil {
		return nil, err
	}

	packages := make([]domain.TravelPackage, 0, len(docs))
	for _, raw := range docs {
		var doc travelPackageDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		pkg, err := r.hydrate(ctx, doc)
		if err != nil {
			return nil, err
		}
		packages = append(packages, *pkg)
	}
	return packages, nil
}

// hydrate resolves the stored destination and passenger references into full
// records, so capacity accounting always runs over current sign-up lists.
func (r *PGTravelPackageRepository) hydrate(ctx context.Context, doc travelPackageDoc) (*domain.TravelPackage, error) {
	pkg := &domain.TravelPackage{
		ID:                doc.ID,
		Name:              doc.Name,
		PassengerCapacity: doc.PassengerCapacity,
		Itinerary:         make([]domain.Destination, 0, len(doc.DestinationIDs)),
		Passengers:        make([]domain.Passenger, 0, len(doc.PassengerIDs)),
	}
	for _, destinationID := range doc.DestinationIDs {
		destination, err := r.store.loadDestination(ctx, destinationID)
		if err != nil {
			return nil, err
		}
		pkg.Itinerary = append(pkg.Itinerary, *destination)
	}
	for _, passengerID := range doc.PassengerIDs {
		var passenger domain.Passenger
		found, err := r.store.get(ctx, passengersTable, passengerID, &passenger)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &domain.NotFoundError{Kind: "Passenger", ID: passengerID}
		}
		pkg.Passengers = append(pkg.Passengers, passenger)
	}
	return pkg, nil
}

func packageToDoc(pkg *domain.TravelPackage) travelPackageDoc {
	doc := travelPackageDoc{
		ID:                pkg.ID,
		Name:              pkg.Name,
		PassengerCapacity: pkg.PassengerCapacity,
		DestinationIDs:    make([]string, 0, len(pkg.Itinerary)),
		PassengerIDs:      make([]string, 0, len(pkg.Passengers)),
	}
	for _, destination := range pkg.Itinerary {
		doc.DestinationIDs = append(doc.DestinationIDs, destination.ID)
	}
	for _, passenger := range pkg.Passengers {
		doc.PassengerIDs = append(doc.PassengerIDs, passenger.ID)
	}
	return doc
}

var _ TravelPackageRepository = (*PGTravelPackageRepository)(nil)
