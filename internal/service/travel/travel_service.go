package travel

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/google/uuid"
)

// ErrSignupInProgress is returned when another sign-up currently holds the
// activity lock. Safe to retry.
var ErrSignupInProgress = errors.New("activity sign-up already in progress")

type TravelUseCase interface {
	CreateTravelPackage(ctx context.Context, input CreatePackageInput) (*domain.TravelPackage, error)
	CreateDestination(ctx context.Context, name string) (*domain.Destination, error)
	CreateActivity(ctx context.Context, input CreateActivityInput) (*domain.Activity, error)
	CreatePassenger(ctx context.Context, input CreatePassengerInput) (*domain.Passenger, error)
	AddDestinationToPackage(ctx context.Context, packageID, destinationID string) (*domain.TravelPackage, error)
	AddActivityToDestination(ctx context.Context, packageID, destinationID string, input CreateActivityInput) (*domain.TravelPackage, error)
	AddPassengerToPackage(ctx context.Context, packageID, passengerID string) (*domain.TravelPackage, error)
	SignUpForActivity(ctx context.Context, packageID, passengerID, activityID string) (*SignupResult, error)
	GetTravelPackageByID(ctx context.Context, id string) (*domain.TravelPackage, error)
	GetTravelPackageByName(ctx context.Context, name string) (*domain.TravelPackage, error)
	ListTravelPackages(ctx context.Context) ([]domain.TravelPackage, error)
	GetAvailableActivities(ctx context.Context, packageID string) ([]domain.Activity, error)
	GetActivityByID(ctx context.Context, id string) (*domain.Activity, error)
	GetPassengerByID(ctx context.Context, id string) (*domain.Passenger, error)
	GetPassengerList(ctx context.Context, packageID string) (*PassengerList, error)
	RefreshPackageCache(ctx context.Context) error
}

type Cache interface {
	GetPackages(ctx context.Context) ([]domain.TravelPackage, error)
	SetPackages(ctx context.Context, packages []domain.TravelPackage) error
	AcquireSignupLock(ctx context.Context, activityID string, ttl time.Duration) (bool, error)
	ReleaseSignupLock(ctx context.Context, activityID string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TravelService struct {
	packages           repository.TravelPackageRepository
	destinations       repository.DestinationRepository
	activities         repository.ActivityRepository
	passengers         repository.PassengerRepository
	cache              Cache
	producer           Producer
	signupTopic        string
	notificationsTopic string
	lockTTL            time.Duration
}

type CreatePackageInput struct {
	Name              string `json:"name"`
	PassengerCapacity int    `json:"passenger_capacity"`
}

type CreateActivityInput struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	CostCents       int64  `json:"cost_cents"`
	Capacity        int    `json:"capacity"`
	DestinationName string `json:"destination_name"`
}

type CreatePassengerInput struct {
	Name            string `json:"name"`
	PassengerNumber string `json:"passenger_number"`
	Type            string `json:"type"`
	BalanceCents    int64  `json:"balance_cents"`
}

type SignupOutcome string

const (
	SignupConfirmed    SignupOutcome = "CONFIRMED"
	SignupCapacityFull SignupOutcome = "CAPACITY_FULL"
)

type SignupResult struct {
	Outcome     SignupOutcome
	Passenger   *domain.Passenger
	Activity    domain.Activity
	AmountCents int64
	SpacesLeft  int
}

// PassengerList is the roster view of a package.
type PassengerList struct {
	PackageName       string             `json:"package_name"`
	PassengerCapacity int                `json:"passenger_capacity"`
	EnrolledCount     int                `json:"enrolled_count"`
	Passengers        []domain.Passenger `json:"passengers"`
}

type TravelServiceOption func(*TravelService)

func WithNotificationsTopic(topic string) TravelServiceOption {
	return func(s *TravelService) {
		s.notificationsTopic = topic
	}
}

func NewTravelService(
	packages repository.TravelPackageRepository,
	destinations repository.DestinationRepository,
	activities repository.ActivityRepository,
	passengers repository.PassengerRepository,
	cache Cache,
	producer Producer,
	signupTopic string,
	lockTTL time.Duration,
	opts ...TravelServiceOption,
) *TravelService {
	service := &TravelService{
		packages:     packages,
		destinations: destinations,
		activities:   activities,
		passengers:   passengers,
		cache:        cache,
		producer:     producer,
		signupTopic:  signupTopic,
		lockTTL:      lockTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *TravelService) CreateTravelPackage(ctx context.Context, input CreatePackageInput) (*domain.TravelPackage, error) {
	if input.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if input.PassengerCapacity < 0 {
		return nil, &domain.ValidationError{Field: "passenger_capacity", Reason: "must not be negative"}
	}

	exists, err := s.packages.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.DuplicateError{Kind: "TravelPackage", Key: input.Name}
	}

	pkg := &domain.TravelPackage{Name: input.Name, PassengerCapacity: input.PassengerCapacity}
	if err := s.packages.Save(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *TravelService) CreateDestination(ctx context.Context, name string) (*domain.Destination, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	destination := &domain.Destination{Name: name}
	if err := s.destinations.Save(ctx, destination); err != nil {
		return nil, err
	}
	return destination, nil
}

func (s *TravelService) CreateActivity(ctx context.Context, input CreateActivityInput) (*domain.Activity, error) {
	if err := validateActivityInput(input); err != nil {
		return nil, err
	}
	if input.DestinationName == "" {
		return nil, &domain.ValidationError{Field: "destination_name", Reason: "must not be empty"}
	}

	activity := &domain.Activity{
		Name:            input.Name,
		Description:     input.Description,
		CostCents:       input.CostCents,
		Capacity:        input.Capacity,
		DestinationName: input.DestinationName,
	}
	if err := s.activities.Save(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *TravelService) CreatePassenger(ctx context.Context, input CreatePassengerInput) (*domain.Passenger, error) {
	if input.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if input.PassengerNumber == "" {
		return nil, &domain.ValidationError{Field: "passenger_number", Reason: "must not be empty"}
	}
	passengerType, err := domain.ParsePassengerType(input.Type)
	if err != nil {
		return nil, err
	}
	if input.BalanceCents < 0 {
		return nil, &domain.ValidationError{Field: "balance_cents", Reason: "must not be negative"}
	}

	exists, err := s.passengers.ExistsByNumber(ctx, input.PassengerNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.DuplicateError{Kind: "Passenger", Key: input.PassengerNumber}
	}

	passenger := &domain.Passenger{
		Name:               input.Name,
		PassengerNumber:    input.PassengerNumber,
		Type:               passengerType,
		BalanceCents:       input.BalanceCents,
		SignedUpActivities: []domain.Activity{},
	}
	if err := s.passengers.Save(ctx, passenger); err != nil {
		return nil, err
	}
	return passenger, nil
}

func (s *TravelService) AddDestinationToPackage(ctx context.Context, packageID, destinationID string) (*domain.TravelPackage, error) {
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	destination, err := s.destinations.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	destination.TravelPackageID = pkg.ID
	pkg.AddDestination(*destination)

	if err := s.destinations.Save(ctx, destination); err != nil {
		return nil, err
	}
	if err := s.packages.Save(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *TravelService) AddActivityToDestination(ctx context.Context, packageID, destinationID string, input CreateActivityInput) (*domain.TravelPackage, error) {
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !itineraryContains(pkg, destinationID) {
		return nil, &domain.NotFoundError{Kind: "Destination", ID: destinationID}
	}

	destination, err := s.destinations.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if err := validateActivityInput(input); err != nil {
		return nil, err
	}

	activity := domain.Activity{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Description:     input.Description,
		CostCents:       input.CostCents,
		Capacity:        input.Capacity,
		DestinationName: destination.Name,
	}
	if err := destination.AddActivity(activity); err != nil {
		return nil, err
	}

	if err := s.activities.Save(ctx, &activity); err != nil {
		return nil, err
	}
	if err := s.destinations.Save(ctx, destination); err != nil {
		return nil, err
	}
	// reload so the returned itinerary reflects the new activity
	return s.packages.GetByID(ctx, packageID)
}

func (s *TravelService) AddPassengerToPackage(ctx context.Context, packageID, passengerID string) (*domain.TravelPackage, error) {
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	if err := pkg.AddPassenger(*passenger); err != nil {
		return nil, err
	}
	if err := s.packages.Save(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// SignUpForActivity resolves the package, passenger, and activity, checks the
// remaining capacity against the current roster, and charges and records the
// sign-up. Capacity exhaustion is a terminal outcome, not an error. When a
// cache is wired, the whole sequence runs under a per-activity lock so
// concurrent requests cannot jointly over-subscribe the activity.
func (s *TravelService) SignUpForActivity(ctx context.Context, packageID, passengerID, activityID string) (*SignupResult, error) {
	if s.cache != nil {
		ok, err := s.cache.AcquireSignupLock(ctx, activityID, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSignupInProgress
		}
		// Release must survive request cancellation or the lock lingers
		// until the TTL expires.
		releaseCtx := context.WithoutCancel(ctx)
		defer func() { _ = s.cache.ReleaseSignupLock(releaseCtx, activityID) }()
	}

	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return nil, err
	}
	activity, found := pkg.FindActivity(activityID)
	if !found {
		return nil, &domain.NotFoundError{Kind: "Activity", ID: activityID}
	}

	spaces := pkg.AvailableSpaces(activity)
	if spaces <= 0 {
		return &SignupResult{Outcome: SignupCapacityFull, Passenger: passenger, Activity: activity}, nil
	}

	balanceBefore := passenger.BalanceCents
	if err := passenger.SignUpFor(activity); err != nil {
		return nil, err
	}
	if err := s.passengers.Save(ctx, passenger); err != nil {
		return nil, err
	}

	result := &SignupResult{
		Outcome:     SignupConfirmed,
		Passenger:   passenger,
		Activity:    activity,
		AmountCents: balanceBefore - passenger.BalanceCents,
		SpacesLeft:  spaces - 1,
	}
	if err := s.publish(ctx, "activity_signup", pkg, result); err != nil {
		log.Printf("WARNING: failed to publish activity_signup event for passenger %s: %v", passenger.ID, err)
	}
	return result, nil
}

func (s *TravelService) GetTravelPackageByID(ctx context.Context, id string) (*domain.TravelPackage, error) {
	return s.packages.GetByID(ctx, id)
}

func (s *TravelService) GetTravelPackageByName(ctx context.Context, name string) (*domain.TravelPackage, error) {
	return s.packages.FindByName(ctx, name)
}

func (s *TravelService) ListTravelPackages(ctx context.Context) ([]domain.TravelPackage, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetPackages(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	packages, err := s.packages.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetPackages(ctx, packages)
	}
	return packages, nil
}

func (s *TravelService) GetAvailableActivities(ctx context.Context, packageID string) ([]domain.Activity, error) {
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0)
	for _, destination := range pkg.Itinerary {
		activities = append(activities, destination.Activities...)
	}
	return activities, nil
}

func (s *TravelService) GetActivityByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *TravelService) GetPassengerByID(ctx context.Context, id string) (*domain.Passenger, error) {
	return s.passengers.GetByID(ctx, id)
}

func (s *TravelService) GetPassengerList(ctx context.Context, packageID string) (*PassengerList, error) {
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	return &PassengerList{
		PackageName:       pkg.Name,
		PassengerCapacity: pkg.PassengerCapacity,
		EnrolledCount:     len(pkg.Passengers),
		Passengers:        pkg.Passengers,
	}, nil
}

// RefreshPackageCache re-warms the package list cache from the store.
func (s *TravelService) RefreshPackageCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	packages, err := s.packages.List(ctx)
	if err != nil {
		return err
	}
	return s.cache.SetPackages(ctx, packages)
}

func (s *TravelService) publish(ctx context.Context, eventType string, pkg *domain.TravelPackage, result *SignupResult) error {
	if s.producer == nil || s.signupTopic == "" {
		return nil
	}
	event := kafka.SignupEvent{
		Type:          eventType,
		PackageID:     pkg.ID,
		PackageName:   pkg.Name,
		PassengerID:   result.Passenger.ID,
		PassengerName: result.Passenger.Name,
		ActivityID:    result.Activity.ID,
		ActivityName:  result.Activity.Name,
		AmountCents:   result.AmountCents,
		SpacesLeft:    result.SpacesLeft,
		OccurredAt:    time.Now(),
	}
	if err := s.producer.Publish(ctx, s.signupTopic, result.Passenger.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, result.Passenger.ID, event)
	}
	return nil
}

func validateActivityInput(input CreateActivityInput) error {
	if input.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if input.CostCents < 0 {
		return &domain.ValidationError{Field: "cost_cents", Reason: "must not be negative"}
	}
	if input.Capacity < 0 {
		return &domain.ValidationError{Field: "capacity", Reason: "must not be negative"}
	}
	return nil
}

func itineraryContains(pkg *domain.TravelPackage, destinationID string) bool {
	for _, destination := range pkg.Itinerary {
		if destination.ID == destinationID {
			return true
		}
	}
	return false
}

var _ TravelUseCase = (*TravelService)(nil)
