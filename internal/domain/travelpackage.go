package domain

type TravelPackage struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	PassengerCapacity int           `json:"passenger_capacity"`
	Itinerary         []Destination `json:"itinerary"`
	Passengers        []Passenger   `json:"passengers"`
}

func (t *TravelPackage) AddDestination(destination Destination) {
	t.Itinerary = append(t.Itinerary, destination)
}

// AddPassenger enrolls the passenger, rejecting duplicate passenger numbers
// and enforcing the package passenger capacity.
func (t *TravelPackage) AddPassenger(passenger Passenger) error {
	for _, p := range t.Passengers {
		if p.PassengerNumber == passenger.PassengerNumber {
			return &DuplicateError{Kind: "Passenger", Key: passenger.PassengerNumber}
		}
	}
	if len(t.Passengers) >= t.PassengerCapacity {
		return ErrCapacityFull
	}
	t.Passengers = append(t.Passengers, passenger)
	return nil
}

// FindActivity returns the first activity with the given id, walking the
// itinerary in order.
func (t *TravelPackage) FindActivity(activityID string) (Activity, bool) {
	for _, destination := range t.Itinerary {
		for _, activity := range destination.Activities {
			if activity.ID == activityID {
				return activity, true
			}
		}
	}
	return Activity{}, false
}

// AvailableSpaces recomputes the remaining capacity of the activity from the
// current roster. Sign-ups are matched by activity id; the result is negative
// when the activity is over-subscribed.
func (t *TravelPackage) AvailableSpaces(activity Activity) int {
	count := 0
	for _, passenger := range t.Passengers {
		for _, signedUp := range passenger.SignedUpActivities {
			if signedUp.ID == activity.ID {
				count++
			}
		}
	}
	return activity.Capacity - count
}
