package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTravelPackage_AddPassenger(t *testing.T) {
	pkg := TravelPackage{ID: "t1", Name: "Coastal Escape", PassengerCapacity: 2}

	err := pkg.AddPassenger(Passenger{ID: "p1", PassengerNumber: "PN-1"})
	assert.NoError(t, err)
	err = pkg.AddPassenger(Passenger{ID: "p2", PassengerNumber: "PN-2"})
	assert.NoError(t, err)
	assert.Len(t, pkg.Passengers, 2)

	// third passenger exceeds the package capacity
	err = pkg.AddPassenger(Passenger{ID: "p3", PassengerNumber: "PN-3"})
	assert.ErrorIs(t, err, ErrCapacityFull)
	assert.Len(t, pkg.Passengers, 2)
}

func TestTravelPackage_AddPassenger_DuplicateNumber(t *testing.T) {
	pkg := TravelPackage{ID: "t1", PassengerCapacity: 10}

	err := pkg.AddPassenger(Passenger{ID: "p1", PassengerNumber: "PN-1"})
	assert.NoError(t, err)

	err = pkg.AddPassenger(Passenger{ID: "p2", PassengerNumber: "PN-1"})
	var dup *DuplicateError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "Passenger", dup.Kind)
	assert.Equal(t, "PN-1", dup.Key)
	assert.Len(t, pkg.Passengers, 1)
}

func TestTravelPackage_FindActivity(t *testing.T) {
	pkg := TravelPackage{
		Itinerary: []Destination{
			{ID: "d1", Name: "Lisbon", Activities: []Activity{{ID: "a1", Name: "Surfing"}}},
			{ID: "d2", Name: "Porto", Activities: []Activity{{ID: "a2", Name: "Wine Tasting"}}},
		},
	}

	activity, ok := pkg.FindActivity("a2")
	assert.True(t, ok)
	assert.Equal(t, "Wine Tasting", activity.Name)

	_, ok = pkg.FindActivity("missing")
	assert.False(t, ok)
}

func TestTravelPackage_AvailableSpaces(t *testing.T) {
	activity := Activity{ID: "a1", Name: "Surfing", Capacity: 3}
	pkg := TravelPackage{
		PassengerCapacity: 10,
		Passengers: []Passenger{
			{ID: "p1", SignedUpActivities: []Activity{activity}},
			{ID: "p2", SignedUpActivities: []Activity{{ID: "a2"}}},
			{ID: "p3"},
		},
	}

	assert.Equal(t, 2, pkg.AvailableSpaces(activity))
}

func TestTravelPackage_AvailableSpaces_MatchesByID(t *testing.T) {
	// an activity edited after sign-up still counts against its capacity
	signedUp := Activity{ID: "a1", Name: "Surfing", CostCents: 5000, Capacity: 1}
	edited := Activity{ID: "a1", Name: "Surfing", Description: "updated", CostCents: 6000, Capacity: 1}

	pkg := TravelPackage{
		Passengers: []Passenger{{ID: "p1", SignedUpActivities: []Activity{signedUp}}},
	}

	assert.Equal(t, 0, pkg.AvailableSpaces(edited))
}

func TestTravelPackage_AvailableSpaces_Oversubscribed(t *testing.T) {
	activity := Activity{ID: "a1", Capacity: 1}
	pkg := TravelPackage{
		Passengers: []Passenger{
			{ID: "p1", SignedUpActivities: []Activity{activity}},
			{ID: "p2", SignedUpActivities: []Activity{activity}},
		},
	}

	assert.Equal(t, -1, pkg.AvailableSpaces(activity))
}

func TestDestination_AddActivity(t *testing.T) {
	d := Destination{ID: "d1", Name: "Lisbon"}

	err := d.AddActivity(Activity{ID: "a1", Name: "Surfing"})
	assert.NoError(t, err)

	err = d.AddActivity(Activity{ID: "a2", Name: "Surfing"})
	var dup *DuplicateError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "Activity", dup.Kind)
	assert.Len(t, d.Activities, 1)
}
